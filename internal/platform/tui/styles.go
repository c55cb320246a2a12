package tui

import "github.com/charmbracelet/lipgloss"

// Board cell styles. Lit cells get a pale yellow wash, errors go red.
var (
	styleBlack = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236"))

	styleNumber = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236")).
			Bold(true)

	styleNumberWrong = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Background(lipgloss.Color("236")).
				Bold(true)

	styleLight = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	styleLightOverlap = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)

	styleLit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	styleImpossible = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	styleCursor = lipgloss.NewStyle().
			Reverse(true)

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	styleSolved = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)
)
