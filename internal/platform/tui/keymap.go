package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the play-mode key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Light      key.Binding
	Impossible key.Binding
	Solve      key.Binding
	New        key.Binding
	Quit       key.Binding
	Help       key.Binding
}

// DefaultKeyMap returns the standard bindings: arrows or vi keys to move,
// space for a light, i for a no-light mark.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		Light: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle light"),
		),
		Impossible: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle mark"),
		),
		Solve: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "solve"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new puzzle"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Light, k.Impossible, k.Solve, k.New, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Light, k.Impossible, k.Solve},
		{k.New, k.Quit, k.Help},
	}
}
