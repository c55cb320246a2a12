// Package tui provides the terminal frontend for playing Light Up puzzles,
// including SSH server support via Wish. All board mutation goes through
// the engine's move strings; this package only translates input.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightup/internal/game"
	"github.com/vovakirdan/lightup/internal/rng"
	"github.com/vovakirdan/lightup/internal/storage"
)

// Model is the Bubble Tea model for playing one puzzle.
type Model struct {
	params   game.Params
	original *game.State
	state    *game.State

	store    *storage.Store
	puzzleID int64
	seed     string

	cursorX, cursorY int
	moves            int
	started          time.Time
	statusMsg        string
	solveSaved       bool
	quitting         bool

	keys KeyMap
	help help.Model
}

// NewModel builds a play model for an already-decoded puzzle. store may be
// nil; puzzleID 0 means the puzzle is not archived.
func NewModel(p game.Params, st *game.State, store *storage.Store, puzzleID int64, seed string) Model {
	return Model{
		params:   p,
		original: st.Clone(),
		state:    st.Clone(),
		store:    store,
		puzzleID: puzzleID,
		seed:     seed,
		started:  time.Now(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// NewRandomModel generates a fresh puzzle for the parameters and wraps it
// in a play model, archiving it when a store is available.
func NewRandomModel(p game.Params, seed string, store *storage.Store) (Model, error) {
	desc, stats := game.NewDesc(p, rng.New(seed))
	st, err := game.NewGame(p, desc)
	if err != nil {
		return Model{}, fmt.Errorf("tui: generated descriptor rejected: %w", err)
	}

	var puzzleID int64
	if store != nil {
		// Best-effort archive; play proceeds regardless.
		puzzleID, _ = store.SavePuzzle(storage.PuzzleEntry{
			Params: p.Encode(true),
			Desc:   desc,
			Seed:   seed,
			Hard:   p.Hard,
			Clues:  stats.Clues,
		})
	}
	return NewModel(p, st, store, puzzleID, seed), nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(keyMsg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(keyMsg, m.keys.Light):
		m.applyMove(m.lightMove())
	case key.Matches(keyMsg, m.keys.Impossible):
		m.applyMove(m.impossibleMove())
	case key.Matches(keyMsg, m.keys.Solve):
		m.applySolve()
	case key.Matches(keyMsg, m.keys.New):
		return m.newPuzzle()
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	m.cursorX = clamp(m.cursorX+dx, 0, m.state.W-1)
	m.cursorY = clamp(m.cursorY+dy, 0, m.state.H-1)
}

// lightMove translates a light toggle at the cursor into a move string,
// or "" when the cell refuses it (black, or marked impossible).
func (m *Model) lightMove() string {
	x, y := m.cursorX, m.cursorY
	if m.state.IsBlack(x, y) || m.state.IsImpossible(x, y) {
		return ""
	}
	return fmt.Sprintf("L%d,%d", x, y)
}

// impossibleMove translates a mark toggle at the cursor, or "" when the
// cell refuses it (black, or holding a light).
func (m *Model) impossibleMove() string {
	x, y := m.cursorX, m.cursorY
	if m.state.IsBlack(x, y) || m.state.IsLight(x, y) {
		return ""
	}
	return fmt.Sprintf("I%d,%d", x, y)
}

func (m *Model) applyMove(move string) {
	if move == "" {
		return
	}
	next, err := game.ExecuteMove(m.state, move)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.state = next
	m.moves++
	m.statusMsg = ""
	m.noteCompletion()
}

func (m *Model) applySolve() {
	move, err := game.SolveMove(m.original, m.state)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	next, err := game.ExecuteMove(m.state, move)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.state = next
	m.moves++
	m.statusMsg = "solved by the computer"
	m.noteCompletion()
}

// noteCompletion records the solve once when the completion latch flips.
func (m *Model) noteCompletion() {
	if !m.state.Completed || m.solveSaved {
		return
	}
	m.solveSaved = true
	if m.store == nil || m.puzzleID == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveSolve(storage.SolveEntry{
		PuzzleID:  m.puzzleID,
		Moves:     m.moves,
		UsedSolve: m.state.UsedSolve,
		Duration:  int(time.Since(m.started).Seconds()),
	})
}

func (m Model) newPuzzle() (tea.Model, tea.Cmd) {
	seed := fmt.Sprintf("%s-%d", m.seed, time.Now().UnixNano())
	next, err := NewRandomModel(m.params, seed, m.store)
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	next.help = m.help
	return next, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	diff := "easy"
	if m.params.Hard {
		diff = "hard"
	}
	b.WriteString(styleTitle.Render(fmt.Sprintf("Light Up — %dx%d %s", m.params.Width, m.params.Height, diff)))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")

	switch {
	case m.state.Completed:
		b.WriteString(styleSolved.Render("Solved!"))
		if m.state.UsedSolve {
			b.WriteString(styleStatus.Render(" (with help)"))
		}
	case m.state.Status() == game.StatusUnsolvable:
		b.WriteString(styleNumberWrong.Render("Something is wrong here."))
	case m.statusMsg != "":
		b.WriteString(styleStatus.Render(m.statusMsg))
	default:
		b.WriteString(styleStatus.Render(fmt.Sprintf("moves: %d", m.moves)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderBoard draws the grid, two characters per cell.
func (m Model) renderBoard() string {
	var b strings.Builder
	for y := 0; y < m.state.H; y++ {
		for x := 0; x < m.state.W; x++ {
			cell := m.renderCell(x, y)
			if x == m.cursorX && y == m.cursorY {
				cell = styleCursor.Render(stripCell(x, y, m.state))
			}
			b.WriteString(cell)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderCell(x, y int) string {
	return renderCellStyled(m.state, x, y)
}

// stripCell returns the bare cell glyph, for cursor inversion.
func stripCell(x, y int, s *game.State) string {
	f := s.Flag(x, y)
	switch {
	case f&game.FlagNumbered != 0:
		return string(rune('0' + s.LitCount(x, y)))
	case f&game.FlagBlack != 0:
		return "#"
	case f&game.FlagLight != 0:
		return "*"
	case f&game.FlagImpossible != 0:
		return "x"
	case s.LitCount(x, y) > 0:
		return "."
	default:
		return " "
	}
}

// renderCellStyled styles one cell according to its current role.
func renderCellStyled(s *game.State, x, y int) string {
	f := s.Flag(x, y)
	switch {
	case f&game.FlagNumbered != 0:
		glyph := string(rune('0' + s.LitCount(x, y)))
		if s.NumberWrong(x, y) {
			return styleNumberWrong.Render(glyph)
		}
		return styleNumber.Render(glyph)
	case f&game.FlagBlack != 0:
		return styleBlack.Render("#")
	case f&game.FlagLight != 0:
		if s.LitCount(x, y) > 1 {
			return styleLightOverlap.Render("*")
		}
		return styleLight.Render("*")
	case f&game.FlagImpossible != 0:
		return styleImpossible.Render("x")
	case s.LitCount(x, y) > 0:
		return styleLit.Render(".")
	default:
		return " "
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
