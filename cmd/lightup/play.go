package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightup/internal/game"
	"github.com/vovakirdan/lightup/internal/platform/tui"
	"github.com/vovakirdan/lightup/internal/storage"
)

var (
	flagPlayParams string
	flagPlayID     int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a puzzle interactively",
	Long: `Play a Light Up puzzle in the terminal.

Controls:
  Arrows/hjkl - Move the cursor
  Space/Enter - Toggle a light
  i           - Toggle a no-light mark
  s           - Let the solver finish the puzzle
  n           - New puzzle
  q/Ctrl+C    - Quit

A fresh puzzle is generated from --params (or the config defaults);
--id replays a puzzle from the archive instead.

Examples:
  lightup play
  lightup play --params 10x10b20s2r
  lightup play --id 12
  lightup play --seed my-seed --params 7x7b20s4`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayParams, "params", "", "Puzzle parameters (e.g. 7x7b20s4r)")
	playCmd.Flags().Int64Var(&flagPlayID, "id", 0, "Play an archived puzzle by ID")
}

func runPlay(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open puzzle database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var model tui.Model
	if flagPlayID != 0 {
		model, err = archivedModel(store, flagPlayID)
	} else {
		var p game.Params
		p, err = paramsFromFlagOrConfig(flagPlayParams)
		if err == nil {
			if fitErr := boardFitsTerminal(p); fitErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", fitErr)
			}
			model, err = tui.NewRandomModel(p, effectiveSeed(), store)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// archivedModel loads a puzzle from the archive into a play model.
func archivedModel(store *storage.Store, id int64) (tui.Model, error) {
	if store == nil {
		return tui.Model{}, fmt.Errorf("puzzle database unavailable")
	}
	entry, err := store.PuzzleByID(id)
	if err != nil {
		return tui.Model{}, err
	}
	if entry == nil {
		return tui.Model{}, fmt.Errorf("no archived puzzle with ID %d", id)
	}
	p := game.DecodeParams(entry.Params)
	if err := p.Validate(true); err != nil {
		return tui.Model{}, err
	}
	st, err := game.NewGame(p, entry.Desc)
	if err != nil {
		return tui.Model{}, err
	}
	return tui.NewModel(p, st, store, entry.ID, entry.Seed), nil
}

// boardFitsTerminal warns early when the board won't fit the window.
func boardFitsTerminal(p game.Params) error {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil // not a terminal; let Bubble Tea sort it out
	}
	if p.Width*2 > w || p.Height+6 > h {
		return fmt.Errorf("a %dx%d board may not fit this %dx%d terminal", p.Width, p.Height, w, h)
	}
	return nil
}
