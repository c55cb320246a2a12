package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightup/internal/game"
	"github.com/vovakirdan/lightup/internal/storage"
)

var flagPuzzlesLimit int

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles [id]",
	Short: "Browse the puzzle archive",
	Long: `List archived puzzles, or show one puzzle with its solve history.

Examples:
  lightup puzzles
  lightup puzzles --limit 25
  lightup puzzles 12`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPuzzles,
}

func init() {
	puzzlesCmd.Flags().IntVar(&flagPuzzlesLimit, "limit", 10, "Number of puzzles to list")
}

func runPuzzles(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening puzzle database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid puzzle ID %q\n", args[0])
			os.Exit(1)
		}
		showPuzzle(store, id)
		return
	}

	entries, err := store.RecentPuzzles(flagPuzzlesLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No archived puzzles yet.")
		fmt.Println()
		fmt.Println("Run 'lightup generate' to create the first one!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-6s  %-6s  %s\n", "ID", "Params", "Hard", "Clues", "Created")
	fmt.Printf("  %-4s  %-14s  %-6s  %-6s  %s\n", "--", "------", "----", "-----", "-------")
	for _, e := range entries {
		hard := "no"
		if e.Hard {
			hard = "yes"
		}
		fmt.Printf("  %-4d  %-14s  %-6s  %-6d  %s\n",
			e.ID, e.Params, hard, e.Clues, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func showPuzzle(store *storage.Store, id int64) {
	entry, err := store.PuzzleByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "Error: no archived puzzle with ID %d\n", id)
		os.Exit(1)
	}

	fmt.Printf("Puzzle %d: %s (seed %q)\n", entry.ID, entry.Params, entry.Seed)
	fmt.Printf("Descriptor: %s\n\n", entry.Desc)

	p := game.DecodeParams(entry.Params)
	if err := p.Validate(true); err == nil {
		if st, gerr := game.NewGame(p, entry.Desc); gerr == nil {
			fmt.Print(st.TextFormat())
		}
	}

	solves, err := store.SolvesForPuzzle(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	if len(solves) == 0 {
		fmt.Println("Not solved yet.")
		fmt.Printf("Play it with: lightup play --id %d\n", id)
		return
	}
	fmt.Printf("  %-6s  %-8s  %-6s  %s\n", "Moves", "Assisted", "Secs", "Date")
	fmt.Printf("  %-6s  %-8s  %-6s  %s\n", "-----", "--------", "----", "----")
	for _, s := range solves {
		assisted := "no"
		if s.UsedSolve {
			assisted = "yes"
		}
		fmt.Printf("  %-6d  %-8s  %-6d  %s\n",
			s.Moves, assisted, s.Duration, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
