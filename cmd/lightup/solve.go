package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightup/internal/game"
	"github.com/vovakirdan/lightup/internal/storage"
)

var (
	flagSolveParams string
	flagSolveID     int64
	flagSolveEasy   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [descriptor]",
	Short: "Run the deductive solver over a puzzle",
	Long: `Solve a puzzle and print the solved grid.

The puzzle comes either from a descriptor on the command line (with
--params giving its dimensions) or from the archive via --id.

With --no-guess the solver is restricted to its two propagation rules;
puzzles that need backtracking are then reported as undecided.

Examples:
  lightup solve --params 7x7b20s4 hBBb0f0i2fBb13h
  lightup solve --id 12
  lightup solve --id 12 --no-guess`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolveParams, "params", "", "Puzzle parameters for the descriptor")
	solveCmd.Flags().Int64Var(&flagSolveID, "id", 0, "Solve an archived puzzle by ID")
	solveCmd.Flags().BoolVar(&flagSolveEasy, "no-guess", false, "Propagation only, no backtracking")
}

func runSolve(_ *cobra.Command, args []string) {
	paramsStr, desc := flagSolveParams, ""
	if len(args) == 1 {
		desc = args[0]
	}

	if flagSolveID != 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening puzzle database: %v\n", err)
			os.Exit(1)
		}
		entry, err := store.PuzzleByID(flagSolveID)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if entry == nil {
			fmt.Fprintf(os.Stderr, "Error: no archived puzzle with ID %d\n", flagSolveID)
			os.Exit(1)
		}
		paramsStr, desc = entry.Params, entry.Desc
	}

	if paramsStr == "" || desc == "" {
		fmt.Fprintln(os.Stderr, "Error: need either --id or --params plus a descriptor")
		os.Exit(1)
	}

	p := game.DecodeParams(paramsStr)
	if err := p.Validate(true); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	st, err := game.NewGame(p, desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Puzzle:")
	fmt.Print(st.TextFormat())

	depth := 0
	n := st.Solve(!flagSolveEasy, true, &depth)
	switch {
	case n == 1:
		fmt.Println("\nUnique solution:")
		fmt.Print(st.TextFormat())
		if depth > 0 {
			fmt.Printf("\nRequired guessing to depth %d.\n", depth)
		} else {
			fmt.Println("\nSolvable by deduction alone.")
		}
	case n > 1:
		fmt.Printf("\nPuzzle has %d solutions; one of them:\n", n)
		fmt.Print(st.TextFormat())
	case n == 0:
		fmt.Println("\nPuzzle has no solution.")
		os.Exit(1)
	default:
		fmt.Println("\nSolver gave up within its recursion budget.")
		os.Exit(1)
	}
}
