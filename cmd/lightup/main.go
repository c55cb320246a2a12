// lightup is a terminal version of the Nikoli puzzle "Light Up" (Akari):
// generator, solver and interactive TUI player.
//
// Usage:
//
//	lightup generate         - Generate puzzles and print their descriptors
//	lightup solve            - Solve a puzzle descriptor
//	lightup play             - Play a puzzle interactively
//	lightup serve            - Start SSH server for remote play
//	lightup presets          - List the built-in preset menu
//	lightup puzzles          - Browse the puzzle archive
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible generation (empty = time-based)
//	--db <path>     - Puzzle archive path (default: ~/.lightup/puzzles.db)
//	--config <path> - Custom config YAML
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   string
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightup",
	Short: "Light Up (Akari) puzzles in your terminal",
	Long: `Light Up is a terminal implementation of the Nikoli pencil puzzle:
place lights on white cells so that every cell is lit, no two lights shine
on each other, and every numbered wall touches exactly that many lights.

Available commands:
  generate - Generate puzzles with a guaranteed unique solution
  solve    - Run the deductive solver over a descriptor
  play     - Play interactively in the terminal
  serve    - Start SSH server for remote play
  presets  - Show the built-in preset menu
  puzzles  - Browse archived puzzles and solves

Examples:
  lightup generate --params 7x7b20s4 --count 3
  lightup solve --params 7x7b20s4 hBBb0f0i2fBb13h
  lightup play --params 10x10b20s2r
  lightup serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "RNG seed (empty = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lightup/puzzles.db", "Path to puzzle archive database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(puzzlesCmd)
}

// effectiveSeed returns the --seed flag, or a time-derived seed when unset.
func effectiveSeed() string {
	if flagSeed != "" {
		return flagSeed
	}
	return fmt.Sprintf("t%d", time.Now().UnixNano())
}
