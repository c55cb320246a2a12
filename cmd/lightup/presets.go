package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightup/internal/game"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in preset menu",
	Long: `Show the built-in presets with their parameter strings.

The parameter string can be passed to generate, solve or play via --params.`,
	Run: runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	fmt.Println("Available presets:")
	fmt.Println()
	fmt.Printf("  %-3s %-12s %s\n", "#", "Name", "Params")
	fmt.Printf("  %-3s %-12s %s\n", "-", "----", "------")
	for i, preset := range game.Presets() {
		fmt.Printf("  %-3d %-12s %s\n", i, preset.Name, preset.Params.Encode(true))
	}
	fmt.Println()
	fmt.Println("Play one with: lightup play --params <params>")
}
