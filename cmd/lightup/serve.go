package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightup/internal/config"
	"github.com/vovakirdan/lightup/internal/game"
	"github.com/vovakirdan/lightup/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeParams string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Light Up SSH server",
	Long: `Start an SSH server that hands every connection a fresh puzzle.

Each session generates its own puzzle; solves land in the shared archive.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lightup/host_key

Examples:
  lightup serve                        # Listen on :23235 with auto-generated key
  lightup serve --ssh :2222            # Listen on port 2222
  lightup serve --params 10x10b20s2r   # Hard 10x10 puzzles for everyone
  lightup serve --db ./puzzles.db      # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeParams, "params", "", "Puzzle parameters for new sessions")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	if fileCfg.Server.Address != "" {
		cfg.Address = fileCfg.Server.Address
	}
	if fileCfg.Server.HostKeyPath != "" {
		cfg.HostKeyPath = fileCfg.Server.HostKeyPath
	}
	if fileCfg.Server.DBPath != "" {
		cfg.DBPath = fileCfg.Server.DBPath
	}
	if fileCfg.Server.IdleTimeoutMin > 0 {
		cfg.IdleTimeout = time.Duration(fileCfg.Server.IdleTimeoutMin) * time.Minute
	}
	if preset, ok := game.FetchPreset(fileCfg.Server.Preset); ok {
		cfg.Params = preset.Params
	}

	// Flags override the config file.
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if rootCmd.PersistentFlags().Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagServeParams != "" {
		p := game.DecodeParams(flagServeParams)
		if err := p.Validate(true); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Params = p
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Light Up SSH server on %s\n", cfg.Address)
	port := cfg.Address
	if _, p, err := net.SplitHostPort(cfg.Address); err == nil {
		port = p
	}
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
