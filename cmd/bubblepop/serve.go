package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-pop/internal/config"
	"github.com/vovakirdan/bubble-pop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeMode   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Bubble Pop SSH server",
	Long: `Start an SSH server that lets users connect and play.

Every SSH connection plays its own independent session.
Scores are stored per-server (all users share the same leaderboard).

Settings come from the environment and can be overridden by flags:
  BUBBLEPOP_SSH_ADDR       --ssh
  BUBBLEPOP_HOST_KEY       --host-key
  BUBBLEPOP_DB             --db
  BUBBLEPOP_IDLE_TIMEOUT   --idle-timeout
  BUBBLEPOP_FPS            --fps
  BUBBLEPOP_MODE           --mode

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bubblepop/host_key

Examples:
  bubblepop serve                           # Listen on :23234
  bubblepop serve --ssh :2222               # Listen on port 2222
  bubblepop serve --mode bubbles_classic    # Serve the classic mode

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", "bubbles", "Game mode to serve")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyServeFlags(cmd, &cfg)

	logger, closeLog, err := newLogger("bubblepop-ssh", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Bubble Pop SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// applyServeFlags overrides environment settings with flags given explicitly.
func applyServeFlags(cmd *cobra.Command, cfg *config.ServerConfig) {
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if flags.Changed("fps") && flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("mode") {
		cfg.Game = flagServeMode
	}
}
