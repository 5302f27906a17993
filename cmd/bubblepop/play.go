package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-pop/internal/config"
	"github.com/vovakirdan/bubble-pop/internal/core"
	"github.com/vovakirdan/bubble-pop/internal/games/bubblepop"
	"github.com/vovakirdan/bubble-pop/internal/platform/tui"
	"github.com/vovakirdan/bubble-pop/internal/registry"
	"github.com/vovakirdan/bubble-pop/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start a session of the given mode (default: bubbles).

Controls:
  Click       - Pop the bubble under the cursor
  0-9         - Pop the bubble with that number
  P/Space     - Pause
  R           - Restart (after the field is cleared)
  Tab         - High scores
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Modes:
  bubbles          - Popping a missing bubble scores nothing
  bubbles_classic  - Every pop request scores a point

Examples:
  bubblepop play
  bubblepop play bubbles_classic
  bubblepop play --seed 42 --fps 30
  bubblepop play --config ./my-bubbles.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := bubblepop.ModeStandard
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bubblepop list' to see available modes.")
		os.Exit(1)
	}

	// Fail early on a broken config file instead of silently using defaults
	if flagConfig != "" {
		if _, err := config.LoadBubbles(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	bubblepop.SetConfigPath(flagConfig)

	// Logging to the terminal would draw over the game
	logger, closeLog, err := newLogger("bubblepop", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{Logger: logger, Player: os.Getenv("USER")}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "error", err)
	} else {
		opts.Store = store
	}

	runErr := tui.Run(game, cfg, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
