package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing immediately.

Controls:
  Arrows/WASD/HJKL - Steer (a turn is remembered until it fits)
  P/Space          - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or after game over)
  Ctrl+S           - Save a screenshot to ~/.mazechase/screenshots
  Ctrl+Y           - Copy the screen to the clipboard
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ghosts, longer scatter, slower decisions
  normal - Standard timings
  hard   - Ghosts as fast as you, short scatter, quick decisions

Examples:
  mazechase play
  mazechase play --difficulty easy
  mazechase play --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil with a warning so the
// game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	// Fail early on a bad config instead of inside the alt screen
	if _, err := mazechase.LoadConfig(); err != nil {
		logger.Error("cannot load game config", "error", err)
		os.Exit(1)
	}

	game, err := registry.Create(mazechase.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
