package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right and press Enter to play.
After leaving a game, you return to the menu to play again.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  mazechase menu
  mazechase menu --fps 30
  mazechase menu --db ./scores.db`,
	Run: runMenu,
}

// difficultySetter is implemented by games that accept a per-instance preset.
type difficultySetter interface {
	SetDifficulty(preset string)
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if ds, ok := game.(difficultySetter); ok {
			ds.SetDifficulty(string(menuResult.Difficulty))
		}

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
