// mazechase is a terminal maze chase: clear the dots while four ghosts with
// their own targeting personalities hunt you down.
//
// Usage:
//
//	mazechase play           - Play a game
//	mazechase menu           - Start menu with difficulty picker and scoreboard
//	mazechase serve          - Start SSH server for remote play
//	mazechase scores         - Show the best recorded runs
//	mazechase sim            - Run a headless game and log its progress
//	mazechase config         - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for headless runs
//	--db <path>           - Set database path (default: ~/.mazechase/scores.db)
//	--config <path>       - Load game settings from a YAML file
//	--difficulty <name>   - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/games/mazechase"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "mazechase",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - clear the maze before the ghosts catch you",
	Long: `Maze Chase is a terminal game: steer through a maze eating dots
while four ghosts alternate between guarding their corners and chasing you.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu with difficulty picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  sim      - Run a headless game
  config   - Print the effective settings

Examples:
  mazechase play
  mazechase play --difficulty hard
  mazechase menu
  mazechase serve --ssh :2222
  mazechase sim --ticks 3600 --seed 42`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		applyGameFlags()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazechase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags hands the config flags to the game before it is created.
func applyGameFlags() {
	mazechase.SetConfigPath(flagConfig)
	mazechase.SetDifficultyPreset(flagDifficulty)
}
