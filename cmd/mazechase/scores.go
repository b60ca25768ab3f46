package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top runs, best score first. Equal scores rank the
faster run higher.

Examples:
  mazechase scores
  mazechase scores --limit 25
  mazechase scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(mazechase.ID); err != nil {
			logger.Error("cannot clear runs", "error", err)
			return
		}
		logger.Info("cleared recorded runs", "db", flagDBPath)
		return
	}

	runs, err := store.TopRuns(mazechase.ID, flagLimit)
	if err != nil {
		logger.Error("cannot load runs", "error", err)
		return
	}

	fmt.Println("High Scores - Maze Chase")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mazechase play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-7s  %s\n", "Rank", "Score", "Result", "Dots", "Ticks", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-7s  %s\n", "----", "-----", "------", "----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-6s  %-5d  %-7d  %s\n",
			i+1, r.Score, r.Outcome, r.DotsEaten, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(mazechase.ID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Best: %d  Average: %.0f  Dots eaten: %d\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore, stats.TotalDots)
	fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}
