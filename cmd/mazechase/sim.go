package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagTicks     int
	flagLogEvery  int
	flagTurnEvery int
	flagSaveRun   bool
	flagVerbose   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and log its progress",
	Long: `Run the simulation without a terminal UI. The player turns in a random
direction at a fixed interval. Progress snapshots and the final outcome are
logged to stderr. The same --seed always produces the same run.

Examples:
  mazechase sim
  mazechase sim --ticks 7200 --seed 42 --log-every 600
  mazechase sim --difficulty hard --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagLogEvery, "log-every", 300, "Log a snapshot every N ticks (0 = never)")
	simCmd.Flags().IntVar(&flagTurnEvery, "turn-every", 45, "Pick a new random direction every N ticks")
	simCmd.Flags().BoolVar(&flagSaveRun, "save", false, "Record the run in the scores database")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every ghost mode change")
}

// simOptions controls a headless run.
type simOptions struct {
	MaxTicks  int
	LogEvery  int
	TurnEvery int
	Seed      int64
}

// simulate drives w with random turns until it ends or MaxTicks is reached.
func simulate(w *core.World, opts simOptions, l *log.Logger) mazechase.Snapshot {
	turnEvery := max(opts.TurnEvery, 1)
	rng := rand.New(rand.NewPCG(uint64(opts.Seed), 0))

	for w.Ticks() < opts.MaxTicks && !w.Status().Ended() {
		if w.Ticks()%turnEvery == 0 {
			w.SetIntent(core.Directions[rng.IntN(len(core.Directions))])
		}

		report := w.Step()
		for _, p := range report.Flipped {
			l.Debug("mode changed", "tick", w.Ticks(), "ghost", p, "mode", w.Ghost(p).Mode())
		}

		if opts.LogEvery > 0 && w.Ticks()%opts.LogEvery == 0 {
			s := mazechase.TakeSnapshot(w)
			l.Info("progress",
				"tick", s.Tick,
				"score", s.Score,
				"dots", s.DotsRemaining,
				"player", core.P(s.Player.X, s.Player.Y),
				"blinky", s.Ghosts[core.Blinky].Mode,
			)
		}
	}

	return mazechase.TakeSnapshot(w)
}

// outcomeOf maps a world status to a stored outcome. A run cut off by the
// tick limit counts as quit.
func outcomeOf(s core.Status) storage.Outcome {
	switch s {
	case core.StatusWon:
		return storage.OutcomeWon
	case core.StatusLost:
		return storage.OutcomeLost
	default:
		return storage.OutcomeQuit
	}
}

func runSim(_ *cobra.Command, _ []string) {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := mazechase.LoadConfig()
	if err != nil {
		logger.Error("cannot load game config", "error", err)
		os.Exit(1)
	}
	world, err := mazechase.NewWorld(cfg)
	if err != nil {
		logger.Error("cannot build maze", "error", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("simulation started", "seed", seed, "max_ticks", flagTicks, "dots", world.DotsRemaining())

	final := simulate(world, simOptions{
		MaxTicks:  flagTicks,
		LogEvery:  flagLogEvery,
		TurnEvery: flagTurnEvery,
		Seed:      seed,
	}, logger)

	outcome := outcomeOf(final.Status)
	logger.Info("simulation finished",
		"outcome", outcome,
		"tick", final.Tick,
		"score", final.Score,
		"dots_eaten", final.DotsEaten,
	)

	if !flagSaveRun {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open scores database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		GameID:    mazechase.ID,
		Score:     final.Score,
		Outcome:   outcome,
		Ticks:     final.Tick,
		DotsEaten: final.DotsEaten,
	})
	if err != nil {
		logger.Error("cannot save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id)
}
