// Package mazechase provides the maze chase game: the player clears a maze of
// dots while four ghosts with distinct targeting personalities hunt them.
package mazechase

import (
	platformcore "github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/levels"
	"github.com/vovakirdan/mazechase/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "mazechase"

// Game adapts the maze simulation to the platform's Game interface.
type Game struct {
	world      *core.World
	cfg        config.MazeConfig
	err        error  // Set when the config or layout could not be loaded
	difficulty string // Overrides the package-level preset when set

	screenW  int
	screenH  int
	tooSmall bool

	// Rendering layout
	hudHeight int
	offsetX   int
	offsetY   int
}

// Package-level variables for config/difficulty, set by the CLI before the
// game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// New creates a new maze chase game.
func New() *Game {
	return &Game{
		hudHeight: 2,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase"
}

// SetDifficulty selects a preset for this instance only. Takes effect on
// the first Reset.
func (g *Game) SetDifficulty(preset string) {
	g.difficulty = preset
}

// LoadConfig resolves the configured file and difficulty preset.
func LoadConfig() (config.MazeConfig, error) {
	return loadConfig(difficultyPreset)
}

func loadConfig(presetName string) (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficulty(presetName)
	if err != nil {
		return cfg, err
	}
	config.ApplyMazePreset(&cfg, preset)
	return cfg, nil
}

// Tuning converts a config into simulation parameters.
func Tuning(cfg config.MazeConfig) core.Tuning {
	return core.Tuning{
		PlayerSpeed: cfg.Player.Speed,
		Ghost: core.GhostTuning{
			Speed:         cfg.Ghosts.Speed,
			ScatterTicks:  cfg.Ghosts.ScatterTicks,
			ChaseTicks:    cfg.Ghosts.ChaseTicks,
			DecisionTicks: cfg.Ghosts.DecisionTicks,
			ProbeSteps:    cfg.Ghosts.ProbeSteps,
		},
	}
}

// NewWorld builds a world on the standard maze for cfg.
func NewWorld(cfg config.MazeConfig) (*core.World, error) {
	maze, err := levels.Build(levels.Standard(), cfg.Scoring.DotPoints)
	if err != nil {
		return nil, err
	}
	return core.NewWorld(maze, Tuning(cfg)), nil
}

// Reset initializes or restarts the game. The config is loaded once; later
// resets rebuild the world from it.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	if g.world != nil {
		g.world.Reset()
		g.calculateLayout()
		return
	}

	preset := difficultyPreset
	if g.difficulty != "" {
		preset = g.difficulty
	}
	g.cfg, g.err = loadConfig(preset)
	if g.err != nil {
		return
	}
	g.world, g.err = NewWorld(g.cfg)
	g.calculateLayout()
}

// Err returns the error that prevented the game from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// World exposes the simulation for read-only inspection.
func (g *Game) World() *core.World {
	return g.world
}

// Resize updates the screen dimensions without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

// calculateLayout centers the maze below the HUD.
func (g *Game) calculateLayout() {
	if g.world == nil {
		return
	}
	m := g.world.Maze()
	mazeW := m.Cols * cellChars
	mazeH := m.Rows

	if g.screenW < mazeW || g.screenH < mazeH+g.hudHeight {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.offsetX = (g.screenW - mazeW) / 2
	g.offsetY = g.hudHeight + (g.screenH-g.hudHeight-mazeH)/2
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if g.world == nil {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(platformcore.ActionRestart) && g.world.Status().Ended() {
		g.world.Reset()
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) {
		g.world.TogglePause()
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if d, ok := directionFor(input.LastDirection()); ok {
		g.world.SetIntent(d)
	}

	g.world.Step()
	return platformcore.StepResult{State: g.State()}
}

// directionFor maps a platform action to a maze direction.
func directionFor(a platformcore.Action) (core.Direction, bool) {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp, true
	case platformcore.ActionDown:
		return core.DirDown, true
	case platformcore.ActionLeft:
		return core.DirLeft, true
	case platformcore.ActionRight:
		return core.DirRight, true
	default:
		return 0, false
	}
}

// DotsEaten reports how many dots the player has cleared this run.
func (g *Game) DotsEaten() int {
	if g.world == nil {
		return 0
	}
	return g.world.DotsEaten()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.world == nil {
		return platformcore.GameState{GameOver: g.err != nil}
	}
	status := g.world.Status()
	return platformcore.GameState{
		Score:    g.world.Score(),
		GameOver: status.Ended(),
		Won:      status == core.StatusWon,
		Paused:   status == core.StatusPaused,
		Ticks:    g.world.Ticks(),
	}
}
