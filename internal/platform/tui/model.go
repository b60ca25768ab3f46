package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// flashTicks is how long a status message stays on the bottom row.
const flashTicks = 90

// resizer is implemented by games that can follow a terminal resize without
// losing their state.
type resizer interface {
	Resize(w, h int)
}

// dotCounter is implemented by games that report cleared dots.
type dotCounter interface {
	DotsEaten() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	standalone bool // Quits the program on back instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded

	flash      string
	flashTicks int
}

// NewModel creates a standalone Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := newModel(game, store, cfg)
	m.standalone = true
	return m
}

// NewGameModel creates a model that hands control back to a menu when the
// player leaves.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return newModel(game, store, cfg)
}

func newModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Copy):
		m.copyScreen()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.recordQuit()
		return m, tea.Quit
	case action == core.ActionBack:
		// Leaving mid-run requires pausing first
		if m.gameState.GameOver || m.gameState.Paused {
			m.recordQuit()
			m.backToMenu = true
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.flashTicks > 0 {
		m.flashTicks--
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run on game over (once)
	if m.gameState.GameOver {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.saveRun(outcome)
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordQuit stores an unfinished run that scored anything.
func (m *Model) recordQuit() {
	if m.gameState.GameOver || m.gameState.Score == 0 {
		return
	}
	m.saveRun(storage.OutcomeQuit)
}

// saveRun writes the current run to the store once per run.
func (m *Model) saveRun(outcome storage.Outcome) {
	if m.runSaved || m.gameState.Ticks == 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Outcome: outcome,
		Ticks:   m.gameState.Ticks,
	}
	if dc, ok := m.game.(dotCounter); ok {
		run.DotsEaten = dc.DotsEaten()
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(run)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setFlash("screenshot failed")
		return
	}
	dir := filepath.Join(home, ".mazechase", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setFlash("screenshot failed")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setFlash("screenshot failed")
		return
	}
	m.setFlash("saved " + path)
}

// copyScreen puts the plain-text screen on the system clipboard.
func (m *Model) copyScreen() {
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.setFlash("clipboard unavailable")
		return
	}
	m.setFlash("screen copied")
}

func (m *Model) setFlash(msg string) {
	m.flash = msg
	m.flashTicks = flashTicks
}

// BackToMenu reports whether the player asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Quitting reports whether the player asked to quit entirely.
func (m Model) Quitting() bool {
	return m.quitting
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.flashTicks > 0 && m.screen.Height() > 0 {
		m.screen.DrawTextWithColor(0, m.screen.Height()-1, " "+m.flash, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
