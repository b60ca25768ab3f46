package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenBoard
)

// difficultySetter is implemented by games that accept a per-instance preset.
type difficultySetter interface {
	SetDifficulty(preset string)
}

// SessionModel drives one remote player through menu, games and the
// scoreboard inside a single Bubble Tea program.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	user   string
	log    *log.Logger

	screen sessionScreen
	menu   MenuModel
	game   Model
	board  ScoreboardModel

	runs     int  // games started in this session
	reported bool // current run's end has been logged
	quitting bool
}

// NewSessionModel starts a session on the menu. logger may be nil.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, user string, logger *log.Logger) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		user:   user,
		log:    logger,
		menu:   NewMenuModel(store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return nil
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenGame:
		cmd = m.updateGame(msg)
	case screenBoard:
		cmd = m.updateBoard(msg)
	default:
		cmd = m.updateMenu(msg)
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *SessionModel) updateMenu(msg tea.Msg) tea.Cmd {
	// The menu's commands only end a standalone menu program.
	next, _ := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return nil
	case m.menu.WantsScoreboard():
		m.board = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenBoard
		return m.board.Init()
	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}
	return nil
}

// startGame creates a fresh game with the menu's difficulty.
func (m *SessionModel) startGame(id string) tea.Cmd {
	game, err := registry.Create(id)
	if err != nil {
		m.event("game unavailable", "game", id, "err", err)
		m.menu = NewMenuModel(m.store, m.config)
		return nil
	}
	preset := m.menu.Difficulty()
	if ds, ok := game.(difficultySetter); ok {
		ds.SetDifficulty(string(preset))
	}

	m.game = NewGameModel(game, m.store, m.config)
	m.screen = screenGame
	m.reported = false
	m.runs++
	m.event("game started", "game", id, "difficulty", preset, "run", m.runs)
	return m.game.Init()
}

func (m *SessionModel) updateBoard(msg tea.Msg) tea.Cmd {
	next, cmd := m.board.Update(msg)
	m.board = next.(ScoreboardModel)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
	case m.board.IsGoingBack():
		m.backToMenu()
		return nil
	}
	return cmd
}

func (m *SessionModel) updateGame(msg tea.Msg) tea.Cmd {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	state := m.game.State()
	switch {
	case state.GameOver && !m.reported:
		m.reported = true
		outcome := storage.OutcomeLost
		if state.Won {
			outcome = storage.OutcomeWon
		}
		m.event("game finished", "outcome", outcome, "score", state.Score, "ticks", state.Ticks)
	case !state.GameOver:
		m.reported = false
	}

	switch {
	case m.game.BackToMenu():
		m.backToMenu()
		return nil
	case m.game.Quitting():
		m.quitting = true
	}
	return cmd
}

// backToMenu rebuilds the menu so best scores reflect the latest runs.
func (m *SessionModel) backToMenu() {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
}

func (m SessionModel) event(msg string, kv ...any) {
	if m.log == nil {
		return
	}
	m.log.Info(msg, append([]any{"user", m.user}, kv...)...)
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenBoard:
		return m.board.View()
	}
	return m.menu.View()
}
