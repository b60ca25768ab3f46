package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true)
)

// menuParade is drawn under the title: the player followed by the four ghosts.
var menuParade = []struct {
	glyph string
	color core.Color
}{
	{"C ", core.ColorYellow},
	{"· · ", core.ColorWhite},
	{"M ", core.ColorRed},
	{"M ", core.ColorPink},
	{"M ", core.ColorCyan},
	{"M", core.ColorOrange},
}

// MenuItem is one playable entry.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the title screen: pick a game and a difficulty, or open
// the scoreboard.
type MenuModel struct {
	items  []MenuItem
	best   map[string]int
	cursor int
	preset int // index into config.Presets

	config core.RuntimeConfig
	keys   *KeyMapper

	chosen     *MenuItem
	scoreboard bool
	quitting   bool
}

// NewMenuModel lists the registered games and loads their best scores.
// store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		best:   make(map[string]int),
		preset: presetIndex(config.DifficultyNormal),
		config: cfg,
		keys:   NewKeyMapper(),
	}
	for _, info := range registry.List() {
		m.items = append(m.items, MenuItem{GameID: info.ID, Title: info.Title})
		if store == nil {
			continue
		}
		if high, err := store.HighScore(info.ID); err == nil {
			m.best[info.ID] = high
		}
	}
	return m
}

func presetIndex(p config.DifficultyPreset) int {
	for i, preset := range config.Presets {
		if preset == p {
			return i
		}
	}
	return 0
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(0, m.cursor-1)
		case MenuActionDown:
			m.cursor = min(len(m.items)-1, m.cursor+1)
		case MenuActionPrev:
			m.preset = max(0, m.preset-1)
		case MenuActionNext:
			m.preset = min(len(config.Presets)-1, m.preset+1)
		case MenuActionSelect:
			if len(m.items) == 0 {
				return m, nil
			}
			item := m.items[m.cursor]
			m.chosen = &item
			return m, tea.Quit
		case MenuActionScoreboard:
			m.scoreboard = true
			return m, tea.Quit
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		menuTitleStyle.Render("  M A Z E   C H A S E  "),
		m.parade(),
		menuHintStyle.Render("Clear every dot. Don't get caught."),
		"",
	}
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuPickStyle.Render("> " + item.Title)
		}
		if high := m.best[item.GameID]; high > 0 {
			line += fmt.Sprintf("  (best %d)", high)
		}
		lines = append(lines, line)
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Difficulty: < %s >", m.Difficulty()),
		"",
		menuHintStyle.Render("↑/↓ game  ←/→ difficulty  enter play  tab scores  q quit"),
	)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, w))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m MenuModel) parade() string {
	var b strings.Builder
	for _, p := range menuParade {
		b.WriteString(colorStyles[p.color].Render(p.glyph))
	}
	return b.String()
}

// Selected returns the chosen game, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.chosen
}

// Difficulty returns the chosen preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.preset]
}

func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the runtime config, including the latest window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left to center it, ignoring ANSI styling.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what the player chose on the title screen.
type MenuResult struct {
	GameID          string
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the title screen in its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{
		Config:          m.Config(),
		Difficulty:      m.Difficulty(),
		WantsScoreboard: m.WantsScoreboard(),
	}
	switch {
	case res.WantsScoreboard:
	case m.Selected() != nil && !m.IsQuitting():
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
