package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForPanel = 80  // Minimum width to show the stats panel
	panelWidth       = 24  // Width of the stats panel
	maxRuns          = 100 // Max runs to load
	ticksPerSecond   = 60
)

// runFilter narrows the table to one kind of outcome.
type runFilter int

const (
	filterAll runFilter = iota
	filterWon
	filterLost
	filterQuit
	filterCount
)

func (f runFilter) String() string {
	switch f {
	case filterWon:
		return "Won"
	case filterLost:
		return "Lost"
	case filterQuit:
		return "Quit"
	default:
		return "All"
	}
}

func (f runFilter) keep(r storage.Run) bool {
	switch f {
	case filterWon:
		return r.Outcome == storage.OutcomeWon
	case filterLost:
		return r.Outcome == storage.OutcomeLost
	case filterQuit:
		return r.Outcome == storage.OutcomeQuit
	default:
		return true
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best recorded runs with outcome filters and a
// summary of every run.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	runs      []storage.Run // Everything loaded, best first
	shown     []storage.Run // runs after the filter
	stats     *storage.GameStats
	filter    runFilter
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a scoreboard for the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		title:  "Maze Chase",
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if games := registry.List(); len(games) > 0 {
		m.gameID = games[0].ID
		m.title = games[0].Title
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable builds the run table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 6},
		{Title: "Dots", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showPanel() {
		tableWidth -= panelWidth + 4 // Panel + border + gap
	}
	// Give spare space to the date column
	if tableWidth > 60 {
		columns[5].Width = min(tableWidth-41, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Title, tabs, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m ScoreboardModel) showPanel() bool {
	return m.width >= minWidthForPanel
}

// load reads runs and stats from the store.
func (m *ScoreboardModel) load() {
	m.runs = nil
	m.stats = nil
	if m.store != nil && m.gameID != "" {
		if runs, err := m.store.TopRuns(m.gameID, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}
	m.applyFilter()
}

// applyFilter refreshes the table rows for the current filter. Ranks stay
// those of the unfiltered list.
func (m *ScoreboardModel) applyFilter() {
	m.shown = nil
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		if !m.filter.keep(r) {
			continue
		}
		m.shown = append(m.shown, r)
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			string(r.Outcome),
			fmt.Sprintf("%d", r.DotsEaten),
			formatTicks(r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatTicks renders a tick count as m:ss of play time.
func formatTicks(ticks int) string {
	secs := ticks / ticksPerSecond
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// statsLine summarizes every recorded run on one line.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Runs: %d  Wins: %d  Best: %d  Avg: %.0f  Dots: %d",
		m.stats.GamesCount, m.stats.Wins, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalDots)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % filterCount
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + filterCount - 1) % filterCount
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES - "+m.title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableBox := boxStyle.Render(m.renderTableContent())

	if m.showPanel() {
		panel := boxStyle.Width(panelWidth).Render(m.renderStatsPanel())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panel, "  ", tableBox))
	} else {
		b.WriteString(tableBox)
		if line := m.statsLine(); line != "" {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs draws the outcome filters with the active one highlighted.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeStyle := tabStyle.
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	tabs := make([]string, 0, filterCount)
	for f := filterAll; f < filterCount; f++ {
		if f == m.filter {
			tabs = append(tabs, activeStyle.Render(f.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(f.String()))
		}
	}
	return strings.Join(tabs, " ")
}

// renderStatsPanel lists the aggregate numbers for every run.
func (m ScoreboardModel) renderStatsPanel() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "Runs: 0"
	}
	s := m.stats
	winRate := float64(s.Wins) * 100 / float64(s.GamesCount)

	var b strings.Builder
	fmt.Fprintf(&b, "Runs:   %d\n", s.GamesCount)
	fmt.Fprintf(&b, "Wins:   %d (%.0f%%)\n", s.Wins, winRate)
	fmt.Fprintf(&b, "Best:   %d\n", s.HighScore)
	fmt.Fprintf(&b, "Avg:    %.0f\n", s.AvgScore)
	fmt.Fprintf(&b, "Dots:   %d\n", s.TotalDots)
	fmt.Fprintf(&b, "Last:   %s", s.LastPlayed.Format("Jan 02 15:04"))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.shown) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		if len(m.runs) > 0 {
			return emptyStyle.Render(fmt.Sprintf("No %s runs yet.", strings.ToLower(m.filter.String())))
		}
		return emptyStyle.Render("No runs recorded yet.\nClear a few dots to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
