package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	state   core.GameState
	resets  int
	steps   int
	inputs  []core.InputFrame
	resized [2]int
	dots    int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in)
	if !g.state.GameOver {
		g.state.Ticks++
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) DotsEaten() int { return g.dots }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func newTestModel(game *fakeGame, store *storage.Store, standalone bool) Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	if standalone {
		return NewModel(game, store, cfg)
	}
	return NewGameModel(game, store, cfg)
}

func TestModelPassesInputToNextTick(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil, true)
	m.Init()
	if game.resets != 1 {
		t.Fatalf("Init should reset the game once, got %d", game.resets)
	}

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, TickMsg{})
	if !game.inputs[0].Has(core.ActionLeft) {
		t.Error("first tick should see Left")
	}

	_, _ = update(t, m, TickMsg{})
	if game.inputs[1].Has(core.ActionLeft) {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelQuit(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil, true)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.Quitting() {
		t.Error("model should report quitting")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackRequiresPauseOrGameOver(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil, false)
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	game.state.Paused = true
	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Fatal("back should leave a paused game")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program on back")
	}
	if m.Quitting() {
		t.Error("back is not a quit")
	}
}

func TestModelStandaloneBackQuits(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil, true)
	game.state.GameOver = true
	m, _ = update(t, m, TickMsg{})

	m, cmd := update(t, m, runeKey('b'))
	if cmd == nil || !m.Quitting() {
		t.Error("standalone back should quit")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil, true)
	m.Init()

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if game.resets != 1 {
		t.Errorf("restart while playing should be ignored, resets = %d", game.resets)
	}

	game.state.GameOver = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('r'))
	_, _ = update(t, m, TickMsg{})
	if game.resets != 2 {
		t.Errorf("restart after game over should reset, resets = %d", game.resets)
	}
}

func TestModelRecordsFinishedRunOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{dots: 12}
	m := newTestModel(game, store, true)

	m, _ = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 120, GameOver: true, Won: false, Ticks: 400}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != 120 || r.Outcome != storage.OutcomeLost || r.Ticks != 400 || r.DotsEaten != 12 {
		t.Errorf("unexpected run: %+v", r)
	}

	// A restarted game is a new run.
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 2090, GameOver: true, Won: true, Ticks: 5000}
	_, _ = update(t, m, TickMsg{})

	runs, _ = store.TopRuns("fake", 10)
	if len(runs) != 2 || runs[0].Outcome != storage.OutcomeWon {
		t.Errorf("expected a won run on top, got %+v", runs)
	}
}

func TestModelRecordsQuitWithScore(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := newTestModel(game, store, true)

	m, _ = update(t, m, TickMsg{})
	game.state.Score = 30
	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, runeKey('q'))

	runs, _ := store.TopRuns("fake", 10)
	if len(runs) != 1 || runs[0].Outcome != storage.OutcomeQuit {
		t.Fatalf("expected one quit run, got %+v", runs)
	}
}

func TestModelSkipsQuitWithoutScore(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := newTestModel(game, store, true)

	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, runeKey('q'))

	runs, _ := store.TopRuns("fake", 10)
	if len(runs) != 0 {
		t.Errorf("scoreless quit should not be recorded, got %+v", runs)
	}
}

func TestModelResizeKeepsGameState(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil, true)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v", game.resized)
	}
	if game.resets != 1 {
		t.Error("resize should not reset a game that can follow it")
	}
	if !strings.Contains(m.View(), "fake game") {
		t.Error("view should render the game")
	}
}
