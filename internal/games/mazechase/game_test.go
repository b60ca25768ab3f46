package mazechase

import (
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
	"github.com/vovakirdan/mazechase/internal/registry"
)

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Maze Chase" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestTuningMatchesCoreDefaults(t *testing.T) {
	if got := Tuning(config.DefaultMazeConfig()); got != core.DefaultTuning() {
		t.Errorf("Tuning(default) = %+v, expected %+v", got, core.DefaultTuning())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 80, 24)
	g2 := newTestGame(t, 80, 24)

	input := platformcore.NewInputFrame()
	for i := range 600 {
		input.Clear()
		switch i {
		case 5:
			input.Set(platformcore.ActionLeft)
		case 90:
			input.Set(platformcore.ActionUp)
		case 200:
			input.Set(platformcore.ActionRight)
		case 320:
			input.Set(platformcore.ActionDown)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestDirectionInputSetsIntent(t *testing.T) {
	g := newTestGame(t, 80, 24)

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionLeft)
	g.Step(input)

	if dir := g.World().Player().Dir; dir != core.DirLeft {
		t.Errorf("player direction = %v, expected Left", dir)
	}
}

func TestLastDirectionWins(t *testing.T) {
	g := newTestGame(t, 80, 24)

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionUp)
	input.Set(platformcore.ActionLeft)
	g.Step(input)

	if dir := g.World().Player().Dir; dir != core.DirLeft {
		t.Errorf("player direction = %v, expected the later key", dir)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, 80, 24)
	empty := platformcore.NewInputFrame()
	g.Step(empty)

	pause := platformcore.NewInputFrame()
	pause.Set(platformcore.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	ticks := g.State().Ticks
	for range 10 {
		g.Step(empty)
	}
	if g.State().Ticks != ticks {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected resume on second pause")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 80, 24)
	empty := platformcore.NewInputFrame()
	for range 5 {
		g.Step(empty)
	}

	restart := platformcore.NewInputFrame()
	restart.Set(platformcore.ActionRestart)
	g.Step(restart)
	if g.State().Ticks != 6 {
		t.Errorf("Ticks = %d, restart should only apply after the game ends", g.State().Ticks)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if !strings.Contains(out, "█") {
		t.Error("walls not drawn")
	}
	if !strings.Contains(out, "(<") {
		t.Error("player not drawn")
	}
	if !strings.Contains(out, "{}") {
		t.Error("ghosts not drawn")
	}
	if got := strings.Count(out, "·"); got != len(g.World().Maze().Dots) {
		t.Errorf("drew %d dots, expected %d", got, len(g.World().Maze().Dots))
	}

	// Blinky in scatter is drawn in red.
	x, y := g.worldToScreen(g.World().Ghost(core.Blinky).Pos)
	if c := screen.GetCell(x, y); c.Color != platformcore.ColorRed {
		t.Errorf("Blinky color = %v, expected red", c.Color)
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, 80, 24)
	pause := platformcore.NewInputFrame()
	pause.Set(platformcore.ActionPause)
	g.Step(pause)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("pause overlay not drawn")
	}
}

func TestTooSmall(t *testing.T) {
	g := newTestGame(t, 40, 10)
	g.Step(platformcore.NewInputFrame())
	if g.State().Ticks != 0 {
		t.Error("game should not advance when the window is too small")
	}

	screen := platformcore.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small overlay not drawn")
	}

	g.Resize(80, 24)
	g.Step(platformcore.NewInputFrame())
	if g.State().Ticks != 1 {
		t.Error("game should resume after resize")
	}
}

func TestBadDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetDifficultyPreset("insane")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(platformcore.DefaultConfig())
	if g.Err() == nil {
		t.Fatal("expected error for unknown difficulty")
	}
	if !g.State().GameOver {
		t.Error("failed game should report game over")
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start game") {
		t.Error("error overlay not drawn")
	}
}

func TestDifficultyApplied(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	want := config.DefaultMazeConfig()
	config.ApplyMazePreset(&want, config.DifficultyHard)
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, expected %+v", cfg, want)
	}
}

func TestInstanceDifficultyOverridesPackagePreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.SetDifficulty("easy")
	g.Reset(platformcore.DefaultConfig())
	if err := g.Err(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	want := config.DefaultMazeConfig()
	config.ApplyMazePreset(&want, config.DifficultyEasy)
	if g.cfg != want {
		t.Errorf("cfg = %+v, expected easy preset %+v", g.cfg, want)
	}
}

func TestDotsEaten(t *testing.T) {
	if got := New().DotsEaten(); got != 0 {
		t.Errorf("DotsEaten() before reset = %d", got)
	}

	g := newTestGame(t, 80, 24)
	if got := g.DotsEaten(); got != 0 {
		t.Errorf("DotsEaten() = %d at start", got)
	}
}
