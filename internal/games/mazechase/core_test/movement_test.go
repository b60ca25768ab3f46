package core_test

import (
	"testing"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
)

func TestPlayerStopsAtCorridorEnd(t *testing.T) {
	a := arenaFrom(
		"#######",
		"#     #",
		"#######",
	)
	p := core.NewPlayer(core.CellPoint(1, 1), 24)

	// 40 steps of 24 bring the box flush against the wall at column 6.
	for range 40 {
		p.Tick(a)
	}
	want := core.P(5*core.CellSize, core.CellSize)
	if p.Pos != want {
		t.Fatalf("after 40 ticks Pos = %v, expected %v", p.Pos, want)
	}

	for i := range 100 {
		p.Tick(a)
		if p.Pos != want {
			t.Fatalf("tick %d: player moved into wall, Pos = %v", i, p.Pos)
		}
		if p.Dir != core.DirRight {
			t.Fatalf("tick %d: direction changed to %v after hitting wall", i, p.Dir)
		}
	}

	p.SetIntent(core.DirLeft)
	p.Tick(a)
	if p.Dir != core.DirLeft || p.Pos.X != want.X-24 {
		t.Errorf("new intent should resume movement, Dir = %v Pos = %v", p.Dir, p.Pos)
	}
	if _, ok := p.Intent(); ok {
		t.Error("intent should be cleared once applied")
	}
}

func TestPlayerBlockedIntentIsRetained(t *testing.T) {
	a := arenaFrom(
		"#########",
		"#       #",
		"###### ##",
		"#########",
	)
	p := core.NewPlayer(core.CellPoint(1, 1), 24)
	p.SetIntent(core.DirDown)

	// The opening below is at column 6; the player reaches it after 50 ticks.
	for i := 1; i <= 50; i++ {
		p.Tick(a)
		if p.Dir != core.DirRight {
			t.Fatalf("tick %d: blocked intent was applied, Dir = %v", i, p.Dir)
		}
		if d, ok := p.Intent(); !ok || d != core.DirDown {
			t.Fatalf("tick %d: blocked intent was dropped", i)
		}
	}
	if p.Pos.X != 6*core.CellSize {
		t.Fatalf("expected player at the opening, Pos = %v", p.Pos)
	}

	p.Tick(a)
	if p.Dir != core.DirDown {
		t.Errorf("intent should apply at the opening, Dir = %v", p.Dir)
	}
	if _, ok := p.Intent(); ok {
		t.Error("applied intent should be cleared")
	}
	if p.Pos != core.P(6*core.CellSize, core.CellSize+24) {
		t.Errorf("player should have stepped down, Pos = %v", p.Pos)
	}
}

func TestPlayerIntentOverwrite(t *testing.T) {
	p := core.NewPlayer(core.P(0, 0), 24)
	p.SetIntent(core.DirUp)
	p.SetIntent(core.DirLeft)

	d, ok := p.Intent()
	if !ok || d != core.DirLeft {
		t.Errorf("Intent() = %v, %v; expected Left, true", d, ok)
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	a := arenaFrom(
		"   ",
		"   ",
	)
	p := core.NewPlayer(core.CellPoint(1, 0), 24)
	for range 50 {
		p.Tick(a)
	}
	if p.Pos.X != 2*core.CellSize {
		t.Errorf("player should be clamped at the right bound, Pos = %v", p.Pos)
	}
}

func TestGhostDeadEndReverses(t *testing.T) {
	a := arenaFrom(
		"#####",
		"#   #",
		"#####",
	)
	g := core.NewGhost(core.Blinky, core.CellPoint(3, 1), slowTuning().Ghost)

	g.ChooseDirection(core.CellPoint(4, 1), a)
	if g.Dir != core.DirLeft {
		t.Errorf("ghost in a dead end should reverse, Dir = %v", g.Dir)
	}
}

func TestGhostDoesNotReverseWithAlternatives(t *testing.T) {
	a := arenaFrom(
		"#######",
		"#     #",
		"#######",
	)
	g := core.NewGhost(core.Blinky, core.CellPoint(3, 1), slowTuning().Ghost)

	// Target is behind the ghost, but forward is still open.
	g.ChooseDirection(core.CellPoint(0, 1), a)
	if g.Dir != core.DirRight {
		t.Errorf("ghost should not reverse while forward is open, Dir = %v", g.Dir)
	}
}

func TestGhostPicksClosestDirection(t *testing.T) {
	a := arenaFrom(
		"#######",
		"#     #",
		"#     #",
		"#     #",
		"#     #",
		"#     #",
		"#######",
	)
	g := core.NewGhost(core.Blinky, core.CellPoint(3, 3), slowTuning().Ghost)

	g.ChooseDirection(core.CellPoint(3, 10), a)
	if g.Dir != core.DirDown {
		t.Errorf("expected Down toward target below, got %v", g.Dir)
	}
}

func TestGhostTieBreakOrder(t *testing.T) {
	a := arenaFrom(
		"#######",
		"#     #",
		"#     #",
		"#     #",
		"#     #",
		"#     #",
		"#######",
	)
	g := core.NewGhost(core.Blinky, core.CellPoint(3, 3), slowTuning().Ghost)

	// Up, Down and Right all end one cell from the ghost's own position;
	// Left is excluded as the reverse. Up comes first.
	g.ChooseDirection(g.Pos, a)
	if g.Dir != core.DirUp {
		t.Errorf("tie should resolve to Up, got %v", g.Dir)
	}
}

func TestGhostStallsWhenBoxedIn(t *testing.T) {
	a := arenaFrom(
		"###",
		"# #",
		"###",
	)
	g := core.NewGhost(core.Blinky, core.CellPoint(1, 1), slowTuning().Ghost)
	g.Dir = core.DirLeft

	if n := len(g.PossibleDirections(a)); n != 0 {
		t.Fatalf("expected no possible directions, got %d", n)
	}
	g.ChooseDirection(core.P(0, 0), a)
	if g.Dir != core.DirLeft {
		t.Errorf("boxed-in ghost should keep its direction, Dir = %v", g.Dir)
	}

	player := core.NewPlayer(core.CellPoint(5, 5), 24)
	for range 10 {
		g.Tick(a, player, nil)
	}
	if g.Pos != core.CellPoint(1, 1) {
		t.Errorf("boxed-in ghost moved to %v", g.Pos)
	}
}

func TestGhostCollisionRedecidesWithoutResettingCadence(t *testing.T) {
	a := arenaFrom(
		"#####",
		"#   #",
		"#####",
	)
	g := core.NewGhost(core.Blinky, core.CellPoint(1, 1), slowTuning().Ghost)
	player := core.NewPlayer(core.CellPoint(1, 1), 24)

	// 24 ticks of 20 units reach column 3; the 25th hits the wall.
	for range 24 {
		g.Tick(a, player, nil)
	}
	if g.Pos != core.CellPoint(3, 1) || g.Dir != core.DirRight {
		t.Fatalf("expected ghost at column 3 heading right, Pos = %v Dir = %v", g.Pos, g.Dir)
	}

	g.Tick(a, player, nil)
	if g.Pos != core.CellPoint(3, 1) {
		t.Errorf("collision should roll back, Pos = %v", g.Pos)
	}
	if g.Dir != core.DirLeft {
		t.Errorf("collision should force a new direction, Dir = %v", g.Dir)
	}
	if g.DecisionTimer() != 25 {
		t.Errorf("forced decision should not touch the cadence timer, got %d", g.DecisionTimer())
	}

	g.Tick(a, player, nil)
	if g.Pos.X != 3*core.CellSize-20 {
		t.Errorf("ghost should move left after redirect, Pos = %v", g.Pos)
	}
}

func TestGhostScheduledDecision(t *testing.T) {
	a := arenaFrom(
		"#######",
		"#     #",
		"#     #",
		"#     #",
		"#######",
	)
	tuning := slowTuning().Ghost
	tuning.DecisionTicks = 3
	g := core.NewGhost(core.Blinky, core.CellPoint(1, 1), tuning)
	player := core.NewPlayer(core.CellPoint(1, 3), 24)

	g.Tick(a, player, nil)
	g.Tick(a, player, nil)
	if g.Dir != core.DirRight || g.DecisionTimer() != 2 {
		t.Fatalf("no decision expected before cadence, Dir = %v timer = %d", g.Dir, g.DecisionTimer())
	}

	// Scatter target is Blinky's top-right corner: keep heading right.
	g.Tick(a, player, nil)
	if g.DecisionTimer() != 0 {
		t.Errorf("decision timer should reset on cadence, got %d", g.DecisionTimer())
	}
	if g.Dir != core.DirRight {
		t.Errorf("expected Right toward scatter corner, got %v", g.Dir)
	}
}
