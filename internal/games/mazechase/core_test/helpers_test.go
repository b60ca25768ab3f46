package core_test

import (
	"testing"

	platformcore "github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/levels"
)

// arenaFrom builds an arena from '#' cells only; everything else is open.
func arenaFrom(rows ...string) *core.Arena {
	a := &core.Arena{Height: len(rows) * core.CellSize}
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				a.Walls = append(a.Walls, core.CellBox(core.CellPoint(x, y)))
			}
		}
		a.Width = max(a.Width, len(row)*core.CellSize)
	}
	return a
}

// worldFrom builds a world from a full layout with spawns.
func worldFrom(t *testing.T, tuning core.Tuning, rows ...string) *core.World {
	t.Helper()
	m, err := levels.Build(rows, 10)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return core.NewWorld(m, tuning)
}

// slowTuning keeps ghosts in scatter and never schedules a decision, so a
// test only sees collision-driven behavior.
func slowTuning() core.Tuning {
	t := core.DefaultTuning()
	t.Ghost.ScatterTicks = 1 << 20
	t.Ghost.ChaseTicks = 1 << 20
	t.Ghost.DecisionTicks = 1 << 20
	return t
}

func overlapsWall(box platformcore.Rect, a *core.Arena) bool {
	return platformcore.AnyIntersect(box, a.Walls)
}
