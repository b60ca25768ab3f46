package mazechase

import "github.com/vovakirdan/mazechase/internal/games/mazechase/core"

// ActorSnapshot is the position and heading of one actor.
type ActorSnapshot struct {
	X, Y int
	Dir  core.Direction
	Mode core.Mode // Ghosts only
}

// Snapshot captures the complete game state for determinism testing and
// headless runs.
type Snapshot struct {
	Tick          int
	Score         int
	DotsRemaining int
	DotsEaten     int
	Status        core.Status
	Player        ActorSnapshot
	Ghosts        [core.PersonalityCount]ActorSnapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	return TakeSnapshot(g.world)
}

// TakeSnapshot captures a world's state.
func TakeSnapshot(w *core.World) Snapshot {
	p := w.Player()
	s := Snapshot{
		Tick:          w.Ticks(),
		Score:         w.Score(),
		DotsRemaining: w.DotsRemaining(),
		DotsEaten:     w.DotsEaten(),
		Status:        w.Status(),
		Player:        ActorSnapshot{X: p.Pos.X, Y: p.Pos.Y, Dir: p.Dir},
	}
	for i, gh := range w.Ghosts() {
		s.Ghosts[i] = ActorSnapshot{X: gh.Pos.X, Y: gh.Pos.Y, Dir: gh.Dir, Mode: gh.Mode()}
	}
	return s
}
