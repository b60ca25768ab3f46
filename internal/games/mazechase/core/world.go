package core

import platformcore "github.com/vovakirdan/mazechase/internal/core"

// Status is the outcome state of a world.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusWon
	StatusLost
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Ended reports whether the status is terminal.
func (s Status) Ended() bool {
	return s == StatusWon || s == StatusLost
}

// Dot is a collectible placed on the maze.
type Dot struct {
	Col, Row int
	Box      platformcore.Rect
	Points   int
}

// Maze is the immutable result of building a layout: walls, dots and spawn
// points. Worlds never modify it.
type Maze struct {
	Cols, Rows  int
	Walls       []platformcore.Rect
	Gates       []Point // passable, undotted cells drawn as the ghost-house door
	Dots        []Dot
	PlayerSpawn Point
	GhostSpawns [PersonalityCount]Point
}

// Tuning holds speeds and timings for a world.
type Tuning struct {
	PlayerSpeed int
	Ghost       GhostTuning
}

// DefaultTuning returns the standard arcade timings at 60 ticks per second.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed: 24, // 10 ticks per cell
		Ghost: GhostTuning{
			Speed:         20,   // 12 ticks per cell
			ScatterTicks:  420,  // 7 seconds
			ChaseTicks:    1200, // 20 seconds
			DecisionTicks: 60,   // once per second
			ProbeSteps:    5,
		},
	}
}

// StepReport describes what happened during one World.Step.
type StepReport struct {
	Eaten   int           // Dots eaten this tick
	Flipped []Personality // Ghosts whose mode changed this tick
	Status  Status
}

// World owns all mutable simulation state for one game.
//
// Each Step runs in a fixed order: the player moves and eats, then the
// ghosts move in personality order reading the already-moved player, then
// contact and the win condition are checked.
type World struct {
	maze   Maze
	tuning Tuning
	arena  Arena

	player *Player
	ghosts [PersonalityCount]*Ghost
	alive  []bool

	remaining int
	eaten     int
	score     int
	ticks     int
	status    Status
}

// NewWorld creates a world for the maze and resets it.
func NewWorld(m Maze, t Tuning) *World {
	w := &World{
		maze:   m,
		tuning: t,
		arena: Arena{
			Walls:  m.Walls,
			Width:  m.Cols * CellSize,
			Height: m.Rows * CellSize,
		},
	}
	w.Reset()
	return w
}

// Reset rebuilds every piece of mutable state from the maze and tuning.
func (w *World) Reset() {
	w.player = NewPlayer(w.maze.PlayerSpawn, w.tuning.PlayerSpeed)
	for _, p := range Personalities {
		w.ghosts[p] = NewGhost(p, w.maze.GhostSpawns[p], w.tuning.Ghost)
	}

	w.alive = make([]bool, len(w.maze.Dots))
	for i := range w.alive {
		w.alive[i] = true
	}
	w.remaining = len(w.maze.Dots)
	w.eaten = 0
	w.score = 0
	w.ticks = 0
	w.status = StatusPlaying
	if w.remaining == 0 {
		w.status = StatusWon
	}
}

// SetIntent forwards a turn request to the player.
func (w *World) SetIntent(d Direction) {
	w.player.SetIntent(d)
}

// TogglePause switches between playing and paused. Ended worlds stay ended.
func (w *World) TogglePause() {
	switch w.status {
	case StatusPlaying:
		w.status = StatusPaused
	case StatusPaused:
		w.status = StatusPlaying
	}
}

// Step advances the world by one tick. It does nothing unless playing.
func (w *World) Step() StepReport {
	if w.status != StatusPlaying {
		return StepReport{Status: w.status}
	}
	w.ticks++

	var report StepReport

	w.player.Tick(&w.arena)
	report.Eaten = w.eatDots()

	for _, p := range Personalities {
		if w.ghosts[p].Tick(&w.arena, w.player, w) {
			report.Flipped = append(report.Flipped, p)
		}
	}

	switch {
	case w.remaining == 0:
		w.status = StatusWon
	case w.caught():
		w.status = StatusLost
	}

	report.Status = w.status
	return report
}

// eatDots removes every live dot under the player and returns the count.
func (w *World) eatDots() int {
	box := w.player.Box()
	n := 0
	for i, dot := range w.maze.Dots {
		if !w.alive[i] || !box.Intersects(dot.Box) {
			continue
		}
		w.alive[i] = false
		w.remaining--
		w.eaten++
		w.score += dot.Points
		n++
	}
	return n
}

// caught reports whether any ghost overlaps the player.
func (w *World) caught() bool {
	box := w.player.Box()
	for _, g := range w.ghosts {
		if g.Box().Intersects(box) {
			return true
		}
	}
	return false
}

// GhostPosition implements Roster.
func (w *World) GhostPosition(p Personality) (Point, bool) {
	if int(p) >= len(w.ghosts) || w.ghosts[p] == nil {
		return Point{}, false
	}
	return w.ghosts[p].Pos, true
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return *w.player
}

// Ghost returns a copy of the ghost with the given personality.
func (w *World) Ghost(p Personality) Ghost {
	return *w.ghosts[p]
}

// Ghosts returns copies of all ghosts in personality order.
func (w *World) Ghosts() []Ghost {
	out := make([]Ghost, 0, PersonalityCount)
	for _, g := range w.ghosts {
		out = append(out, *g)
	}
	return out
}

// Dots returns the live dots.
func (w *World) Dots() []Dot {
	out := make([]Dot, 0, w.remaining)
	for i, dot := range w.maze.Dots {
		if w.alive[i] {
			out = append(out, dot)
		}
	}
	return out
}

// Maze returns the immutable maze the world was built from.
func (w *World) Maze() *Maze {
	return &w.maze
}

// Arena returns the collision environment.
func (w *World) Arena() *Arena {
	return &w.arena
}

// Score returns points collected since the last reset.
func (w *World) Score() int { return w.score }

// Ticks returns the number of simulated ticks since the last reset.
func (w *World) Ticks() int { return w.ticks }

// Status returns the current status.
func (w *World) Status() Status { return w.status }

// DotsRemaining returns the number of live dots.
func (w *World) DotsRemaining() int { return w.remaining }

// DotsEaten returns the number of dots eaten since the last reset.
func (w *World) DotsEaten() int { return w.eaten }
