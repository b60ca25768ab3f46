package core

import platformcore "github.com/vovakirdan/mazechase/internal/core"

// Body is the movement state shared by the player and the ghosts.
type Body struct {
	Pos   Point
	Dir   Direction
	Speed int // World units per tick
}

// Box returns the current bounding box.
func (b Body) Box() platformcore.Rect {
	return CellBox(b.Pos)
}

// step returns the position after moving dist units along d.
func (b Body) step(d Direction, dist int) Point {
	return b.Pos.Add(d.Delta().Mul(dist))
}

// advance moves one speed-step along the current direction and rolls back if
// the move lands in a wall. Returns true when the move was rolled back.
func (b *Body) advance(a *Arena) bool {
	prev := b.Pos
	b.Pos = b.step(b.Dir, b.Speed)
	if a.Blocked(b.Pos) {
		b.Pos = prev
		return true
	}
	return false
}

// Player is the user-controlled actor.
type Player struct {
	Body

	intent    Direction
	hasIntent bool
}

// NewPlayer creates a player facing right.
func NewPlayer(pos Point, speed int) *Player {
	return &Player{
		Body: Body{Pos: pos, Dir: DirRight, Speed: speed},
	}
}

// SetIntent buffers a turn request, replacing any earlier unconsumed one.
// The direction is not validated; a blocked turn stays buffered.
func (p *Player) SetIntent(d Direction) {
	p.intent = d
	p.hasIntent = true
}

// Intent returns the buffered turn, if any.
func (p Player) Intent() (Direction, bool) {
	return p.intent, p.hasIntent
}

// Tick advances the player by one simulation step:
// take the buffered turn if its first step is clear, move, roll back on a
// wall hit and clamp to the arena.
func (p *Player) Tick(a *Arena) {
	if p.hasIntent && !a.Blocked(p.step(p.intent, p.Speed)) {
		p.Dir = p.intent
		p.hasIntent = false
	}

	p.advance(a)
	p.Pos = a.Clamp(p.Pos)
}
