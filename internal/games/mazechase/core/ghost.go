package core

import "math"

// GhostTuning holds the timing and speed parameters shared by all ghosts.
type GhostTuning struct {
	Speed         int // World units per tick
	ScatterTicks  int // Dwell in scatter before switching to chase
	ChaseTicks    int // Dwell in chase before switching back
	DecisionTicks int // Ticks between scheduled direction decisions
	ProbeSteps    int // Probe distance in speed-steps when testing a direction
}

// Ghost is an autonomous pursuer. Its direction is re-decided on a fixed
// cadence and immediately whenever it runs into a wall.
type Ghost struct {
	Body

	personality   Personality
	clock         ModeClock
	decisionTimer int
	decisionTicks int
	probe         int
}

// NewGhost creates a ghost facing right in scatter mode.
func NewGhost(p Personality, pos Point, t GhostTuning) *Ghost {
	return &Ghost{
		Body:          Body{Pos: pos, Dir: DirRight, Speed: t.Speed},
		personality:   p,
		clock:         NewModeClock(t.ScatterTicks, t.ChaseTicks),
		decisionTicks: t.DecisionTicks,
		probe:         t.ProbeSteps * t.Speed,
	}
}

// Personality returns the ghost's fixed identity.
func (g Ghost) Personality() Personality {
	return g.personality
}

// Mode returns the current behavioral mode.
func (g Ghost) Mode() Mode {
	return g.clock.Mode()
}

// ModeTimer returns ticks since the last mode flip.
func (g Ghost) ModeTimer() int {
	return g.clock.Timer()
}

// DecisionTimer returns ticks since the last scheduled decision.
func (g Ghost) DecisionTimer() int {
	return g.decisionTimer
}

// TargetFor computes the ghost's current target. roster may be nil, in which
// case ghosts that need a peer fall back to the player's position.
func (g *Ghost) TargetFor(player *Player, roster Roster) Point {
	in := TargetInput{
		Personality: g.personality,
		Mode:        g.clock.Mode(),
		Self:        g.Pos,
		Player:      player.Pos,
		PlayerDir:   player.Dir,
	}
	if profile := profiles[g.personality]; profile.UsesPeer && roster != nil {
		in.Peer, in.HasPeer = roster.GhostPosition(profile.Peer)
	}
	return Target(in)
}

// PossibleDirections returns, in tie-break order, the directions whose probe
// box is clear of walls.
func (g *Ghost) PossibleDirections(a *Arena) []Direction {
	possible := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if !a.Blocked(g.step(d, g.probe)) {
			possible = append(possible, d)
		}
	}
	return possible
}

// ChooseDirection turns the ghost toward target. Reversing is only allowed
// when it is the sole open direction; with no open direction the ghost keeps
// its heading.
func (g *Ghost) ChooseDirection(target Point, a *Arena) {
	possible := g.PossibleDirections(a)
	if len(possible) == 0 {
		return
	}

	if len(possible) > 1 {
		reverse := g.Dir.Opposite()
		filtered := possible[:0]
		for _, d := range possible {
			if d != reverse {
				filtered = append(filtered, d)
			}
		}
		possible = filtered
	}

	best := possible[0]
	bestDist := math.Inf(1)
	for _, d := range possible {
		dist := g.step(d, decisionReach).Dist(target)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	g.Dir = best
}

// Tick advances the ghost by one simulation step. A wall hit forces an extra
// decision without touching the scheduled cadence. Returns true when the
// ghost's mode flipped this tick.
func (g *Ghost) Tick(a *Arena, player *Player, roster Roster) bool {
	flipped := g.clock.Advance()

	g.decisionTimer++
	if g.decisionTimer >= g.decisionTicks {
		g.decisionTimer = 0
		g.ChooseDirection(g.TargetFor(player, roster), a)
	}

	if g.advance(a) {
		g.ChooseDirection(g.TargetFor(player, roster), a)
	}

	g.Pos = a.Clamp(g.Pos)
	return flipped
}
