package core

// Targeting distances in world units.
const (
	FlankLead     = 2 * CellSize // how far ahead of the player Inky pivots
	ShyRadius     = 8 * CellSize // Clyde retreats when closer than this
	decisionReach = CellSize     // lookahead used to score a direction
)

// Roster gives read-only access to ghost positions by personality.
// Inky uses it to find Blinky without holding a reference to it.
type Roster interface {
	GhostPosition(p Personality) (Point, bool)
}

// TargetInput is everything a targeting rule may look at.
type TargetInput struct {
	Personality Personality
	Mode        Mode
	Self        Point
	Player      Point
	PlayerDir   Direction
	Peer        Point
	HasPeer     bool
}

// Target returns the position a ghost steers toward.
func Target(in TargetInput) Point {
	profile := profiles[in.Personality]
	if in.Mode == ModeScatter {
		return profile.ScatterCorner
	}

	facing := in.PlayerDir.Delta()

	switch in.Personality {
	case Pinky:
		return Point{
			X: in.Player.X + facing.X*profile.ChaseOffset.X,
			Y: in.Player.Y + facing.Y*profile.ChaseOffset.Y,
		}

	case Inky:
		if !in.HasPeer {
			return in.Player
		}
		ahead := in.Player.Add(facing.Mul(FlankLead))
		return ahead.Add(ahead.Sub(in.Peer))

	case Clyde:
		if in.Self.Dist(in.Player) > ShyRadius {
			return in.Player
		}
		return profile.ScatterCorner

	default:
		return in.Player
	}
}
