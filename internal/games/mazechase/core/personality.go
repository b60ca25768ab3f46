package core

import platformcore "github.com/vovakirdan/mazechase/internal/core"

// Size of the standard maze in cells. Scatter corners are fixed to it.
const (
	StandardCols = 28
	StandardRows = 22
)

// Personality identifies one of the four ghosts and its targeting rule.
type Personality uint8

const (
	Blinky Personality = iota // direct chaser
	Pinky                     // ambusher
	Inky                      // flanker, reads Blinky's position
	Clyde                     // shy
)

// PersonalityCount is the number of ghosts in a world.
const PersonalityCount = 4

// Personalities lists every personality in update order.
var Personalities = [PersonalityCount]Personality{Blinky, Pinky, Inky, Clyde}

// String returns the ghost's name.
func (p Personality) String() string {
	if int(p) < len(profiles) {
		return profiles[p].Name
	}
	return "Unknown"
}

// Profile is the fixed per-personality configuration.
type Profile struct {
	Name          string
	Color         platformcore.Color
	ScatterCorner Point
	ChaseOffset   Point       // Pinky: projection ahead of the player
	Peer          Personality // Inky: ghost whose position shapes the target
	UsesPeer      bool
}

var profiles = [PersonalityCount]Profile{
	Blinky: {
		Name:          "Blinky",
		Color:         platformcore.ColorRed,
		ScatterCorner: CellPoint(StandardCols-1, 0),
	},
	Pinky: {
		Name:          "Pinky",
		Color:         platformcore.ColorPink,
		ScatterCorner: CellPoint(0, 0),
		ChaseOffset:   Point{X: 4 * CellSize, Y: -4 * CellSize},
	},
	Inky: {
		Name:          "Inky",
		Color:         platformcore.ColorCyan,
		ScatterCorner: CellPoint(StandardCols-1, StandardRows-1),
		Peer:          Blinky,
		UsesPeer:      true,
	},
	Clyde: {
		Name:          "Clyde",
		Color:         platformcore.ColorOrange,
		ScatterCorner: CellPoint(0, StandardRows-1),
	},
}

// ProfileOf returns a copy of the profile for p.
func ProfileOf(p Personality) Profile {
	return profiles[p]
}
