package core

// Mode is a ghost's behavioral phase.
type Mode uint8

const (
	ModeScatter Mode = iota
	ModeChase
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	default:
		return "unknown"
	}
}

// ModeClock flips a ghost between scatter and chase on fixed dwell times.
// It only counts ticks; nothing else in the world influences it.
type ModeClock struct {
	mode         Mode
	timer        int
	scatterTicks int
	chaseTicks   int
}

// NewModeClock creates a clock starting in scatter mode.
func NewModeClock(scatterTicks, chaseTicks int) ModeClock {
	return ModeClock{
		mode:         ModeScatter,
		scatterTicks: scatterTicks,
		chaseTicks:   chaseTicks,
	}
}

// Advance counts one tick and flips the mode when its dwell has elapsed.
// Returns true on the tick the mode changed.
func (c *ModeClock) Advance() bool {
	c.timer++

	dwell := c.scatterTicks
	next := ModeChase
	if c.mode == ModeChase {
		dwell = c.chaseTicks
		next = ModeScatter
	}

	if c.timer < dwell {
		return false
	}
	c.mode = next
	c.timer = 0
	return true
}

// Mode returns the current mode.
func (c ModeClock) Mode() Mode {
	return c.mode
}

// Timer returns ticks since the last flip.
func (c ModeClock) Timer() int {
	return c.timer
}
