// Package config provides YAML-based configuration loading and difficulty
// presets for the maze chase game.
package config

import "fmt"

// cellUnits is the size of one maze cell in world units. Speeds must stay
// below it so a single step can never skip over a wall.
const cellUnits = 240

// MazeConfig contains all tunable parameters for the maze chase game.
type MazeConfig struct {
	Player  MazePlayer  `yaml:"player"`
	Ghosts  MazeGhosts  `yaml:"ghosts"`
	Scoring MazeScoring `yaml:"scoring"`
}

// MazePlayer defines player parameters.
type MazePlayer struct {
	Speed int `yaml:"speed"` // World units per tick
}

// MazeGhosts defines parameters shared by all ghosts.
type MazeGhosts struct {
	Speed         int `yaml:"speed"`          // World units per tick
	ScatterTicks  int `yaml:"scatter_ticks"`  // Dwell in scatter mode
	ChaseTicks    int `yaml:"chase_ticks"`    // Dwell in chase mode
	DecisionTicks int `yaml:"decision_ticks"` // Ticks between direction decisions
	ProbeSteps    int `yaml:"probe_steps"`    // Probe length in speed steps
}

// MazeScoring defines point values.
type MazeScoring struct {
	DotPoints int `yaml:"dot_points"`
}

// Validate reports the first invalid field, if any.
func (c MazeConfig) Validate() error {
	checks := []struct {
		name string
		val  int
		max  int
	}{
		{"player.speed", c.Player.Speed, cellUnits - 1},
		{"ghosts.speed", c.Ghosts.Speed, cellUnits - 1},
		{"ghosts.scatter_ticks", c.Ghosts.ScatterTicks, 0},
		{"ghosts.chase_ticks", c.Ghosts.ChaseTicks, 0},
		{"ghosts.decision_ticks", c.Ghosts.DecisionTicks, 0},
		{"ghosts.probe_steps", c.Ghosts.ProbeSteps, 0},
	}
	for _, ch := range checks {
		if ch.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", ch.name, ch.val)
		}
		if ch.max > 0 && ch.val > ch.max {
			return fmt.Errorf("config: %s must be below %d, got %d", ch.name, cellUnits, ch.val)
		}
	}
	if c.Scoring.DotPoints < 0 {
		return fmt.Errorf("config: scoring.dot_points must not be negative, got %d", c.Scoring.DotPoints)
	}
	return nil
}
