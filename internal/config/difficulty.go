package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted difficulty names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty converts a flag value into a preset. An empty string
// selects normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyMazePreset adjusts ghost pacing for a preset. Normal leaves the
// loaded config untouched.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ghosts.Speed = 16 // 15 ticks per cell
		cfg.Ghosts.ScatterTicks = cfg.Ghosts.ScatterTicks * 3 / 2
		cfg.Ghosts.ChaseTicks = cfg.Ghosts.ChaseTicks * 3 / 4
		cfg.Ghosts.DecisionTicks = cfg.Ghosts.DecisionTicks * 2
	case DifficultyHard:
		cfg.Ghosts.Speed = 24 // as fast as the player
		cfg.Ghosts.ScatterTicks = cfg.Ghosts.ScatterTicks / 2
		cfg.Ghosts.ChaseTicks = cfg.Ghosts.ChaseTicks * 5 / 4
		cfg.Ghosts.DecisionTicks = max(1, cfg.Ghosts.DecisionTicks/2)
	}
}
