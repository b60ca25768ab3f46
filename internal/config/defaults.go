package config

import (
	_ "embed"
)

//go:embed defaults/mazechase.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in maze chase configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Player: MazePlayer{
			Speed: 24, // 10 ticks per cell
		},
		Ghosts: MazeGhosts{
			Speed:         20,
			ScatterTicks:  420,
			ChaseTicks:    1200,
			DecisionTicks: 60,
			ProbeSteps:    5,
		},
		Scoring: MazeScoring{
			DotPoints: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
