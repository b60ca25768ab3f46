package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "mazechase.yaml"

// LoadMaze loads the maze chase configuration.
// Search order: customPath -> ~/.mazechase/configs/mazechase.yaml -> ./configs/mazechase.yaml -> embedded default
//
// Only an explicit customPath produces read or parse errors; the other
// locations are skipped when missing or malformed. Fields absent from a file
// keep their default values.
func LoadMaze(customPath string) (MazeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultMazeConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", ConfigFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and validates a config file, reporting false on any failure.
func tryLoad(path string) (MazeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MazeConfig{}, false
	}
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeConfig{}, false
	}
	if cfg.Validate() != nil {
		return MazeConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", "configs", filename)
}
