package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads Flappy Bird configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy", customPath, DefaultFlappyConfig)
}

// LoadSnake loads Snake configuration with the same search order as LoadFlappy.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig)
}

// LoadTicTacToe loads Tic-Tac-Toe configuration with the same search order as LoadFlappy.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	return load("tictactoe", customPath, DefaultTicTacToeConfig)
}

// load decodes the first readable config for gameID over the built-in
// defaults, so a file only needs the keys it changes. An explicit customPath
// must exist and parse; the other locations are skipped when unusable.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
