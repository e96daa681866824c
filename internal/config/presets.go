package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned by ParsePreset for names it does not know.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset resolves a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyFlappyPreset adjusts a Flappy config for a preset.
// Normal keeps the file as loaded, so the default rules stay untouched.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplySnakePreset sets the starting speed for a preset.
// Normal keeps the loaded interval; fixed keeps it too and turns off speed-ups.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.IntervalMS = 200
	case DifficultyHard:
		cfg.Timing.IntervalMS = 100
	case DifficultyFixed:
		cfg.Timing.SpeedUpEvery = 0
	}
}
