package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// A disabled manager always reports 0 so base parameters apply unchanged.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the current speed based on difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize returns the current gap size based on difficulty level.
func (d *DifficultyManager) GapSize(baseGap float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	result := baseGap - level*d.cfg.Scaling.GapReduction
	if floor := d.cfg.Scaling.MinGap; floor > 0 && result < floor {
		result = floor
	}
	return result
}

// Spacing returns the current spawn interval in ticks based on difficulty level.
func (d *DifficultyManager) Spacing(baseSpacing int, score int, ticks uint64) int {
	level := d.Level(score, ticks)
	result := baseSpacing - int(level*float64(d.cfg.Scaling.SpacingReduction))
	floor := d.cfg.Scaling.MinSpacing
	if floor < 1 {
		floor = 1
	}
	if result < floor {
		result = floor
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
