package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second for fixed-cadence games
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval converts TickRate to the duration between two ticks.
// A non-positive rate falls back to 60 ticks per second.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState is what a game reports to the session after each step.
type GameState struct {
	Score    int    // Current score, never negative
	GameOver bool   // The round reached a terminal state
	Outcome  string // Short human-readable result once GameOver is set
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Err is a rule-level problem found while stepping (a rejected move,
	// an impossible spawn). A terminal error also sets State.GameOver.
	Err error
}
