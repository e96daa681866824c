package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:   400,
			Height:  600,
			GroundY: 520,
		},
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpImpulse:  -5.5,
			MaxFallSpeed: 0,
			PipeSpeed:    2.5,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    60,
			GapSize:      160,
			SpawnEvery:   100,
			MinTop:       50,
			BottomMargin: 50,
		},
		Player: FlappyPlayer{
			X:      80,
			StartY: 250,
			Width:  34,
			Height: 24,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.6,
				GapReduction:     40,
				MinGap:           100,
				SpacingReduction: 30,
				MinSpacing:       60,
			},
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:  SnakeGrid{Width: 20, Height: 20},
		Start: SnakeStart{X: 10, Y: 10, DX: 1, DY: 0},
		Timing: SnakeTiming{
			IntervalMS:   150,
			StepMS:       10,
			MinMS:        50,
			SpeedUpEvery: 50,
		},
		Scoring: SnakeScoring{
			Apple:         10,
			SpawnAttempts: 100,
		},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Mode:       "cpu",
		TickMS:     100,
		ThinkTicks: 5,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "snake":
		return defaultSnakeYAML
	case "tictactoe":
		return defaultTicTacToeYAML
	default:
		return nil
	}
}
