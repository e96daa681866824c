// Package config provides YAML-based game tuning, difficulty presets and
// the application settings for the arcade platform.
package config

// FlappyConfig contains all configuration for the Flappy Bird game.
// Distances are in world units; the renderer scales the world to the terminal.
type FlappyConfig struct {
	World      FlappyWorld      `yaml:"world"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyWorld defines the playfield.
type FlappyWorld struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 disables the cap
	PipeSpeed    float64 `yaml:"pipe_speed"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth    float64 `yaml:"pipe_width"`
	GapSize      float64 `yaml:"gap_size"`
	SpawnEvery   int     `yaml:"spawn_every"` // ticks between two pipes
	MinTop       float64 `yaml:"min_top"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid    SnakeGrid    `yaml:"grid"`
	Start   SnakeStart   `yaml:"start"`
	Timing  SnakeTiming  `yaml:"timing"`
	Scoring SnakeScoring `yaml:"scoring"`
}

// SnakeGrid defines the board size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeStart defines the initial head position and heading.
type SnakeStart struct {
	X  int `yaml:"x"`
	Y  int `yaml:"y"`
	DX int `yaml:"dx"`
	DY int `yaml:"dy"`
}

// SnakeTiming defines the tick cadence and its speed-up.
type SnakeTiming struct {
	IntervalMS   int `yaml:"interval_ms"`
	StepMS       int `yaml:"step_ms"`
	MinMS        int `yaml:"min_ms"`
	SpeedUpEvery int `yaml:"speed_up_every"` // score multiple triggering a speed-up, 0 disables
}

// SnakeScoring defines points and apple placement.
type SnakeScoring struct {
	Apple         int `yaml:"apple"`
	SpawnAttempts int `yaml:"spawn_attempts"` // random tries before scanning free cells
}

// TicTacToeConfig contains all configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	Mode       string `yaml:"mode"`        // "cpu" or "hotseat"
	TickMS     int    `yaml:"tick_ms"`     // host cadence
	ThinkTicks int    `yaml:"think_ticks"` // ticks the CPU waits before moving
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     float64 `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	MinGap           float64 `yaml:"min_gap"`           // Gap never shrinks below this
	SpacingReduction int     `yaml:"spacing_reduction"` // Spawn interval reduction at max difficulty
	MinSpacing       int     `yaml:"min_spacing"`       // Spawn interval never drops below this
}
