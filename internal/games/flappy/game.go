// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"time"

	"github.com/vovakirdan/tickarcade/internal/config"
	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/registry"
)

// ID is the registry and score key of the game.
const ID = "flappy"

// Outcomes reported in core.GameState once the round is over.
const (
	OutcomeCrashed = "crashed"   // hit the ceiling or the ground
	OutcomeHitPipe = "hit pipe"
)

// Bird is the physics actor: a box with a vertical velocity.
type Bird struct {
	X, Y float64 // top-left corner in world units
	VY   float64 // positive is down
	W, H float64
}

// Rect returns the bird's collision box.
func (b Bird) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	pipes      *PipeManager

	bird     Bird
	score    int
	gameOver bool
	outcome  string
	tick     uint64
}

// New creates a Flappy Bird game with the given tuning.
func New(cfg config.FlappyConfig) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.pipes = NewPipeManager(0, &g.cfg, g.difficulty)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.bird = Bird{
		X: g.cfg.Player.X,
		Y: g.cfg.Player.StartY,
		W: g.cfg.Player.Width,
		H: g.cfg.Player.Height,
	}
	g.score = 0
	g.gameOver = false
	g.outcome = ""
	g.tick = 0
	g.pipes.Reset(seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	// Space and Up both flap.
	if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
		g.bird.VY = g.cfg.Physics.JumpImpulse
	}

	g.bird.VY += g.cfg.Physics.Gravity
	if limit := g.cfg.Physics.MaxFallSpeed; limit > 0 && g.bird.VY > limit {
		g.bird.VY = limit
	}
	g.bird.Y += g.bird.VY

	// Ceiling and ground are checked before the pipes move.
	if g.bird.Y <= 0 || g.bird.Y+g.bird.H >= g.cfg.World.GroundY {
		g.end(OutcomeCrashed)
		return core.StepResult{State: g.State()}
	}

	passed, hit := g.pipes.Update(g.bird.Rect(), g.score, g.tick)
	g.score += passed
	if hit {
		g.end(OutcomeHitPipe)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) end(outcome string) {
	g.gameOver = true
	g.outcome = outcome
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Outcome:  g.outcome,
	}
}

// Config returns the tuning this instance runs with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register(ID, "Flappy Bird", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadFlappy(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyFlappyPreset(&cfg, preset)
		return New(cfg), nil
	})
}
