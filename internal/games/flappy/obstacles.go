package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tickarcade/internal/config"
	"github.com/vovakirdan/tickarcade/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X         float64 // Horizontal position (left edge)
	GapTop    float64 // Y where the gap starts
	GapBottom float64 // Y where the gap ends
	Passed    bool    // Whether the player has passed this pipe (for scoring)
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect(pipeWidth float64) core.RectF {
	return core.RectF{X: p.X, Y: 0, W: pipeWidth, H: p.GapTop}
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p Pipe) BottomRect(pipeWidth, groundY float64) core.RectF {
	return core.RectF{X: p.X, Y: p.GapBottom, W: pipeWidth, H: groundY - p.GapBottom}
}

// PipeManager handles spawning, movement, and removal of pipes.
// Pipes are kept in spawn order: new ones at the tail, expired ones leave the head.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	timer      int // ticks since the last spawn
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyManager
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg *config.FlappyConfig, diff *config.DifficultyManager) *PipeManager {
	pm := &PipeManager{
		pipes:      make([]Pipe, 0, 8),
		cfg:        cfg,
		difficulty: diff,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and resets the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
	pm.timer = 0
}

// Update spawns, moves and expires pipes, then scores and collides them
// against the bird. It returns how many pipes were passed this tick and
// whether the bird hit one.
func (pm *PipeManager) Update(bird core.RectF, score int, tick uint64) (passed int, hit bool) {
	pm.timer++
	if pm.timer > pm.difficulty.Spacing(pm.cfg.Obstacles.SpawnEvery, score, tick) {
		pm.spawnPipe(score, tick)
		pm.timer = 0
	}

	speed := pm.difficulty.Speed(pm.cfg.Physics.PipeSpeed, score, tick)
	width := pm.cfg.Obstacles.PipeWidth

	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= speed

		// Remove pipes that have moved off the left side
		if p.X+width < 0 {
			continue
		}

		if !hit {
			if !p.Passed && p.X+width < bird.X {
				p.Passed = true
				passed++
			}
			column := core.RectF{X: p.X, W: width}
			if bird.OverlapsX(column) && (bird.Y < p.GapTop || bird.Bottom() > p.GapBottom) {
				hit = true
			}
		}

		kept = append(kept, p)
	}
	pm.pipes = kept

	return passed, hit
}

// spawnPipe creates a new pipe at the right edge of the world.
func (pm *PipeManager) spawnPipe(score int, tick uint64) {
	obs := pm.cfg.Obstacles
	gap := pm.difficulty.GapSize(obs.GapSize, score, tick)

	minTop := obs.MinTop
	maxTop := pm.cfg.World.GroundY - gap - obs.BottomMargin
	top := minTop
	if maxTop > minTop {
		top = pm.rng.Float64()*(maxTop-minTop) + minTop
	}

	pm.pipes = append(pm.pipes, Pipe{
		X:         pm.cfg.World.Width,
		GapTop:    top,
		GapBottom: top + gap,
	})
}

// Pipes returns a copy of the live pipes.
func (pm *PipeManager) Pipes() []Pipe {
	out := make([]Pipe, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}
