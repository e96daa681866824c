// Package snake implements grid Snake: the snake moves one cell per tick,
// grows one segment the tick after eating an apple and speeds up as the
// score climbs.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tickarcade/internal/config"
	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/registry"
)

// ID is the registry and score key of the game.
const ID = "snake"

// Outcomes reported in core.GameState once the round is over.
const (
	OutcomeHitWall   = "hit wall"
	OutcomeBitSelf   = "bit itself"
	OutcomeBoardFull = "board full"
)

var (
	// ErrNoValidSpawnPosition is reported when no free cell is left for an apple.
	ErrNoValidSpawnPosition = errors.New("snake: no valid spawn position")

	// ErrInvalidConfig is returned by New for a grid the snake cannot start on.
	ErrInvalidConfig = errors.New("snake: invalid config")
)

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Reverses reports whether d points exactly against o.
func (d Direction) Reverses(o Direction) bool {
	return d.DX == -o.DX && d.DY == -o.DY
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Game implements the Snake game.
type Game struct {
	cfg config.SnakeConfig
	rng *rand.Rand

	body        []Point   // head at index 0
	heading     Direction // direction of the last committed move
	next        Direction // direction for the coming move
	growPending bool      // keep the tail on the next move
	apple       Point
	score       int
	interval    time.Duration
	tick        uint64
	gameOver    bool
	outcome     string
}

// New creates a Snake game with the given tuning.
func New(cfg config.SnakeConfig) (*Game, error) {
	if cfg.Grid.Width < 1 || cfg.Grid.Height < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, cfg.Grid.Width, cfg.Grid.Height)
	}
	start := Point{X: cfg.Start.X, Y: cfg.Start.Y}
	if !inside(start, cfg.Grid) {
		return nil, fmt.Errorf("%w: start %v outside the grid", ErrInvalidConfig, start)
	}
	if d := (Direction{DX: cfg.Start.DX, DY: cfg.Start.DY}); d != Up && d != Down && d != Left && d != Right {
		return nil, fmt.Errorf("%w: heading %v is not a unit step", ErrInvalidConfig, d)
	}
	return &Game{cfg: cfg, rng: rand.New(rand.NewSource(1))}, nil
}

func init() {
	registry.Register(ID, "Snake", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadSnake(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplySnakePreset(&cfg, preset)
		return New(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// CanPause reports that a Snake round may be suspended.
func (g *Game) CanPause() bool {
	return true
}

// TickInterval returns the current move interval. It shrinks as the score grows.
func (g *Game) TickInterval() time.Duration {
	return g.interval
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	start := Direction{DX: g.cfg.Start.DX, DY: g.cfg.Start.DY}
	g.body = []Point{{X: g.cfg.Start.X, Y: g.cfg.Start.Y}}
	g.heading = start
	g.next = start
	g.growPending = false
	g.score = 0
	g.interval = time.Duration(g.cfg.Timing.IntervalMS) * time.Millisecond
	g.tick = 0
	g.gameOver = false
	g.outcome = ""

	// A fresh grid always has room unless it is a single cell.
	if err := g.spawnApple(); err != nil {
		g.apple = Point{X: -1, Y: -1}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.processInput(in)

	newHead := g.body[0].Add(g.next)
	if !inside(newHead, g.cfg.Grid) {
		g.end(OutcomeHitWall)
		return core.StepResult{State: g.State()}
	}

	moved := make([]Point, 0, len(g.body)+1)
	moved = append(moved, newHead)
	moved = append(moved, g.body...)
	if !g.growPending {
		moved = moved[:len(moved)-1]
	}

	for _, seg := range moved[1:] {
		if seg == newHead {
			g.end(OutcomeBitSelf)
			return core.StepResult{State: g.State()}
		}
	}

	g.body = moved
	g.heading = g.next
	g.growPending = false

	if newHead == g.apple {
		before := g.score
		g.score += g.cfg.Scoring.Apple
		g.growPending = true
		g.speedUp(before)

		if err := g.spawnApple(); err != nil {
			g.apple = Point{X: -1, Y: -1}
			g.end(OutcomeBoardFull)
			return core.StepResult{State: g.State(), Err: err}
		}
	}

	return core.StepResult{State: g.State()}
}

// processInput applies queued turns in order. A turn that reverses the last
// committed heading is dropped, so two quick turns cannot fold the snake back.
func (g *Game) processInput(in core.InputFrame) {
	for _, ev := range in.Events() {
		var d Direction
		switch ev.Action {
		case core.ActionUp:
			d = Up
		case core.ActionDown:
			d = Down
		case core.ActionLeft:
			d = Left
		case core.ActionRight:
			d = Right
		default:
			continue
		}
		if !d.Reverses(g.heading) {
			g.next = d
		}
	}
}

// speedUp shortens the interval once for every multiple of SpeedUpEvery the
// score crossed since before.
func (g *Game) speedUp(before int) {
	every := g.cfg.Timing.SpeedUpEvery
	if every <= 0 {
		return
	}
	crossings := g.score/every - before/every
	if crossings <= 0 {
		return
	}

	step := time.Duration(g.cfg.Timing.StepMS) * time.Millisecond
	floor := time.Duration(g.cfg.Timing.MinMS) * time.Millisecond
	g.interval -= time.Duration(crossings) * step
	if g.interval < floor {
		g.interval = floor
	}
}

// spawnApple places the apple on a free cell: a bounded number of random
// picks first, then a uniform pick among the remaining free cells.
func (g *Game) spawnApple() error {
	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height
	occupied := make([]bool, w*h)
	for _, seg := range g.body {
		occupied[seg.Y*w+seg.X] = true
	}

	for i := 0; i < g.cfg.Scoring.SpawnAttempts; i++ {
		p := Point{X: g.rng.Intn(w), Y: g.rng.Intn(h)}
		if !occupied[p.Y*w+p.X] {
			g.apple = p
			return nil
		}
	}

	free := make([]Point, 0, w*h-len(g.body))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !occupied[y*w+x] {
				free = append(free, Point{X: x, Y: y})
			}
		}
	}
	if len(free) == 0 {
		return ErrNoValidSpawnPosition
	}
	g.apple = free[g.rng.Intn(len(free))]
	return nil
}

func (g *Game) end(outcome string) {
	g.gameOver = true
	g.outcome = outcome
}

func inside(p Point, grid config.SnakeGrid) bool {
	return p.X >= 0 && p.X < grid.Width && p.Y >= 0 && p.Y < grid.Height
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Outcome:  g.outcome,
	}
}

// SpeedLevel is the 1-based speed stage shown in the HUD.
func (g *Game) SpeedLevel() int {
	if g.cfg.Timing.SpeedUpEvery <= 0 {
		return 1
	}
	return g.score/g.cfg.Timing.SpeedUpEvery + 1
}
