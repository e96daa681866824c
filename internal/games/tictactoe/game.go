// Package tictactoe implements Tic-Tac-Toe on a 3x3 board, either against
// a greedy computer opponent or hot-seat between two players.
package tictactoe

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tickarcade/internal/config"
	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/registry"
)

// ID is the registry and score key of the game.
const ID = "tictactoe"

// ErrUnknownMode is returned for a mode other than cpu or hotseat.
var ErrUnknownMode = errors.New("tictactoe: unknown mode")

// Mode selects who plays O.
type Mode string

const (
	ModeCPU     Mode = "cpu"
	ModeHotseat Mode = "hotseat"
)

// ParseMode maps a mode name to a Mode. Empty means ModeCPU.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeCPU:
		return ModeCPU, nil
	case ModeHotseat:
		return ModeHotseat, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
	}
}

// Series is the running tally of finished rounds on one game instance.
type Series struct {
	XWins int
	OWins int
	Draws int
}

// Game implements Tic-Tac-Toe.
type Game struct {
	cfg      config.TicTacToeConfig
	mode     Mode
	opponent *Opponent

	round    Round
	cursor   int
	thinking int // ticks left before the computer moves
	series   Series
	tick     uint64
}

// New creates a game in the given mode.
func New(cfg config.TicTacToeConfig, mode Mode) *Game {
	g := &Game{cfg: cfg, mode: mode, opponent: NewOpponent(1)}
	g.round = NewRound()
	g.cursor = 4
	return g
}

func init() {
	registry.Register(ID, "Tic-Tac-Toe", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadTicTacToe(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		name := cfg.Mode
		if opts.Mode != "" {
			name = opts.Mode
		}
		mode, err := ParseMode(name)
		if err != nil {
			return nil, err
		}
		return New(cfg, mode), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Mode returns who plays O.
func (g *Game) Mode() Mode {
	return g.mode
}

// TickInterval returns the fixed host cadence.
func (g *Game) TickInterval() time.Duration {
	ms := g.cfg.TickMS
	if ms <= 0 {
		ms = 100
	}
	return time.Duration(ms) * time.Millisecond
}

// Reset clears the board for a new round. The series tally is kept.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.opponent = NewOpponent(seed)
	g.round = NewRound()
	g.cursor = 4
	g.thinking = 0
	g.tick = 0
}

// ResetSeries zeroes the tally.
func (g *Game) ResetSeries() {
	g.series = Series{}
}

// Step applies the queued inputs in order and lets the computer move once
// its thinking delay has run out. The first rejected move is reported in
// the result; later inputs are still applied.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round.Result != Ongoing {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, ev := range in.Events() {
		switch ev.Action {
		case core.ActionUp:
			g.moveCursor(0, -1)
		case core.ActionDown:
			g.moveCursor(0, 1)
		case core.ActionLeft:
			g.moveCursor(-1, 0)
		case core.ActionRight:
			g.moveCursor(1, 0)
		case core.ActionJump, core.ActionConfirm:
			keep(g.humanMove(g.cursor))
		case core.ActionSelectCell:
			keep(g.humanMove(ev.Cell))
		}
	}

	if g.mode == ModeCPU && g.round.Result == Ongoing && g.round.Turn == O {
		if g.thinking > 0 {
			g.thinking--
		}
		if g.thinking == 0 {
			keep(g.computerMove())
		}
	}

	return core.StepResult{State: g.State(), Err: firstErr}
}

// ApplyMove places player's mark on cell and updates the series when the
// round finishes.
func (g *Game) ApplyMove(cell int, player Cell) error {
	if err := g.round.ApplyMove(cell, player); err != nil {
		return err
	}
	switch g.round.Result {
	case XWins:
		g.series.XWins++
	case OWins:
		g.series.OWins++
	case Draw:
		g.series.Draws++
	}
	return nil
}

func (g *Game) humanMove(cell int) error {
	mark := X
	if g.mode == ModeHotseat {
		mark = g.round.Turn
	}
	if err := g.ApplyMove(cell, mark); err != nil {
		return err
	}
	if cell >= 0 && cell < len(g.round.Board) {
		g.cursor = cell
	}
	if g.mode == ModeCPU && g.round.Turn == O {
		g.thinking = g.cfg.ThinkTicks
	}
	return nil
}

func (g *Game) computerMove() error {
	cell, err := g.opponent.Choose(g.round.Board, O)
	if err != nil {
		return fmt.Errorf("computer failed to move: %w", err)
	}
	return g.ApplyMove(cell, O)
}

func (g *Game) moveCursor(dx, dy int) {
	x := g.cursor%3 + dx
	y := g.cursor/3 + dy
	if x < 0 || x > 2 || y < 0 || y > 2 {
		return
	}
	g.cursor = y*3 + x
}

// State returns the current game state. The score is the number of rounds
// won by X in this series.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.series.XWins,
		GameOver: g.round.Result != Ongoing,
		Outcome:  g.outcome(),
	}
}

func (g *Game) outcome() string {
	if g.mode != ModeCPU {
		return g.round.Result.String()
	}
	switch g.round.Result {
	case XWins:
		return "you win"
	case OWins:
		return "computer wins"
	case Draw:
		return "draw"
	default:
		return ""
	}
}

// CellForDigit maps a keypad digit 1-9 to a cell, with 7 8 9 on the top row.
func CellForDigit(d int) (int, bool) {
	if d < 1 || d > 9 {
		return -1, false
	}
	row := 2 - (d-1)/3
	col := (d - 1) % 3
	return row*3 + col, true
}
