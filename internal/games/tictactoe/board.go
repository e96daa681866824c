package tictactoe

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the root of every rejected move.
var ErrInvalidMove = errors.New("tictactoe: invalid move")

var (
	ErrCellOutOfRange = fmt.Errorf("%w: cell out of range", ErrInvalidMove)
	ErrCellOccupied   = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrNotYourTurn    = fmt.Errorf("%w: it's not your turn", ErrInvalidMove)
	ErrRoundOver      = fmt.Errorf("%w: round is already finished", ErrInvalidMove)
)

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark.
func (c Cell) Other() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// WinLines lists the eight winning triples, rows first, then columns, then diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid in row-major order.
type Board [9]Cell

// Winner returns the mark owning a full line and that line.
func (b Board) Winner() (Cell, [3]int, bool) {
	for _, line := range WinLines {
		a := b[line[0]]
		if a != Empty && a == b[line[1]] && a == b[line[2]] {
			return a, line, true
		}
	}
	return Empty, [3]int{}, false
}

// Full reports whether no empty cell is left.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of the empty cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, len(b))
	for i, c := range b {
		if c == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

// Count returns how many cells hold the mark.
func (b Board) Count(mark Cell) int {
	n := 0
	for _, c := range b {
		if c == mark {
			n++
		}
	}
	return n
}

// Result is the outcome of a round.
type Result int

const (
	Ongoing Result = iota
	XWins
	OWins
	Draw
)

func (r Result) String() string {
	switch r {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Round is one game of Tic-Tac-Toe: a board, whose turn it is and the result.
// X always opens.
type Round struct {
	Board   Board
	Turn    Cell
	Result  Result
	WinLine [3]int
}

// NewRound returns an empty board with X to move.
func NewRound() Round {
	return Round{Turn: X}
}

// ApplyMove places player's mark on cell. A rejected move leaves the round untouched.
func (r *Round) ApplyMove(cell int, player Cell) error {
	if r.Result != Ongoing {
		return ErrRoundOver
	}
	if cell < 0 || cell >= len(r.Board) {
		return fmt.Errorf("%w: %d", ErrCellOutOfRange, cell)
	}
	if player != r.Turn {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, r.Turn)
	}
	if r.Board[cell] != Empty {
		return fmt.Errorf("%w: %d", ErrCellOccupied, cell)
	}

	r.Board[cell] = player

	if winner, line, ok := r.Board.Winner(); ok {
		r.WinLine = line
		if winner == X {
			r.Result = XWins
		} else {
			r.Result = OWins
		}
		r.Turn = Empty
		return nil
	}
	if r.Board.Full() {
		r.Result = Draw
		r.Turn = Empty
		return nil
	}

	r.Turn = player.Other()
	return nil
}
