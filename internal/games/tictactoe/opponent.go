package tictactoe

import (
	"errors"
	"math/rand"
)

// ErrNoMoves is returned by Choose on a full board.
var ErrNoMoves = errors.New("tictactoe: no available moves")

var corners = [4]int{0, 2, 6, 8}

// Opponent is the greedy computer player. It never looks more than one move ahead.
type Opponent struct {
	rng *rand.Rand
}

// NewOpponent creates an opponent whose random picks follow seed.
func NewOpponent(seed int64) *Opponent {
	return &Opponent{rng: rand.New(rand.NewSource(seed))}
}

// Choose picks a cell for me. The first rule that applies wins:
// complete an own line, block the other side's line, take the center,
// take a random free corner, take a random free cell.
func (o *Opponent) Choose(b Board, me Cell) (int, error) {
	free := b.EmptyCells()
	if len(free) == 0 {
		return -1, ErrNoMoves
	}

	if cell, ok := completingCell(b, me); ok {
		return cell, nil
	}
	if cell, ok := completingCell(b, me.Other()); ok {
		return cell, nil
	}
	if b[4] == Empty {
		return 4, nil
	}

	openCorners := make([]int, 0, len(corners))
	for _, c := range corners {
		if b[c] == Empty {
			openCorners = append(openCorners, c)
		}
	}
	if len(openCorners) > 0 {
		return openCorners[o.rng.Intn(len(openCorners))], nil
	}

	return free[o.rng.Intn(len(free))], nil
}

// completingCell finds the empty cell of the first line, in WinLines order,
// where mark already holds the other two cells.
func completingCell(b Board, mark Cell) (int, bool) {
	for _, line := range WinLines {
		owned, empty := 0, -1
		for _, i := range line {
			switch b[i] {
			case mark:
				owned++
			case Empty:
				empty = i
			}
		}
		if owned == 2 && empty >= 0 {
			return empty, true
		}
	}
	return -1, false
}
