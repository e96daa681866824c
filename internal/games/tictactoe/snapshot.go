package tictactoe

// Snapshot captures the complete game state for rendering and tests.
type Snapshot struct {
	Tick     uint64
	Board    Board
	Turn     Cell
	Result   Result
	WinLine  [3]int
	Cursor   int
	Thinking bool
	Series   Series
	Mode     Mode
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Board:    g.round.Board,
		Turn:     g.round.Turn,
		Result:   g.round.Result,
		WinLine:  g.round.WinLine,
		Cursor:   g.cursor,
		Thinking: g.mode == ModeCPU && g.round.Result == Ongoing && g.round.Turn == O,
		Series:   g.series,
		Mode:     g.mode,
	}
}
