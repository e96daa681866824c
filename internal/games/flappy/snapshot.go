package flappy

// Snapshot is a copy of the world state. Rendering and tests read it
// instead of reaching into the live game.
type Snapshot struct {
	Tick     uint64
	Score    int
	Bird     Bird
	Pipes    []Pipe
	GameOver bool
	Outcome  string
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Bird:     g.bird,
		Pipes:    g.pipes.Pipes(),
		GameOver: g.gameOver,
		Outcome:  g.outcome,
	}
}
