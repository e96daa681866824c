package snake

import "time"

// Snapshot captures the complete game state for rendering, determinism
// testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Body        []Point
	Heading     Direction
	Apple       Point
	GrowPending bool
	Interval    time.Duration
	GameOver    bool
	Outcome     string
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.body))
	copy(body, g.body)

	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Body:        body,
		Heading:     g.heading,
		Apple:       g.apple,
		GrowPending: g.growPending,
		Interval:    g.interval,
		GameOver:    g.gameOver,
		Outcome:     g.outcome,
	}
}
