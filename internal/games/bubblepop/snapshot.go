package bubblepop

import "github.com/vovakirdan/bubble-pop/internal/sim"

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick    int
	Score   int
	Cleared bool
	Paused  bool
	IDs     []int
	Pos     []sim.Vec
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	pos := make([]sim.Vec, len(g.state.Bubbles))
	for i, b := range g.state.Bubbles {
		pos[i] = b.Pos
	}
	return Snapshot{
		Tick:    g.ticks,
		Score:   g.state.Score,
		Cleared: g.state.Cleared,
		Paused:  g.paused,
		IDs:     g.state.IDs(),
		Pos:     pos,
	}
}
