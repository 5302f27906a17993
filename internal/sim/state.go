package sim

import "math/rand"

// State is one immutable snapshot of a session.
// Callers replace their State with the value returned by each operation;
// the Bubbles slice of a State is never written after it is returned.
type State struct {
	Bubbles []Bubble
	Score   int
	Cleared bool // True once a pop has left no bubbles
}

// Initialize creates a session with count bubbles using the default ranges.
func Initialize(rng *rand.Rand, count int) State {
	r := DefaultSpawnRange()
	r.Count = count
	return InitializeWith(rng, r)
}

// InitializeWith creates a session from explicit spawn ranges.
// Bubbles get sequential ids 0..Count-1. A zero count yields an empty
// session that is not cleared, since nothing has been popped.
func InitializeWith(rng *rand.Rand, r SpawnRange) State {
	n := max(r.Count, 0)
	bubbles := make([]Bubble, n)
	for i := range bubbles {
		bubbles[i] = r.spawn(rng, i)
	}
	return State{Bubbles: bubbles}
}

// Advance moves every bubble by its velocity once.
// A cleared state is returned as is.
func Advance(s State) State {
	if s.Cleared {
		return s
	}

	next := make([]Bubble, len(s.Bubbles))
	for i, b := range s.Bubbles {
		next[i] = b.moved()
	}
	return State{Bubbles: next, Score: s.Score, Cleared: s.Cleared}
}

// AdvanceN applies Advance n times. Non-positive n returns s.
func AdvanceN(s State, n int) State {
	for range n {
		s = Advance(s)
	}
	return s
}

// Pop removes the bubble with the given id and adds one to the score.
// The score goes up even when no bubble matches; use PopIfPresent to
// only reward successful pops.
func Pop(s State, id int) State {
	remaining := without(s.Bubbles, id)
	return State{
		Bubbles: remaining,
		Score:   s.Score + 1,
		Cleared: len(remaining) == 0,
	}
}

// PopIfPresent pops id only when a bubble with that id exists.
// It reports whether a bubble was removed; on a miss s is returned untouched.
func PopIfPresent(s State, id int) (State, bool) {
	if _, ok := s.Find(id); !ok {
		return s, false
	}
	return Pop(s, id), true
}

// without returns a fresh slice holding every bubble except id.
func without(bubbles []Bubble, id int) []Bubble {
	out := make([]Bubble, 0, len(bubbles))
	for _, b := range bubbles {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

// Find returns the bubble with the given id.
func (s State) Find(id int) (Bubble, bool) {
	for _, b := range s.Bubbles {
		if b.ID == id {
			return b, true
		}
	}
	return Bubble{}, false
}

// IDs returns the ids of the live bubbles in draw order.
func (s State) IDs() []int {
	ids := make([]int, len(s.Bubbles))
	for i, b := range s.Bubbles {
		ids[i] = b.ID
	}
	return ids
}

// BubbleAt returns the top-most bubble covering p.
// Bubbles later in the slice are drawn over earlier ones, so the scan
// runs back to front.
func BubbleAt(s State, p Vec) (Bubble, bool) {
	for i := len(s.Bubbles) - 1; i >= 0; i-- {
		if s.Bubbles[i].Contains(p) {
			return s.Bubbles[i], true
		}
	}
	return Bubble{}, false
}
