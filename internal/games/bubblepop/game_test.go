package bubblepop

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/bubble-pop/internal/config"
	"github.com/vovakirdan/bubble-pop/internal/core"
	"github.com/vovakirdan/bubble-pop/internal/sim"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame starts a standard game from defaults, ignoring config files.
func newTestGame(seed int64) *Game {
	g := New()
	g.ResetWith(testRuntime(seed), config.DefaultBubblesConfig())
	return g
}

// withBubbles replaces the live state with the given bubbles.
func withBubbles(g *Game, bubbles ...sim.Bubble) {
	g.state = sim.State{Bubbles: bubbles}
}

func popFrame(ids ...int) core.InputFrame {
	in := core.NewInputFrame()
	for _, id := range ids {
		in.Pop(id)
	}
	return in
}

func TestReset(t *testing.T) {
	g := newTestGame(42)

	snap := g.Snapshot()
	if !slices.Equal(snap.IDs, []int{0, 1, 2, 3, 4}) {
		t.Errorf("IDs = %v, expected [0 1 2 3 4]", snap.IDs)
	}
	if snap.Score != 0 || snap.Cleared || snap.Tick != 0 {
		t.Errorf("fresh game snapshot = %+v", snap)
	}

	// Play, then reset again
	g.Step(popFrame(0, 1))
	g.ResetWith(testRuntime(42), config.DefaultBubblesConfig())
	if g.State().Score != 0 || len(g.Sim().Bubbles) != 5 || g.State().Ticks != 0 {
		t.Errorf("Reset did not start over: %+v", g.State())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		if i == 30 {
			in.Pop(2)
		}
		if i == 60 {
			in.Tap(40, 12)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.Score != s2.Score {
		t.Errorf("tick/score mismatch: %+v vs %+v", s1, s2)
	}
	if !slices.Equal(s1.IDs, s2.IDs) || !slices.Equal(s1.Pos, s2.Pos) {
		t.Errorf("bubble mismatch:\n%+v\n%+v", s1, s2)
	}
}

func TestStepMovesBubbles(t *testing.T) {
	g := newTestGame(1)
	withBubbles(g, sim.Bubble{ID: 0, Pos: sim.Vec{X: 10, Y: 10}, Radius: 20, Vel: sim.Vec{X: 2, Y: 0}})

	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}

	if b, _ := g.Sim().Find(0); b.Pos != (sim.Vec{X: 16, Y: 10}) {
		t.Errorf("after 3 ticks bubble at %+v, expected (16,10)", b.Pos)
	}
	if g.State().Ticks != 3 {
		t.Errorf("Ticks = %d, expected 3", g.State().Ticks)
	}
}

func TestDigitPopStrict(t *testing.T) {
	g := newTestGame(7)

	res := g.Step(popFrame(3))
	if !slices.Equal(res.Popped, []int{3}) {
		t.Errorf("Popped = %v, expected [3]", res.Popped)
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}

	// Same id again: gone, so strict mode does not score it
	res = g.Step(popFrame(3, 99))
	if len(res.Popped) != 0 || res.State.Score != 1 {
		t.Errorf("popping missing ids changed state: popped=%v score=%d", res.Popped, res.State.Score)
	}
}

func TestDigitPopClassicScoresMisses(t *testing.T) {
	g := NewClassic()
	g.ResetWith(testRuntime(7), config.DefaultBubblesConfig())

	if g.cfg.Scoring != config.ScoringLiteral {
		t.Fatalf("classic mode should force literal scoring, got %q", g.cfg.Scoring)
	}

	res := g.Step(popFrame(1, 1, 42))
	if !slices.Equal(res.Popped, []int{1}) {
		t.Errorf("Popped = %v, expected [1]", res.Popped)
	}
	if res.State.Score != 3 {
		t.Errorf("Score = %d, expected 3 (every request scores)", res.State.Score)
	}
	if len(g.Sim().Bubbles) != 4 {
		t.Errorf("expected 4 bubbles left, got %d", len(g.Sim().Bubbles))
	}
}

func TestTapPopsBubbleUnderCursor(t *testing.T) {
	g := newTestGame(3)
	withBubbles(g,
		sim.Bubble{ID: 0, Pos: sim.Vec{X: 60, Y: 100}, Radius: 40},
		sim.Bubble{ID: 1, Pos: sim.Vec{X: 240, Y: 500}, Radius: 40},
	)

	in := core.NewInputFrame()
	c := g.Viewport().WorldToCell(sim.Vec{X: 240, Y: 500})
	in.Tap(c.X, c.Y)

	res := g.Step(in)
	if !slices.Equal(res.Popped, []int{1}) {
		t.Fatalf("Popped = %v, expected [1]", res.Popped)
	}
	if !slices.Equal(g.Sim().IDs(), []int{0}) {
		t.Errorf("IDs = %v, expected [0]", g.Sim().IDs())
	}
}

func TestTapOnEmptySpaceIsIgnored(t *testing.T) {
	g := NewClassic()
	g.ResetWith(testRuntime(3), config.DefaultBubblesConfig())
	withBubbles(g, sim.Bubble{ID: 0, Pos: sim.Vec{X: 60, Y: 100}, Radius: 20})

	in := core.NewInputFrame()
	c := g.Viewport().WorldToCell(sim.Vec{X: 250, Y: 550})
	in.Tap(c.X, c.Y)

	// A miss never reaches the simulation, even with literal scoring
	res := g.Step(in)
	if len(res.Popped) != 0 || res.State.Score != 0 {
		t.Errorf("tap on empty space scored: %+v", res)
	}
}

func TestTapOnHUDRowIsIgnored(t *testing.T) {
	g := newTestGame(3)
	// Drifted above the field: its disc reaches the HUD row but is never drawn there
	withBubbles(g,
		sim.Bubble{ID: 0, Pos: sim.Vec{X: 150, Y: -20}, Radius: 30},
		sim.Bubble{ID: 1, Pos: sim.Vec{X: 150, Y: 300}, Radius: 30},
	)

	c := g.Viewport().WorldToCell(sim.Vec{X: 150, Y: -20})
	if c.Y >= HUDRows {
		t.Fatalf("bubble centre at row %d, expected a HUD row", c.Y)
	}
	if _, ok := sim.BubbleAt(g.Sim(), g.Viewport().CellToWorld(c)); !ok {
		t.Fatal("HUD cell should lie inside the hidden bubble")
	}

	in := core.NewInputFrame()
	in.Tap(c.X, c.Y)
	res := g.Step(in)
	if len(res.Popped) != 0 || res.State.Score != 0 || len(g.Sim().Bubbles) != 2 {
		t.Errorf("tap on the HUD popped a hidden bubble: popped=%v score=%d", res.Popped, res.State.Score)
	}
}

func TestDigitPopsApplyBeforeTaps(t *testing.T) {
	g := NewClassic()
	g.ResetWith(testRuntime(3), config.DefaultBubblesConfig())
	withBubbles(g,
		sim.Bubble{ID: 0, Pos: sim.Vec{X: 150, Y: 300}, Radius: 40},
		sim.Bubble{ID: 1, Pos: sim.Vec{X: 60, Y: 100}, Radius: 20},
	)

	// The tap arrives first but the digit pop is applied first, so the
	// tap lands on empty space and is dropped.
	in := core.NewInputFrame()
	c := g.Viewport().WorldToCell(sim.Vec{X: 150, Y: 300})
	in.Tap(c.X, c.Y)
	in.Pop(0)

	res := g.Step(in)
	if !slices.Equal(res.Popped, []int{0}) || res.State.Score != 1 {
		t.Errorf("popped=%v score=%d, expected [0] and 1", res.Popped, res.State.Score)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(9)
	before := g.Snapshot()

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	// Paused: nothing moves and pops are dropped
	g.Step(popFrame(0))
	paused := g.Snapshot()
	if !slices.Equal(before.Pos, paused.Pos) || paused.Score != 0 {
		t.Errorf("paused game changed: %+v", paused)
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if g.State().Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1 after resuming", g.State().Ticks)
	}
}

func TestClearEndsSession(t *testing.T) {
	g := newTestGame(11)
	withBubbles(g,
		sim.Bubble{ID: 0, Pos: sim.Vec{X: 10, Y: 10}, Radius: 25, Vel: sim.Vec{X: 2}},
		sim.Bubble{ID: 1, Pos: sim.Vec{X: 100, Y: 10}, Radius: 25, Vel: sim.Vec{X: 1}},
	)

	g.Step(core.NewInputFrame())
	res := g.Step(popFrame(0, 1))

	if !res.State.GameOver {
		t.Fatal("popping every bubble should end the session")
	}
	if res.State.Score != 2 {
		t.Errorf("Score = %d, expected 2", res.State.Score)
	}

	ticks := res.State.Ticks
	for i := 0; i < 10; i++ {
		res = g.Step(popFrame(5))
	}
	if res.State.Score != 2 || res.State.Ticks != ticks || !res.State.GameOver {
		t.Errorf("steps after clearing changed state: %+v", res.State)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(5)
	withBubbles(g,
		sim.Bubble{ID: 0, Pos: sim.Vec{X: 150, Y: 300}, Radius: 50, Color: sim.RGB{R: 1}},
		sim.Bubble{ID: 1, Pos: sim.Vec{X: 50, Y: 80}, Radius: 20, Color: sim.RGB{B: 1}},
	)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}

	c := g.Viewport().WorldToCell(sim.Vec{X: 150, Y: 300})
	if got := screen.Get(c.X, c.Y); got != '0' {
		t.Errorf("centre of bubble 0 shows %q, expected its id", got)
	}
	if got := screen.GetCell(c.X+1, c.Y); got.Rune != BodyChar || got.Color != "#ff0000" {
		t.Errorf("cell next to centre = %+v, expected red body", got)
	}

	g.Step(popFrame(0, 1))
	g.Render(screen)
	if !strings.Contains(screen.String(), "CLEARED!") {
		t.Error("cleared banner not shown")
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := newTestGame(8)
	g.Step(popFrame(4))

	g.Resize(120, 40)
	if g.State().Score != 1 || len(g.Sim().Bubbles) != 4 {
		t.Errorf("Resize reset the session: %+v", g.State())
	}

	screen := core.NewScreen(100, 30)
	g.Render(screen)
	if g.runtime.ScreenW != 100 || g.runtime.ScreenH != 30 {
		t.Errorf("Render did not adopt screen size: %dx%d", g.runtime.ScreenW, g.runtime.ScreenH)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {40, 50}, {200, 60}} {
		v := NewViewport(size[0], size[1], 300, 600)
		for _, p := range []core.Point{{X: 0, Y: 1}, {X: 10, Y: 5}, {X: size[0] - 1, Y: size[1] - 1}} {
			if got := v.WorldToCell(v.CellToWorld(p)); got != p {
				t.Errorf("%v: round trip of %v gave %v", size, p, got)
			}
		}

		field := v.FieldRect()
		if field.Y < HUDRows || field.Right() > size[0] || field.Bottom() > size[1] {
			t.Errorf("%v: field %+v does not fit the play area", size, field)
		}
	}
}
