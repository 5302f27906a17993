// Package bubblepop implements the bubble-popping game.
// Bubbles drift across the field; the player pops them by clicking or by
// typing their number. The session ends when the field is empty.
package bubblepop

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/bubble-pop/internal/config"
	"github.com/vovakirdan/bubble-pop/internal/core"
	"github.com/vovakirdan/bubble-pop/internal/registry"
	"github.com/vovakirdan/bubble-pop/internal/sim"
)

// Registered mode ids.
const (
	ModeStandard = "bubbles"
	ModeClassic  = "bubbles_classic"
)

// Visual characters for rendering
const (
	BodyChar = '█'
	RimChar  = '▓'
	DotChar  = '●' // Bubbles smaller than a cell
)

var (
	configMu   sync.RWMutex
	configPath string
)

// SetConfigPath sets the custom config path used by every later Reset.
func SetConfigPath(path string) {
	configMu.Lock()
	defer configMu.Unlock()
	configPath = path
}

func loadConfig() config.BubblesConfig {
	configMu.RLock()
	path := configPath
	configMu.RUnlock()

	cfg, err := config.LoadBubbles(path)
	if err != nil {
		return config.DefaultBubblesConfig()
	}
	return cfg
}

// Game wraps a sim.State with pause handling, input resolution and rendering.
type Game struct {
	id      string
	title   string
	scoring config.ScoringPolicy // Forced policy; empty means use the config file

	cfg       config.BubblesConfig
	runtime   core.RuntimeConfig
	view      Viewport
	state     sim.State
	paused    bool
	ticks     int // Ticks simulated while the session was live
	clearedAt int
}

// New creates the standard mode, which takes its scoring policy from config.
func New() *Game {
	return &Game{id: ModeStandard, title: "Bubble Pop"}
}

// NewClassic creates the mode that scores every pop request, even one
// naming a bubble that is already gone.
func NewClassic() *Game {
	return &Game{id: ModeClassic, title: "Bubble Pop (classic)", scoring: config.ScoringLiteral}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new session seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = loadConfig()
	if g.scoring != "" {
		g.cfg.Scoring = g.scoring
	}
	g.start(runtime)
}

// ResetWith starts a new session from an explicit config, bypassing file lookup.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.BubblesConfig) {
	g.cfg = cfg
	if g.scoring != "" {
		g.cfg.Scoring = g.scoring
	}
	g.start(runtime)
}

func (g *Game) start(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.view = NewViewport(runtime.ScreenW, runtime.ScreenH, g.cfg.Field.Width, g.cfg.Field.Height)
	g.state = sim.InitializeWith(rand.New(rand.NewSource(runtime.Seed)), g.cfg.SpawnRange())
	g.paused = false
	g.ticks = 0
	g.clearedAt = 0
}

// Resize adapts the viewport to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.view = NewViewport(w, h, g.cfg.Field.Width, g.cfg.Field.Height)
}

// Step applies the frame's input, then advances the simulation one tick.
// All digit pops are applied before any tap. Taps are hit-tested against
// the state left by the pops before them, so a double click on overlapping
// bubbles pops both. Taps on the HUD rows are dropped. Once the field is
// cleared, input is ignored and the tick is a no-op.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.Cleared {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var popped []int
	for _, id := range in.PopIDs {
		if g.pop(id) {
			popped = append(popped, id)
		}
	}
	for _, tap := range in.Taps {
		if tap.Y < HUDRows {
			continue
		}
		b, ok := sim.BubbleAt(g.state, g.view.CellToWorld(tap))
		if !ok {
			continue
		}
		if g.pop(b.ID) {
			popped = append(popped, b.ID)
		}
	}

	if g.state.Cleared {
		g.clearedAt = g.ticks
		return core.StepResult{State: g.State(), Popped: popped}
	}

	g.state = sim.Advance(g.state)
	g.ticks++

	return core.StepResult{State: g.State(), Popped: popped}
}

// pop removes id under the configured scoring policy.
// It reports whether a bubble actually left the field.
func (g *Game) pop(id int) bool {
	if g.state.Cleared {
		return false
	}
	if g.cfg.Scoring == config.ScoringLiteral {
		_, present := g.state.Find(id)
		g.state = sim.Pop(g.state, id)
		return present
	}
	var ok bool
	g.state, ok = sim.PopIfPresent(g.state, id)
	return ok
}

// Sim returns the current simulation state.
func (g *Game) Sim() sim.State {
	return g.state
}

// Viewport returns the current world-to-screen mapping.
func (g *Game) Viewport() Viewport {
	return g.view
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Cleared,
		Paused:   g.paused,
		Ticks:    g.ticks,
	}
}

// Render draws the field, the bubbles and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() != g.runtime.ScreenW || dst.Height() != g.runtime.ScreenH {
		g.Resize(dst.Width(), dst.Height())
	}

	dst.DrawBox(g.view.FieldRect(), core.ColorGray)

	for _, b := range g.state.Bubbles {
		g.drawBubble(dst, b)
	}

	g.drawHUD(dst)

	switch {
	case g.state.Cleared:
		drawCenteredMessage(dst, "CLEARED!",
			fmt.Sprintf("Score: %d in %d ticks  |  R to restart", g.state.Score, g.clearedAt))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P or Space to resume")
	}
}

// drawBubble fills every cell whose centre lies inside the disc.
// Cells near the edge get a darker rim; the id is printed at the centre
// so the bubble can be popped from the keyboard.
func (g *Game) drawBubble(dst *core.Screen, b sim.Bubble) {
	body := core.ColorFromRGB(b.Color.R, b.Color.G, b.Color.B)
	rim := core.Shade(body, -0.35)
	rimSq := (0.72 * b.Radius) * (0.72 * b.Radius)

	drawn := false
	lo, hi := g.view.cellBounds(b)
	for y := max(lo.Y, HUDRows); y <= min(hi.Y, dst.Height()-1); y++ {
		for x := max(lo.X, 0); x <= min(hi.X, dst.Width()-1); x++ {
			d := g.view.CellToWorld(core.Point{X: x, Y: y}).Sub(b.Pos).LenSq()
			if d > b.Radius*b.Radius {
				continue
			}
			if d > rimSq {
				dst.SetColored(x, y, RimChar, rim)
			} else {
				dst.SetColored(x, y, BodyChar, body)
			}
			drawn = true
		}
	}

	c := g.view.WorldToCell(b.Pos)
	if !drawn {
		if c.Y >= HUDRows {
			dst.SetColored(c.X, c.Y, DotChar, body)
		}
		return
	}
	if b.ID < 10 && c.Y >= HUDRows {
		dst.SetColored(c.X, c.Y, rune('0'+b.ID), core.ColorBrightWhite)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	off := 0
	for _, b := range g.state.Bubbles {
		if !g.view.InField(b) {
			off++
		}
	}

	hud := fmt.Sprintf(" Score: %d  Bubbles: %d", g.state.Score, len(g.state.Bubbles))
	if off > 0 {
		hud += fmt.Sprintf(" (%d adrift)", off)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// Register both modes with the registry
func init() {
	registry.Register(ModeStandard, func() registry.Game {
		return New()
	})
	registry.Register(ModeClassic, func() registry.Game {
		return NewClassic()
	})
}
