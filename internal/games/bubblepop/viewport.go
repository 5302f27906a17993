package bubblepop

import (
	"math"

	"github.com/vovakirdan/bubble-pop/internal/core"
	"github.com/vovakirdan/bubble-pop/internal/sim"
)

// CellAspect is how much taller a terminal cell is than it is wide.
const CellAspect = 2.0

// HUDRows is the number of screen rows reserved above the play area.
const HUDRows = 1

// Viewport maps world coordinates to screen cells and back.
// The field is scaled uniformly so it fits the play area and is centred in it.
type Viewport struct {
	unit    float64 // World units per column; a row spans unit*CellAspect
	originX float64 // Screen column of world x=0
	originY float64 // Screen row of world y=0
	fieldW  float64
	fieldH  float64
}

// NewViewport fits a fieldW x fieldH world into a screen of w x h cells.
func NewViewport(w, h int, fieldW, fieldH float64) Viewport {
	cols := float64(max(w, 1))
	rows := float64(max(h-HUDRows, 1))

	unit := math.Max(fieldW/cols, fieldH/(rows*CellAspect))
	if unit <= 0 {
		unit = 1
	}

	usedCols := fieldW / unit
	usedRows := fieldH / (unit * CellAspect)

	return Viewport{
		unit:    unit,
		originX: (cols - usedCols) / 2,
		originY: HUDRows + (rows-usedRows)/2,
		fieldW:  fieldW,
		fieldH:  fieldH,
	}
}

// CellToWorld returns the world point at the centre of screen cell p.
func (v Viewport) CellToWorld(p core.Point) sim.Vec {
	return sim.Vec{
		X: (float64(p.X) + 0.5 - v.originX) * v.unit,
		Y: (float64(p.Y) + 0.5 - v.originY) * v.unit * CellAspect,
	}
}

// WorldToCell returns the screen cell containing world point w.
func (v Viewport) WorldToCell(w sim.Vec) core.Point {
	return core.Point{
		X: int(math.Floor(w.X/v.unit + v.originX)),
		Y: int(math.Floor(w.Y/(v.unit*CellAspect) + v.originY)),
	}
}

// FieldRect returns the screen cells covered by the spawn field.
func (v Viewport) FieldRect() core.Rect {
	tl := v.WorldToCell(sim.Vec{})
	br := v.WorldToCell(sim.Vec{X: v.fieldW, Y: v.fieldH})
	return core.NewRect(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y)
}

// InField reports whether any part of b overlaps the spawn field.
func (v Viewport) InField(b sim.Bubble) bool {
	return b.Pos.X+b.Radius >= 0 && b.Pos.X-b.Radius <= v.fieldW &&
		b.Pos.Y+b.Radius >= 0 && b.Pos.Y-b.Radius <= v.fieldH
}

// cellBounds returns the inclusive cell range that can intersect b.
func (v Viewport) cellBounds(b sim.Bubble) (lo, hi core.Point) {
	r := sim.Vec{X: b.Radius, Y: b.Radius}
	return v.WorldToCell(b.Pos.Sub(r)), v.WorldToCell(b.Pos.Add(r))
}
