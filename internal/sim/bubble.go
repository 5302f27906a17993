// Package sim implements the bubble-popping simulation.
// Every operation takes a State value and returns a new one; nothing here
// owns a clock, a goroutine, or any shared memory. The host decides when to
// tick and when to pop.
package sim

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v minus o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// LenSq returns the squared length of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// RGB is a colour with each channel in [0,1].
type RGB struct {
	R, G, B float64
}

// Bubble is a circular entity drifting through the field.
// Only Pos changes over a bubble's life, and it is replaced on every tick.
type Bubble struct {
	ID     int
	Pos    Vec // Centre of the disc
	Radius float64
	Vel    Vec // Displacement per tick
	Color  RGB
}

// Contains reports whether p lies inside or on the bubble's disc.
func (b Bubble) Contains(p Vec) bool {
	return p.Sub(b.Pos).LenSq() <= b.Radius*b.Radius
}

// moved returns a copy of b translated by one tick of its velocity.
func (b Bubble) moved() Bubble {
	b.Pos = b.Pos.Add(b.Vel)
	return b
}
