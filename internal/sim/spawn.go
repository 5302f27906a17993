package sim

import "math/rand"

// Default spawn parameters for a new session.
const (
	DefaultCount     = 5
	DefaultMinRadius = 20.0
	DefaultMaxRadius = 50.0
	DefaultMaxSpeed  = 2.0 // Each velocity component is drawn from [-MaxSpeed, MaxSpeed]
	DefaultFieldW    = 300.0
	DefaultFieldH    = 600.0
)

// SpawnRange bounds the random attributes of freshly generated bubbles.
type SpawnRange struct {
	Count     int
	MinRadius float64
	MaxRadius float64
	MaxSpeed  float64
	FieldW    float64 // x is drawn from [0, FieldW]
	FieldH    float64 // y is drawn from [0, FieldH]
}

// DefaultSpawnRange returns the stock spawn parameters.
func DefaultSpawnRange() SpawnRange {
	return SpawnRange{
		Count:     DefaultCount,
		MinRadius: DefaultMinRadius,
		MaxRadius: DefaultMaxRadius,
		MaxSpeed:  DefaultMaxSpeed,
		FieldW:    DefaultFieldW,
		FieldH:    DefaultFieldH,
	}
}

// uniform draws a float64 from [lo, hi].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// spawn generates bubble id with every field sampled independently.
func (r SpawnRange) spawn(rng *rand.Rand, id int) Bubble {
	return Bubble{
		ID: id,
		Pos: Vec{
			X: uniform(rng, 0, r.FieldW),
			Y: uniform(rng, 0, r.FieldH),
		},
		Radius: uniform(rng, r.MinRadius, r.MaxRadius),
		Vel: Vec{
			X: uniform(rng, -r.MaxSpeed, r.MaxSpeed),
			Y: uniform(rng, -r.MaxSpeed, r.MaxSpeed),
		},
		Color: RGB{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()},
	}
}
