package config

import (
	_ "embed"

	"github.com/vovakirdan/bubble-pop/internal/sim"
)

//go:embed defaults/bubbles.yaml
var defaultBubblesYAML []byte

// DefaultBubblesConfig returns the default bubble game configuration.
func DefaultBubblesConfig() BubblesConfig {
	return BubblesConfig{
		Spawn: SpawnConfig{
			Count:     sim.DefaultCount,
			MinRadius: sim.DefaultMinRadius,
			MaxRadius: sim.DefaultMaxRadius,
			MaxSpeed:  sim.DefaultMaxSpeed,
		},
		Field: FieldConfig{
			Width:  sim.DefaultFieldW,
			Height: sim.DefaultFieldH,
		},
		Scoring: ScoringStrict,
	}
}
