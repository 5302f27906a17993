// Package config provides YAML-based game configuration and environment-based
// server settings for the bubble platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bubble-pop/internal/sim"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// ScoringPolicy decides whether a pop of an unknown bubble id scores.
type ScoringPolicy string

const (
	// ScoringStrict scores only pops that remove a bubble.
	ScoringStrict ScoringPolicy = "strict"
	// ScoringLiteral scores every pop request, even for ids already gone.
	ScoringLiteral ScoringPolicy = "literal"
)

// BubblesConfig contains all configuration for the bubble game.
type BubblesConfig struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Field   FieldConfig   `yaml:"field"`
	Scoring ScoringPolicy `yaml:"scoring"`
}

// SpawnConfig bounds the random attributes of new bubbles.
type SpawnConfig struct {
	Count     int     `yaml:"count"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MaxSpeed  float64 `yaml:"max_speed"`
}

// FieldConfig is the size of the world bubbles spawn in, in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnRange converts the config into simulation spawn parameters.
func (c BubblesConfig) SpawnRange() sim.SpawnRange {
	return sim.SpawnRange{
		Count:     c.Spawn.Count,
		MinRadius: c.Spawn.MinRadius,
		MaxRadius: c.Spawn.MaxRadius,
		MaxSpeed:  c.Spawn.MaxSpeed,
		FieldW:    c.Field.Width,
		FieldH:    c.Field.Height,
	}
}

// Validate checks that the config describes a playable session.
func (c BubblesConfig) Validate() error {
	switch {
	case c.Spawn.Count < 0:
		return fmt.Errorf("config: spawn.count %d is negative: %w", c.Spawn.Count, ErrInvalid)
	case c.Spawn.MinRadius <= 0:
		return fmt.Errorf("config: spawn.min_radius must be positive: %w", ErrInvalid)
	case c.Spawn.MaxRadius < c.Spawn.MinRadius:
		return fmt.Errorf("config: spawn.max_radius %.1f below min_radius %.1f: %w",
			c.Spawn.MaxRadius, c.Spawn.MinRadius, ErrInvalid)
	case c.Spawn.MaxSpeed < 0:
		return fmt.Errorf("config: spawn.max_speed is negative: %w", ErrInvalid)
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field %.0fx%.0f must be positive: %w",
			c.Field.Width, c.Field.Height, ErrInvalid)
	}

	switch c.Scoring {
	case ScoringStrict, ScoringLiteral:
		return nil
	default:
		return fmt.Errorf("config: unknown scoring policy %q: %w", c.Scoring, ErrInvalid)
	}
}
