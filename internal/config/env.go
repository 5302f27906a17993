package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds SSH server settings read from the environment.
// CLI flags that were set explicitly take precedence.
type ServerConfig struct {
	Address     string        `env:"BUBBLEPOP_SSH_ADDR"     envDefault:":23234"`
	HostKeyPath string        `env:"BUBBLEPOP_HOST_KEY"`
	DBPath      string        `env:"BUBBLEPOP_DB"           envDefault:"~/.bubblepop/scores.db"`
	IdleTimeout time.Duration `env:"BUBBLEPOP_IDLE_TIMEOUT" envDefault:"30m"`
	TickRate    int           `env:"BUBBLEPOP_FPS"          envDefault:"60"`
	Game        string        `env:"BUBBLEPOP_MODE"         envDefault:"bubbles"`
}

// LoadServer reads ServerConfig from the environment.
func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("config: parse env: %w", err)
	}
	if cfg.TickRate <= 0 {
		return ServerConfig{}, fmt.Errorf("config: BUBBLEPOP_FPS must be positive: %w", ErrInvalid)
	}
	return cfg, nil
}
