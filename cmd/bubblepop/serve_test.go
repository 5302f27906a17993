package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/bubble-pop/internal/config"
)

func TestApplyServeFlags(t *testing.T) {
	base := config.ServerConfig{
		Address:     ":23234",
		DBPath:      "/tmp/env.db",
		IdleTimeout: time.Minute,
		TickRate:    60,
		Game:        "bubbles",
	}

	cfg := base
	applyServeFlags(serveCmd, &cfg)
	if cfg != base {
		t.Errorf("unset flags changed config: %+v", cfg)
	}

	if err := serveCmd.Flags().Set("ssh", ":2222"); err != nil {
		t.Fatal(err)
	}
	if err := serveCmd.Flags().Set("mode", "bubbles_classic"); err != nil {
		t.Fatal(err)
	}
	applyServeFlags(serveCmd, &cfg)

	if cfg.Address != ":2222" || cfg.Game != "bubbles_classic" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.DBPath != base.DBPath || cfg.IdleTimeout != base.IdleTimeout {
		t.Errorf("untouched settings changed: %+v", cfg)
	}
}
