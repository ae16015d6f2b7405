package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
