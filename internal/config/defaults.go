package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in settings. It matches the
// embedded YAML and is used when that cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Generator: GeneratorConfig{
			Policy: "bag",
		},
		Gravity: GravityConfig{
			BaseMS: 600,
			StepMS: 50,
			MinMS:  100,
		},
		Scoring: ScoringConfig{
			LineClear:     []int{0, 40, 100, 300, 1200},
			SoftDrop:      1,
			HardDrop:      2,
			LinesPerLevel: 10,
		},
	}
}

// DefaultTetrisYAML returns the embedded default file, comments included.
func DefaultTetrisYAML() []byte {
	return defaultTetrisYAML
}
