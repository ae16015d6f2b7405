package config

import "fmt"

// DifficultyPreset is a named adjustment of the gravity curve.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyTetrisPreset adjusts gravity for a preset. Normal leaves the loaded
// values alone; fixed keeps the starting speed for the whole game.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseMS = 1000
	case DifficultyHard:
		cfg.Gravity.BaseMS = 400
		cfg.Gravity.StepMS = 40
	case DifficultyFixed:
		cfg.Gravity.StepMS = 0
	}
	if cfg.Gravity.BaseMS < cfg.Gravity.MinMS {
		cfg.Gravity.MinMS = cfg.Gravity.BaseMS
	}
}
