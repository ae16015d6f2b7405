// Package config loads the game settings from YAML and applies difficulty
// presets on top of them.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// TetrisConfig is the full set of tunables for the game.
type TetrisConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Generator GeneratorConfig `yaml:"generator"`
	Rotation  RotationConfig  `yaml:"rotation"`
	Gravity   GravityConfig   `yaml:"gravity"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// BoardConfig sets the well size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GeneratorConfig selects how upcoming pieces are chosen.
type GeneratorConfig struct {
	Policy string `yaml:"policy"` // "bag" or "uniform"
}

// RotationConfig controls rotation against obstacles.
type RotationConfig struct {
	WallKicks bool `yaml:"wall_kicks"`
}

// GravityConfig defines the level to drop-interval curve in milliseconds.
type GravityConfig struct {
	BaseMS int `yaml:"base_ms"`
	StepMS int `yaml:"step_ms"`
	MinMS  int `yaml:"min_ms"`
}

// ScoringConfig defines point awards and level pacing.
type ScoringConfig struct {
	LineClear     []int `yaml:"line_clear"`
	SoftDrop      int   `yaml:"soft_drop"`
	HardDrop      int   `yaml:"hard_drop"`
	LinesPerLevel int   `yaml:"lines_per_level"`
}

var validPolicies = []string{"bag", "uniform"}

// Validate reports the first setting that cannot describe a playable game.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Width < 4 || c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board must be at least 4x4, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if !slices.Contains(validPolicies, c.Generator.Policy) {
		errs = append(errs, fmt.Errorf("generator policy %q is not one of %v", c.Generator.Policy, validPolicies))
	}
	if c.Gravity.MinMS <= 0 || c.Gravity.StepMS < 0 || c.Gravity.BaseMS < c.Gravity.MinMS {
		errs = append(errs, fmt.Errorf("gravity needs 0 < min_ms <= base_ms and step_ms >= 0, got %+v", c.Gravity))
	}
	if len(c.Scoring.LineClear) != 5 {
		errs = append(errs, fmt.Errorf("scoring.line_clear needs 5 entries, got %d", len(c.Scoring.LineClear)))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("scoring.lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
