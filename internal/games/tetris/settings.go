package tetris

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Settings are the engine parameters derived from the YAML configuration.
type Settings struct {
	Rules  engine.Rules
	Policy engine.Policy
}

// Registered variant IDs.
const (
	VariantStandard = "tetris"
	VariantClassic  = "tetris_classic"
)

// ErrUnknownVariant is returned for a variant ID that is not registered.
var ErrUnknownVariant = errors.New("tetris: unknown variant")

// Variants returns the variant IDs in display order.
func Variants() []string {
	return []string{VariantStandard, VariantClassic}
}

// DefaultSettings returns the built-in rules with the bag generator.
func DefaultSettings() Settings {
	return Settings{Rules: engine.DefaultRules(), Policy: engine.PolicyBag}
}

// SettingsFromConfig converts a loaded configuration into engine settings.
func SettingsFromConfig(c config.TetrisConfig) (Settings, error) {
	if err := c.Validate(); err != nil {
		return Settings{}, err
	}
	policy, err := engine.ParsePolicy(c.Generator.Policy)
	if err != nil {
		return Settings{}, err
	}

	rules := engine.Rules{
		Width:          c.Board.Width,
		Height:         c.Board.Height,
		SoftDropPoints: c.Scoring.SoftDrop,
		HardDropPoints: c.Scoring.HardDrop,
		LinesPerLevel:  c.Scoring.LinesPerLevel,
		Gravity: engine.Gravity{
			Base: time.Duration(c.Gravity.BaseMS) * time.Millisecond,
			Step: time.Duration(c.Gravity.StepMS) * time.Millisecond,
			Min:  time.Duration(c.Gravity.MinMS) * time.Millisecond,
		},
		WallKicks: c.Rotation.WallKicks,
	}
	copy(rules.LineClear[:], c.Scoring.LineClear)

	if err := rules.Validate(); err != nil {
		return Settings{}, err
	}
	return Settings{Rules: rules, Policy: policy}, nil
}

// LoadSettings loads the configuration from path (or the default search
// locations), applies a difficulty preset and converts the result.
func LoadSettings(path, difficulty string) (Settings, error) {
	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return Settings{}, err
	}
	c, err := config.LoadTetris(path)
	if err != nil {
		return Settings{}, err
	}
	config.ApplyTetrisPreset(&c, preset)
	return SettingsFromConfig(c)
}

// ForVariant returns the settings a variant plays with. The classic variant
// always draws pieces uniformly at random; an empty id means the standard one.
func (s Settings) ForVariant(id string) (Settings, error) {
	switch id {
	case "", VariantStandard:
		return s, nil
	case VariantClassic:
		s.Policy = engine.PolicyUniform
		return s, nil
	}
	return s, fmt.Errorf("%w %q", ErrUnknownVariant, id)
}
