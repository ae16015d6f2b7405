package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is wrapped by Rules.Validate failures.
var ErrInvalidRules = errors.New("engine: invalid rules")

// Gravity maps a level to the interval between automatic drops:
// max(Min, Base - level*Step).
type Gravity struct {
	Base time.Duration
	Step time.Duration
	Min  time.Duration
}

// Interval returns the gravity interval at a level. It never increases with
// level and never drops below Min.
func (g Gravity) Interval(level int) time.Duration {
	d := g.Base - time.Duration(level)*g.Step
	if d < g.Min {
		return g.Min
	}
	return d
}

// Rules holds every tunable constant of a session.
type Rules struct {
	Width  int
	Height int

	// LineClear is the base award for clearing 0..4 rows with one lock,
	// multiplied by level+1.
	LineClear      [5]int
	SoftDropPoints int // per row moved by an explicit soft drop
	HardDropPoints int // per row fallen during a hard drop
	LinesPerLevel  int

	Gravity Gravity

	// WallKicks enables the offset search when a rotation is blocked.
	WallKicks bool
}

// DefaultRules returns a 10x20 well with Nintendo scoring, drop bonuses of
// one and two points per row, a level every ten lines and no wall kicks.
func DefaultRules() Rules {
	return Rules{
		Width:          10,
		Height:         20,
		LineClear:      [5]int{0, 40, 100, 300, 1200},
		SoftDropPoints: 1,
		HardDropPoints: 2,
		LinesPerLevel:  10,
		Gravity: Gravity{
			Base: 600 * time.Millisecond,
			Step: 50 * time.Millisecond,
			Min:  100 * time.Millisecond,
		},
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.Width < 4 || r.Height < 4:
		return fmt.Errorf("%w: board %dx%d is smaller than 4x4", ErrInvalidRules, r.Width, r.Height)
	case r.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines per level must be positive, got %d", ErrInvalidRules, r.LinesPerLevel)
	case r.SoftDropPoints < 0 || r.HardDropPoints < 0:
		return fmt.Errorf("%w: drop points must not be negative", ErrInvalidRules)
	case r.Gravity.Min <= 0 || r.Gravity.Step < 0:
		return fmt.Errorf("%w: gravity min must be positive and step non-negative", ErrInvalidRules)
	case r.Gravity.Min > r.Gravity.Base:
		return fmt.Errorf("%w: gravity min %v exceeds base %v", ErrInvalidRules, r.Gravity.Min, r.Gravity.Base)
	}
	for k, pts := range r.LineClear {
		if pts < 0 {
			return fmt.Errorf("%w: line clear points for %d rows are negative", ErrInvalidRules, k)
		}
	}
	return nil
}

// LineClearPoints returns the award for clearing rows at once at level.
func (r Rules) LineClearPoints(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	rows = min(rows, len(r.LineClear)-1)
	return r.LineClear[rows] * (level + 1)
}

// LevelFor returns the level reached after clearing lines in total.
func (r Rules) LevelFor(lines int) int {
	return lines / r.LinesPerLevel
}

// kickOffsets are tried in order when WallKicks is on: in place, one column
// left, one column right, one row up.
var kickOffsets = []Point{
	{Row: 0, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
}
