package engine

import (
	"errors"
	"testing"
	"time"
)

func TestGravityInterval(t *testing.T) {
	g := DefaultRules().Gravity

	tests := []struct {
		level    int
		expected time.Duration
	}{
		{0, 600 * time.Millisecond},
		{1, 550 * time.Millisecond},
		{5, 350 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{11, 100 * time.Millisecond},
		{50, 100 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := g.Interval(tc.level); got != tc.expected {
			t.Errorf("Interval(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestGravityIntervalIsMonotonic(t *testing.T) {
	curves := []Gravity{
		DefaultRules().Gravity,
		{Base: time.Second, Step: 0, Min: 100 * time.Millisecond},
		{Base: 800 * time.Millisecond, Step: 60 * time.Millisecond, Min: 100 * time.Millisecond},
	}
	for _, g := range curves {
		prev := g.Interval(0)
		for level := 1; level <= 40; level++ {
			d := g.Interval(level)
			if d > prev {
				t.Errorf("%+v: Interval(%d) = %v exceeds Interval(%d) = %v", g, level, d, level-1, prev)
			}
			if d < g.Min {
				t.Errorf("%+v: Interval(%d) = %v below minimum", g, level, d)
			}
			prev = d
		}
	}
}

func TestLineClearPoints(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		rows, level, expected int
	}{
		{0, 0, 0},
		{0, 9, 0},
		{1, 0, 40},
		{2, 0, 100},
		{3, 0, 300},
		{4, 0, 1200},
		{1, 1, 80},
		{2, 4, 500},
		{4, 2, 3600},
	}

	for _, tc := range tests {
		if got := r.LineClearPoints(tc.rows, tc.level); got != tc.expected {
			t.Errorf("LineClearPoints(%d, %d) = %d, expected %d", tc.rows, tc.level, got, tc.expected)
		}
	}
}

func TestLevelFor(t *testing.T) {
	r := DefaultRules()
	for lines, expected := range map[int]int{0: 0, 9: 0, 10: 1, 19: 1, 20: 2, 105: 10} {
		if got := r.LevelFor(lines); got != expected {
			t.Errorf("LevelFor(%d) = %d, expected %d", lines, got, expected)
		}
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
		valid  bool
	}{
		{"defaults", func(*Rules) {}, true},
		{"minimum board", func(r *Rules) { r.Width, r.Height = 4, 4 }, true},
		{"narrow board", func(r *Rules) { r.Width = 3 }, false},
		{"short board", func(r *Rules) { r.Height = 2 }, false},
		{"zero lines per level", func(r *Rules) { r.LinesPerLevel = 0 }, false},
		{"negative soft drop", func(r *Rules) { r.SoftDropPoints = -1 }, false},
		{"negative line clear", func(r *Rules) { r.LineClear[2] = -100 }, false},
		{"zero minimum interval", func(r *Rules) { r.Gravity.Min = 0 }, false},
		{"negative step", func(r *Rules) { r.Gravity.Step = -time.Millisecond }, false},
		{"minimum above base", func(r *Rules) { r.Gravity.Min = time.Second }, false},
		{"fixed speed", func(r *Rules) { r.Gravity.Step = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := DefaultRules()
			tc.mutate(&r)
			err := r.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() error = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidRules) {
				t.Errorf("Validate() error = %v, expected ErrInvalidRules", err)
			}
		})
	}
}
