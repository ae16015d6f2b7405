package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 1, 10, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 1, true},
		{"inside", 6, 10, true},
		{"last cell", 11, 20, true},
		{"right edge (exclusive)", 12, 10, false},
		{"bottom edge (exclusive)", 6, 21, false},
		{"left of rect", 1, 10, false},
		{"above rect", 6, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	got := NewRect(0, 0, 22, 12).Inset(1)
	if got != NewRect(1, 1, 20, 10) {
		t.Errorf("Inset(1) = %+v, expected {1 1 20 10}", got)
	}
	if tiny := NewRect(0, 0, 1, 1).Inset(2); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset past zero = %+v, expected empty size", tiny)
	}
}

func TestRectCenterIn(t *testing.T) {
	got := NewRect(0, 0, 80, 24).CenterIn(22, 22)
	if got != NewRect(29, 1, 22, 22) {
		t.Errorf("CenterIn() = %+v, expected {29 1 22 22}", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
