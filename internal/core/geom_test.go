package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected Point
	}{
		{"zero", NewPoint(0, 0), NewPoint(0, 0), NewPoint(0, 0)},
		{"positive", NewPoint(10, 20), NewPoint(5, 15), NewPoint(15, 35)},
		{"negative", NewPoint(10, 20), NewPoint(-15, -5), NewPoint(-5, 15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Add(tc.b)
			if result != tc.expected {
				t.Errorf("Add() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			if reverse := tc.b.Add(tc.a); reverse != tc.expected {
				t.Errorf("Add() (reversed) = %v, expected %v", reverse, tc.expected)
			}
		})
	}
}

func TestPointAddDoesNotMutate(t *testing.T) {
	p := NewPoint(1, 2)
	_ = p.Add(NewPoint(3, 4))
	_ = p.Scale(10)

	if p != NewPoint(1, 2) {
		t.Errorf("Point should be immutable, got %v", p)
	}
}

func TestPointScale(t *testing.T) {
	tests := []struct {
		p        Point
		factor   int
		expected Point
	}{
		{NewPoint(0, 1), 15, NewPoint(0, 15)},
		{NewPoint(-1, 0), 15, NewPoint(-15, 0)},
		{NewPoint(3, 4), 0, NewPoint(0, 0)},
		{NewPoint(3, -4), -2, NewPoint(-6, 8)},
	}

	for _, tc := range tests {
		result := tc.p.Scale(tc.factor)
		if result != tc.expected {
			t.Errorf("%v.Scale(%d) = %v, expected %v", tc.p, tc.factor, result, tc.expected)
		}
	}
}

func TestPointEquals(t *testing.T) {
	if !NewPoint(450, 585).Equals(NewPoint(450, 585)) {
		t.Error("Points with same coordinates should be equal")
	}
	if NewPoint(450, 585).Equals(NewPoint(585, 450)) {
		t.Error("Swapped coordinates should not be equal")
	}
	if NewPoint(0, 0).Equals(NewPoint(0, 1)) {
		t.Error("Different y should not be equal")
	}
}

func TestPointIsZero(t *testing.T) {
	if !(Point{}).IsZero() {
		t.Error("Zero value should be zero")
	}
	if NewPoint(0, -1).IsZero() {
		t.Error("(0, -1) should not be zero")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorWhite.Hex(); got != "#ffffff" {
		t.Errorf("ColorWhite.Hex() = %q, expected #ffffff", got)
	}
	if got := NewColor(1, 2, 171).Hex(); got != "#0102ab" {
		t.Errorf("Hex() = %q, expected #0102ab", got)
	}
}

func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		key      string
		expected Direction
	}{
		{"up", DirUp},
		{"w", DirUp},
		{"down", DirDown},
		{"s", DirDown},
		{"left", DirLeft},
		{"a", DirLeft},
		{"right", DirRight},
		{"d", DirRight},
		{"x", DirNone},
		{"", DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := DirectionForKey(tc.key); got != tc.expected {
				t.Errorf("DirectionForKey(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestDirectionUnit(t *testing.T) {
	if DirNone.Unit() != (Point{}) {
		t.Error("DirNone should map to zero vector")
	}
	if DirUp.Unit() != NewPoint(0, -1) {
		t.Errorf("DirUp.Unit() = %v", DirUp.Unit())
	}
	if DirRight.Unit().Scale(15) != NewPoint(15, 0) {
		t.Errorf("DirRight scaled = %v", DirRight.Unit().Scale(15))
	}
}
