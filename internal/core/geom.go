// Package core provides fundamental types and utilities for the Greed game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Point is an immutable 2D integer coordinate. It is used both as a
// position and as a velocity vector, always in pixel units.
type Point struct {
	X, Y int
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Scale returns p with both components multiplied by factor.
func (p Point) Scale(factor int) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Equals reports whether p and other hold the same coordinates.
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
