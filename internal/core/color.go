package core

import "fmt"

// Color is a 24-bit RGB color carried by actors and screen cells.
// Backends convert it to their own representation.
type Color struct {
	R, G, B uint8
}

// NewColor creates a color from its red, green and blue components.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors for game elements.
var (
	ColorWhite  = Color{R: 255, G: 255, B: 255}
	ColorRed    = Color{R: 255, G: 0, B: 0}
	ColorGreen  = Color{R: 0, G: 255, B: 0}
	ColorYellow = Color{R: 255, G: 255, B: 0}
	ColorCyan   = Color{R: 0, G: 255, B: 255}
	ColorGray   = Color{R: 150, G: 150, B: 150}
	ColorBrown  = Color{R: 160, G: 110, B: 60}
)
