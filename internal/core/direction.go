package core

// Direction is a directional intent abstracted from physical key presses.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Unit returns the unit vector for the direction, zero for DirNone.
// Screen y grows downwards.
func (d Direction) Unit() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// DirectionForKey maps a key name as reported by the terminal layers
// ("left", "a", "up", ...) to a direction. Unknown keys map to DirNone.
func DirectionForKey(key string) Direction {
	switch key {
	case "up", "w", "W":
		return DirUp
	case "down", "s", "S":
		return DirDown
	case "left", "a", "A":
		return DirLeft
	case "right", "d", "D":
		return DirRight
	}
	return DirNone
}
