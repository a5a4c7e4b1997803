package casting

import "github.com/vovakirdan/greed/internal/core"

// Mineral glyphs.
const (
	RockText = "o"
	GemText  = "*"
)

// NewRock creates a rock: a hazard that costs a point when the robot
// touches it.
func NewRock() *Actor {
	a := NewActor()
	a.SetText(RockText)
	a.SetColor(core.ColorBrown)
	return a
}

// NewGem creates a gem: a collectible worth a point.
func NewGem() *Actor {
	a := NewActor()
	a.SetText(GemText)
	a.SetColor(core.ColorCyan)
	return a
}
