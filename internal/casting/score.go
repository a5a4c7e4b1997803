package casting

import (
	"fmt"

	"github.com/vovakirdan/greed/internal/core"
)

// Score is an actor that displays the player's points.
type Score struct {
	Actor
	points int
}

// NewScore creates a score of zero points at the top-left corner.
func NewScore() *Score {
	s := &Score{
		Actor: Actor{
			color:    core.ColorWhite,
			fontSize: DefaultFontSize,
		},
	}
	s.refresh()
	return s
}

// AddPoints adds delta to the score. Negative deltas and negative totals
// are allowed.
func (s *Score) AddPoints(delta int) {
	s.points += delta
	s.refresh()
}

// Points returns the current total.
func (s *Score) Points() int {
	return s.points
}

func (s *Score) refresh() {
	s.text = fmt.Sprintf("Score: %d", s.points)
}
