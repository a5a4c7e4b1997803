package directing

import (
	"github.com/vovakirdan/greed/internal/casting"
	"github.com/vovakirdan/greed/internal/core"
)

// KeyboardService reports the direction the player is pushing.
type KeyboardService interface {
	// GetDirection returns the pressed direction as a unit vector scaled by
	// the cell size, or the zero point when nothing is pressed.
	GetDirection() core.Point
}

// VideoService owns the output surface. Positions handed to it are in
// pixels; implementations map them onto their own grid.
type VideoService interface {
	OpenWindow() error
	IsWindowOpen() bool
	CloseWindow()

	ClearBuffer()
	DrawActor(actor casting.Drawable)
	DrawActors(actors []*casting.Actor)
	FlushBuffer()

	// GetWidth and GetHeight return the play field size in pixels.
	GetWidth() int
	GetHeight() int
}

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
