// Package casting holds the game entities (actors) and the registry that
// groups them by role.
package casting

import "github.com/vovakirdan/greed/internal/core"

// DefaultFontSize is the glyph size given to a freshly created actor.
const DefaultFontSize = 15

// Drawable is anything a video service can put on screen.
type Drawable interface {
	Position() core.Point
	Text() string
	Color() core.Color
	FontSize() int
}

// Actor is a visible, positioned game entity such as the robot, the banner
// or a falling mineral. Actors are mutable and owned by the Cast group they
// were added to.
type Actor struct {
	position core.Point
	velocity core.Point
	text     string
	color    core.Color
	fontSize int
}

// NewActor creates an actor with empty text, white color and the default
// font size at the origin.
func NewActor() *Actor {
	return &Actor{
		color:    core.ColorWhite,
		fontSize: DefaultFontSize,
	}
}

// Position returns the actor's position in pixels.
func (a *Actor) Position() core.Point { return a.position }

// SetPosition moves the actor to p.
func (a *Actor) SetPosition(p core.Point) { a.position = p }

// Velocity returns the distance the actor travels on each MoveNext.
func (a *Actor) Velocity() core.Point { return a.velocity }

// SetVelocity sets the actor's velocity.
func (a *Actor) SetVelocity(v core.Point) { a.velocity = v }

// Text returns the glyphs drawn for the actor.
func (a *Actor) Text() string { return a.text }

// SetText sets the glyphs drawn for the actor.
func (a *Actor) SetText(text string) { a.text = text }

// Color returns the actor's color.
func (a *Actor) Color() core.Color { return a.color }

// SetColor sets the actor's color.
func (a *Actor) SetColor(c core.Color) { a.color = c }

// FontSize returns the actor's font size in pixels.
func (a *Actor) FontSize() int { return a.fontSize }

// SetFontSize sets the actor's font size in pixels.
func (a *Actor) SetFontSize(size int) { a.fontSize = size }

// MoveNext advances the actor by its velocity and clamps the result into
// [0, maxX] x [0, maxY].
func (a *Actor) MoveNext(maxX, maxY int) {
	next := a.position.Add(a.velocity)
	a.position = core.Point{
		X: core.Clamp(next.X, 0, maxX),
		Y: core.Clamp(next.Y, 0, maxY),
	}
}
