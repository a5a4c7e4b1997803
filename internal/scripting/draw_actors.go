package scripting

import "github.com/vovakirdan/greed/internal/casting"

// Video is the part of a video service DrawActorsAction needs.
type Video interface {
	ClearBuffer()
	DrawActor(actor casting.Drawable)
	DrawActors(actors []*casting.Actor)
	FlushBuffer()
}

// DrawActorsAction is an output action that clears the buffer, draws the
// score and flushes.
type DrawActorsAction struct {
	video Video
}

// NewDrawActorsAction creates a draw action bound to video.
func NewDrawActorsAction(video Video) *DrawActorsAction {
	return &DrawActorsAction{video: video}
}

// Execute draws the first actor of the score group, if there is one.
func (d *DrawActorsAction) Execute(cast *casting.Cast, _ *Script) {
	d.video.ClearBuffer()
	if score := cast.FirstActor(casting.GroupScore); score != nil {
		d.video.DrawActor(score)
	}
	d.video.FlushBuffer()
}
