package tui

import (
	"github.com/vovakirdan/greed/internal/casting"
	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/core"
)

// FrameVideo is a video service that draws into a Screen buffer and keeps
// the last flushed frame as a styled string for Bubble Tea's View.
// Pixel positions are mapped to cells by dividing by the cell size.
type FrameVideo struct {
	screen   *core.Screen
	cellSize int
	width    int
	height   int
	open     bool
	frame    string
}

// NewFrameVideo creates a frame video sized to the play field.
func NewFrameVideo(w config.WindowConfig) *FrameVideo {
	return &FrameVideo{
		screen:   core.NewScreen(w.Columns(), w.Rows()),
		cellSize: w.CellSize,
		width:    w.MaxX,
		height:   w.MaxY,
	}
}

// OpenWindow marks the window open.
func (v *FrameVideo) OpenWindow() error {
	v.open = true
	return nil
}

// IsWindowOpen reports whether the window is still open.
func (v *FrameVideo) IsWindowOpen() bool {
	return v.open
}

// CloseWindow marks the window closed.
func (v *FrameVideo) CloseWindow() {
	v.open = false
}

// ClearBuffer blanks the screen buffer.
func (v *FrameVideo) ClearBuffer() {
	v.screen.Clear()
}

// DrawActor writes the actor's text at its cell.
func (v *FrameVideo) DrawActor(actor casting.Drawable) {
	p := actor.Position()
	v.screen.DrawText(p.X/v.cellSize, p.Y/v.cellSize, actor.Text(), actor.Color())
}

// DrawActors draws each actor in order.
func (v *FrameVideo) DrawActors(actors []*casting.Actor) {
	for _, a := range actors {
		v.DrawActor(a)
	}
}

// FlushBuffer renders the buffer into the current frame.
func (v *FrameVideo) FlushBuffer() {
	v.frame = RenderScreen(v.screen)
}

// Frame returns the last flushed frame.
func (v *FrameVideo) Frame() string {
	return v.frame
}

// Screen returns the underlying buffer.
func (v *FrameVideo) Screen() *core.Screen {
	return v.screen
}

// GetWidth returns the play field width in pixels.
func (v *FrameVideo) GetWidth() int {
	return v.width
}

// GetHeight returns the play field height in pixels.
func (v *FrameVideo) GetHeight() int {
	return v.height
}

// FrameKeyboard is a keyboard service fed by key messages.
// Terminals report presses but not releases, so a press moves the robot for
// exactly one frame.
type FrameKeyboard struct {
	cellSize int
	pending  core.Direction
}

// NewFrameKeyboard creates a keyboard that scales directions by cellSize.
func NewFrameKeyboard(cellSize int) *FrameKeyboard {
	return &FrameKeyboard{cellSize: cellSize}
}

// Press records a direction for the next frame. A later press in the same
// frame wins.
func (k *FrameKeyboard) Press(d core.Direction) {
	k.pending = d
}

// GetDirection returns and consumes the pending direction.
func (k *FrameKeyboard) GetDirection() core.Point {
	p := k.pending.Unit().Scale(k.cellSize)
	k.pending = core.DirNone
	return p
}
