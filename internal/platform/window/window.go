// Package window runs Greed in a native raylib window, drawing each actor's
// text at its pixel position in its font size.
package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/greed/internal/casting"
	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/core"
)

// Window is both the keyboard and the video service of a Director.
// raylib is not thread-safe: every method must be called from the goroutine
// that opened the window.
type Window struct {
	cfg       config.WindowConfig
	isKeyDown func(key int32) bool
	open      bool
}

// New creates a Window; nothing is shown until OpenWindow.
func New(cfg config.WindowConfig) *Window {
	return &Window{
		cfg:       cfg,
		isKeyDown: rl.IsKeyDown,
	}
}

// OpenWindow creates the native window at the configured size and frame rate.
func (w *Window) OpenWindow() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w.cfg.MaxX), int32(w.cfg.MaxY), w.cfg.Caption)
	rl.SetTargetFPS(int32(w.cfg.FrameRate))
	rl.SetExitKey(rl.KeyEscape)
	if w.cfg.Fullscreen {
		rl.ToggleFullscreen()
	}
	w.open = true
	return nil
}

// IsWindowOpen reports false once the user closed the window or pressed Esc.
func (w *Window) IsWindowOpen() bool {
	return w.open && !rl.WindowShouldClose()
}

// CloseWindow destroys the native window.
func (w *Window) CloseWindow() {
	if !w.open {
		return
	}
	w.open = false
	rl.CloseWindow()
}

// GetDirection returns the held arrow or WASD keys as a direction scaled by
// the cell size. Opposite keys cancel. Only one axis moves per frame, with
// horizontal keys taking precedence.
func (w *Window) GetDirection() core.Point {
	var dx, dy int
	if w.anyDown(rl.KeyLeft, rl.KeyA) {
		dx--
	}
	if w.anyDown(rl.KeyRight, rl.KeyD) {
		dx++
	}
	if w.anyDown(rl.KeyUp, rl.KeyW) {
		dy--
	}
	if w.anyDown(rl.KeyDown, rl.KeyS) {
		dy++
	}
	if dx != 0 {
		dy = 0
	}
	return core.NewPoint(dx, dy).Scale(w.cfg.CellSize)
}

func (w *Window) anyDown(keys ...int32) bool {
	for _, k := range keys {
		if w.isKeyDown(k) {
			return true
		}
	}
	return false
}

// ClearBuffer starts a frame on a black background.
func (w *Window) ClearBuffer() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

// DrawActor draws the actor's text at its position.
func (w *Window) DrawActor(actor casting.Drawable) {
	p := actor.Position()
	rl.DrawText(actor.Text(), int32(p.X), int32(p.Y), int32(actor.FontSize()), toRaylib(actor.Color()))
}

// DrawActors draws each actor in order.
func (w *Window) DrawActors(actors []*casting.Actor) {
	for _, a := range actors {
		w.DrawActor(a)
	}
}

// FlushBuffer presents the frame; raylib waits for the target frame rate.
func (w *Window) FlushBuffer() {
	rl.EndDrawing()
}

// GetWidth returns the window width in pixels.
func (w *Window) GetWidth() int {
	return w.cfg.MaxX
}

// GetHeight returns the window height in pixels.
func (w *Window) GetHeight() int {
	return w.cfg.MaxY
}

func toRaylib(c core.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
