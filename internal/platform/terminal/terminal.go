// Package terminal runs Greed directly on a tcell screen. A Terminal is both
// the keyboard and the video service of a Director, so StartGame can drive
// it with its own blocking loop.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/greed/internal/casting"
	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/core"
)

// eventBuffer bounds the events queued between two frames.
const eventBuffer = 100

var footerStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// Terminal draws actors as cells of a tcell screen and reads the arrow and
// WASD keys. Pixel positions map to cells by dividing by the cell size.
// All methods must be called from the game loop goroutine.
type Terminal struct {
	screen  tcell.Screen
	cfg     config.WindowConfig
	events  chan tcell.Event
	done    chan struct{}
	ticker  *time.Ticker
	pending core.Direction
	open    bool
	started bool
}

// New creates a Terminal on the process's terminal.
func New(cfg config.WindowConfig) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: cannot create screen: %w", err)
	}
	return NewWithScreen(screen, cfg), nil
}

// NewWithScreen creates a Terminal on an existing, uninitialized screen.
func NewWithScreen(screen tcell.Screen, cfg config.WindowConfig) *Terminal {
	return &Terminal{
		screen: screen,
		cfg:    cfg,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
}

// OpenWindow initializes the screen and starts reading events.
func (t *Terminal) OpenWindow() error {
	if t.started {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal: cannot initialize screen: %w", err)
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.Clear()

	t.ticker = time.NewTicker(time.Second / time.Duration(t.cfg.FrameRate))
	t.started = true
	t.open = true

	go t.pollEvents()
	return nil
}

// pollEvents forwards screen events until the screen is finalized.
func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// IsWindowOpen reports whether the player has not quit yet.
func (t *Terminal) IsWindowOpen() bool {
	t.drainEvents()
	return t.open
}

// CloseWindow restores the terminal. It is safe to call more than once.
func (t *Terminal) CloseWindow() {
	t.open = false
	if !t.started {
		return
	}
	t.started = false
	close(t.done)
	t.ticker.Stop()
	t.screen.Fini()
}

// GetDirection returns the last direction pressed since the previous frame,
// scaled by the cell size. Terminals report presses but not releases, so a
// press moves the robot for exactly one frame.
func (t *Terminal) GetDirection() core.Point {
	t.drainEvents()
	p := t.pending.Unit().Scale(t.cfg.CellSize)
	t.pending = core.DirNone
	return p
}

// drainEvents handles every queued event without blocking.
func (t *Terminal) drainEvents() {
	for {
		select {
		case ev := <-t.events:
			t.handleEvent(ev)
		default:
			return
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.open = false
		case tcell.KeyUp:
			t.pending = core.DirUp
		case tcell.KeyDown:
			t.pending = core.DirDown
		case tcell.KeyLeft:
			t.pending = core.DirLeft
		case tcell.KeyRight:
			t.pending = core.DirRight
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				t.open = false
				return
			}
			if dir := core.DirectionForKey(string(ev.Rune())); dir != core.DirNone {
				t.pending = dir
			}
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// ClearBuffer blanks the screen and draws the status line under the field.
func (t *Terminal) ClearBuffer() {
	t.screen.Clear()
	footer := t.cfg.Caption + "  arrows/wasd move  q quit"
	for i, r := range []rune(footer) {
		t.screen.SetContent(i, t.cfg.Rows(), r, nil, footerStyle)
	}
}

// DrawActor writes the actor's text at its cell in the actor's color.
func (t *Terminal) DrawActor(actor casting.Drawable) {
	p := actor.Position()
	x, y := p.X/t.cfg.CellSize, p.Y/t.cfg.CellSize
	style := tcell.StyleDefault.Foreground(rgb(actor.Color()))

	i := 0
	for _, r := range actor.Text() {
		t.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}

// DrawActors draws each actor in order.
func (t *Terminal) DrawActors(actors []*casting.Actor) {
	for _, a := range actors {
		t.DrawActor(a)
	}
}

// FlushBuffer shows the frame and waits for the next frame slot.
func (t *Terminal) FlushBuffer() {
	t.screen.Show()
	if t.ticker != nil {
		<-t.ticker.C
	}
}

// GetWidth returns the play field width in pixels.
func (t *Terminal) GetWidth() int {
	return t.cfg.MaxX
}

// GetHeight returns the play field height in pixels.
func (t *Terminal) GetHeight() int {
	return t.cfg.MaxY
}

func rgb(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
