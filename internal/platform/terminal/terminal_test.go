package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/greed/internal/casting"
	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/core"
	"github.com/vovakirdan/greed/internal/directing"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	cfg := config.DefaultGreedConfig().Window
	cfg.FrameRate = 1000

	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen, cfg)
	if err := term.OpenWindow(); err != nil {
		t.Fatalf("OpenWindow() failed: %v", err)
	}
	screen.SetSize(cfg.Columns(), cfg.Rows()+1)
	t.Cleanup(term.CloseWindow)
	return term, screen
}

// waitDirection polls until a key press has been delivered.
func waitDirection(t *testing.T, term *Terminal) core.Point {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if d := term.GetDirection(); !d.IsZero() {
			return d
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("No direction received")
	return core.Point{}
}

// waitClosed polls until the terminal reports the window closed.
func waitClosed(t *testing.T, term *Terminal) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !term.IsWindowOpen() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Window should have closed")
}

func TestTerminalDirections(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected core.Point
	}{
		{"arrow left", tcell.KeyLeft, 0, core.NewPoint(-15, 0)},
		{"arrow right", tcell.KeyRight, 0, core.NewPoint(15, 0)},
		{"arrow up", tcell.KeyUp, 0, core.NewPoint(0, -15)},
		{"arrow down", tcell.KeyDown, 0, core.NewPoint(0, 15)},
		{"a", tcell.KeyRune, 'a', core.NewPoint(-15, 0)},
		{"d", tcell.KeyRune, 'd', core.NewPoint(15, 0)},
		{"w", tcell.KeyRune, 'w', core.NewPoint(0, -15)},
		{"s", tcell.KeyRune, 's', core.NewPoint(0, 15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			term, screen := newSimTerminal(t)
			screen.InjectKey(tc.key, tc.r, tcell.ModNone)

			if got := waitDirection(t, term); got != tc.expected {
				t.Errorf("GetDirection() = %v, expected %v", got, tc.expected)
			}
			// The press is consumed by the frame that read it
			if got := term.GetDirection(); !got.IsZero() {
				t.Errorf("Second GetDirection() = %v, expected zero", got)
			}
		})
	}
}

func TestTerminalQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"esc", tcell.KeyEscape, 0},
		{"ctrl+c", tcell.KeyCtrlC, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			term, screen := newSimTerminal(t)
			if !term.IsWindowOpen() {
				t.Fatal("Window should be open")
			}
			screen.InjectKey(tc.key, tc.r, tcell.ModNone)
			waitClosed(t, term)
		})
	}
}

func TestTerminalDrawsActorCells(t *testing.T) {
	term, screen := newSimTerminal(t)

	gem := casting.NewGem()
	gem.SetPosition(core.NewPoint(30, 45))
	score := casting.NewScore()

	term.ClearBuffer()
	term.DrawActor(score)
	term.DrawActors([]*casting.Actor{gem})
	term.FlushBuffer()

	r, _, style, _ := screen.GetContent(2, 3)
	if r != '*' {
		t.Errorf("Gem cell = %q, expected '*'", r)
	}
	fg, _, _ := style.Decompose()
	if fg != rgb(core.ColorCyan) {
		t.Errorf("Gem color = %v, expected cyan", fg)
	}

	var row []rune
	for x := range len("Score: 0") {
		r, _, _, _ := screen.GetContent(x, 0)
		row = append(row, r)
	}
	if string(row) != "Score: 0" {
		t.Errorf("Row 0 = %q, expected score", string(row))
	}

	// Status line sits below the play field
	r, _, _, _ = screen.GetContent(0, 40)
	if r != 'G' {
		t.Errorf("Footer starts with %q, expected 'G'", r)
	}
}

func TestTerminalCloseIsIdempotent(t *testing.T) {
	term, _ := newSimTerminal(t)
	term.CloseWindow()
	term.CloseWindow()

	if term.IsWindowOpen() {
		t.Error("Window should be closed")
	}
}

func TestTerminalRunsDirector(t *testing.T) {
	term, screen := newSimTerminal(t)
	cfg := config.DefaultGreedConfig()
	cast := directing.NewCast(cfg)
	director := directing.NewDirector(term, term, cfg, directing.WithSeed(3))

	for range 5 {
		if err := director.PlayFrame(cast); err != nil {
			t.Fatalf("PlayFrame() failed: %v", err)
		}
	}
	if director.Frames() != 5 {
		t.Errorf("Frames() = %d, expected 5", director.Frames())
	}

	r, _, _, _ := screen.GetContent(30, 39)
	if r != '#' {
		t.Errorf("Robot cell = %q, expected '#'", r)
	}
}
