package window

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/core"
)

func withKeys(w *Window, down ...int32) {
	held := make(map[int32]bool, len(down))
	for _, k := range down {
		held[k] = true
	}
	w.isKeyDown = func(key int32) bool { return held[key] }
}

func TestGetDirection(t *testing.T) {
	tests := []struct {
		name     string
		down     []int32
		expected core.Point
	}{
		{"idle", nil, core.NewPoint(0, 0)},
		{"left arrow", []int32{rl.KeyLeft}, core.NewPoint(-15, 0)},
		{"a", []int32{rl.KeyA}, core.NewPoint(-15, 0)},
		{"right arrow", []int32{rl.KeyRight}, core.NewPoint(15, 0)},
		{"d", []int32{rl.KeyD}, core.NewPoint(15, 0)},
		{"up arrow", []int32{rl.KeyUp}, core.NewPoint(0, -15)},
		{"w", []int32{rl.KeyW}, core.NewPoint(0, -15)},
		{"down arrow", []int32{rl.KeyDown}, core.NewPoint(0, 15)},
		{"s", []int32{rl.KeyS}, core.NewPoint(0, 15)},
		{"horizontal wins over up", []int32{rl.KeyLeft, rl.KeyUp}, core.NewPoint(-15, 0)},
		{"horizontal wins over down", []int32{rl.KeyD, rl.KeyS}, core.NewPoint(15, 0)},
		{"opposites cancel", []int32{rl.KeyLeft, rl.KeyD}, core.NewPoint(0, 0)},
		{"cancelled horizontal lets vertical through", []int32{rl.KeyLeft, rl.KeyRight, rl.KeyDown}, core.NewPoint(0, 15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := New(config.DefaultGreedConfig().Window)
			withKeys(w, tc.down...)
			if got := w.GetDirection(); got != tc.expected {
				t.Errorf("GetDirection() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestToRaylib(t *testing.T) {
	got := toRaylib(core.ColorBrown)
	if got.R != 160 || got.G != 110 || got.B != 60 || got.A != 255 {
		t.Errorf("toRaylib(brown) = %+v", got)
	}
}

func TestSizeFromConfig(t *testing.T) {
	w := New(config.DefaultGreedConfig().Window)
	if w.GetWidth() != 900 || w.GetHeight() != 600 {
		t.Errorf("Size = %dx%d, expected 900x600", w.GetWidth(), w.GetHeight())
	}
	if w.IsWindowOpen() {
		t.Error("Window should not be open before OpenWindow")
	}
	// Closing an unopened window is a no-op
	w.CloseWindow()
}
