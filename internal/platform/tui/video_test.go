package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/greed/internal/casting"
	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/core"
	"github.com/vovakirdan/greed/internal/scripting"
)

func TestFrameVideoLifecycle(t *testing.T) {
	v := NewFrameVideo(config.DefaultGreedConfig().Window)

	if v.IsWindowOpen() {
		t.Error("Window should start closed")
	}
	if err := v.OpenWindow(); err != nil {
		t.Fatalf("OpenWindow() failed: %v", err)
	}
	if !v.IsWindowOpen() {
		t.Error("Window should be open after OpenWindow")
	}
	v.CloseWindow()
	if v.IsWindowOpen() {
		t.Error("Window should be closed after CloseWindow")
	}

	if v.GetWidth() != 900 || v.GetHeight() != 600 {
		t.Errorf("Size = %dx%d, expected 900x600", v.GetWidth(), v.GetHeight())
	}
	if v.Screen().Width() != 60 || v.Screen().Height() != 40 {
		t.Errorf("Screen = %dx%d, expected 60x40", v.Screen().Width(), v.Screen().Height())
	}
}

func TestFrameVideoMapsPixelsToCells(t *testing.T) {
	v := NewFrameVideo(config.DefaultGreedConfig().Window)

	gem := casting.NewGem()
	gem.SetPosition(core.NewPoint(30, 45))
	robot := casting.NewActor()
	robot.SetText("#")
	robot.SetPosition(core.NewPoint(450, 585))

	v.ClearBuffer()
	v.DrawActors([]*casting.Actor{gem, robot})
	v.FlushBuffer()

	if got := v.Screen().Get(2, 3); got != '*' {
		t.Errorf("Gem cell = %q, expected '*'", got)
	}
	if got := v.Screen().GetCell(2, 3).Color; got != core.ColorCyan {
		t.Errorf("Gem color = %v, expected cyan", got)
	}
	if got := v.Screen().Get(30, 39); got != '#' {
		t.Errorf("Robot cell = %q, expected '#'", got)
	}
	if !strings.Contains(v.Frame(), "#") {
		t.Error("Flushed frame should contain the robot")
	}

	// Off-grid positions truncate to the containing cell
	gem.SetPosition(core.NewPoint(44, 14))
	v.ClearBuffer()
	v.DrawActor(gem)
	if got := v.Screen().Get(2, 0); got != '*' {
		t.Errorf("Off-grid gem cell = %q, expected '*'", got)
	}
	if got := v.Screen().Get(2, 3); got != ' ' {
		t.Errorf("ClearBuffer should blank old cells, got %q", got)
	}
}

func TestFrameVideoFrameOnlyChangesOnFlush(t *testing.T) {
	v := NewFrameVideo(config.DefaultGreedConfig().Window)

	score := casting.NewScore()
	v.ClearBuffer()
	v.DrawActor(score)
	if v.Frame() != "" {
		t.Error("Frame should be empty before the first flush")
	}
	v.FlushBuffer()
	if !strings.Contains(v.Frame(), "Score: 0") {
		t.Errorf("Frame should show the score, got %q", v.Screen().Row(0))
	}
}

func TestDrawActorsActionOnFrameVideo(t *testing.T) {
	v := NewFrameVideo(config.DefaultGreedConfig().Window)
	cast := casting.NewCast()
	score := casting.NewActor()
	score.SetText("Score: 5")
	cast.AddActor(casting.GroupScore, score)

	script := scripting.NewScript()
	script.AddAction("output", scripting.NewDrawActorsAction(v))
	script.Execute("output", cast)

	if !strings.HasPrefix(v.Screen().Row(0), "Score: 5") {
		t.Errorf("Row 0 = %q, expected the score", v.Screen().Row(0))
	}
	if !strings.Contains(v.Frame(), "Score: 5") {
		t.Error("Action should flush the frame")
	}
}

func TestFrameKeyboard(t *testing.T) {
	k := NewFrameKeyboard(15)

	if got := k.GetDirection(); !got.IsZero() {
		t.Errorf("Idle direction = %v, expected zero", got)
	}

	k.Press(core.DirLeft)
	if got := k.GetDirection(); got != core.NewPoint(-15, 0) {
		t.Errorf("GetDirection() = %v, expected (-15, 0)", got)
	}
	// A press lasts one frame
	if got := k.GetDirection(); !got.IsZero() {
		t.Errorf("Direction should be consumed, got %v", got)
	}

	// Last press in a frame wins
	k.Press(core.DirUp)
	k.Press(core.DirDown)
	if got := k.GetDirection(); got != core.NewPoint(0, 15) {
		t.Errorf("GetDirection() = %v, expected (0, 15)", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 3", core.ColorWhite)
	s.DrawText(4, 1, "o*", core.ColorBrown)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "Score: 3") {
		t.Errorf("Line 0 = %q, expected score text", lines[0])
	}
	if !strings.Contains(lines[1], "o*") {
		t.Errorf("Line 1 = %q, expected minerals", lines[1])
	}
}
