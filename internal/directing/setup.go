package directing

import (
	"github.com/vovakirdan/greed/internal/casting"
	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/core"
)

// RobotText is the glyph of the player's robot.
const RobotText = "#"

// NewCast creates the starting cast: an empty banner on the top row and the
// robot centered on the bottom row.
func NewCast(cfg config.GreedConfig) *casting.Cast {
	w := cfg.Window
	cast := casting.NewCast()

	banner := casting.NewActor()
	banner.SetText("")
	banner.SetFontSize(w.FontSize)
	banner.SetColor(core.ColorWhite)
	banner.SetPosition(core.NewPoint(w.CellSize, 0))
	cast.AddActor(casting.GroupBanner, banner)

	robot := casting.NewActor()
	robot.SetText(RobotText)
	robot.SetFontSize(w.FontSize)
	robot.SetColor(core.ColorWhite)
	robot.SetPosition(core.NewPoint(w.MaxX/2, w.MaxY-robot.FontSize()))
	cast.AddActor(casting.GroupRobot, robot)

	return cast
}
