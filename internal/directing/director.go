// Package directing runs Greed's game loop. The Director reads input,
// spawns and moves minerals, resolves collisions and renders, once per frame,
// until the video service reports the window closed.
package directing

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/greed/internal/casting"
	"github.com/vovakirdan/greed/internal/config"
	"github.com/vovakirdan/greed/internal/core"
)

// ErrMissingActor is returned when a frame needs the robot or the banner
// and the cast has none.
var ErrMissingActor = errors.New("missing actor")

// Director controls the sequence of play.
type Director struct {
	keyboard KeyboardService
	video    VideoService
	cfg      config.GreedConfig
	score    *casting.Score
	rng      Rand
	logger   *log.Logger
	frames   int
}

// Option configures a Director.
type Option func(*Director)

// WithRand sets the random source used for spawning.
func WithRand(r Rand) Option {
	return func(d *Director) {
		d.rng = r
	}
}

// WithSeed seeds a new random source. Zero means seed from the clock.
func WithSeed(seed int64) Option {
	return func(d *Director) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		d.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for spawn and collision events.
func WithLogger(l *log.Logger) Option {
	return func(d *Director) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDirector creates a Director over the given services.
func NewDirector(keyboard KeyboardService, video VideoService, cfg config.GreedConfig, opts ...Option) *Director {
	d := &Director{
		keyboard: keyboard,
		video:    video,
		cfg:      cfg,
		score:    casting.NewScore(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Score returns the running score.
func (d *Director) Score() *casting.Score {
	return d.score
}

// Frames returns the number of frames played.
func (d *Director) Frames() int {
	return d.frames
}

// StartGame opens the window and plays frames until it is closed.
// A frame error ends the game and is returned; the window is closed either way.
func (d *Director) StartGame(cast *casting.Cast) error {
	if err := d.video.OpenWindow(); err != nil {
		return fmt.Errorf("directing: cannot open window: %w", err)
	}
	defer d.video.CloseWindow()

	for d.video.IsWindowOpen() {
		if err := d.PlayFrame(cast); err != nil {
			return err
		}
	}

	d.logger.Info("game over", "score", d.score.Points(), "frames", d.frames)
	return nil
}

// PlayFrame runs one iteration of the game loop. Hosts with their own event
// loop call it once per tick instead of StartGame.
func (d *Director) PlayFrame(cast *casting.Cast) error {
	if err := d.getInputs(cast); err != nil {
		return err
	}
	d.addMinerals(cast)
	d.updateMinerals(cast)
	if err := d.doUpdates(cast); err != nil {
		return err
	}
	d.doOutputs(cast)
	d.removeMinerals(cast)

	d.frames++
	return nil
}

// getInputs applies the keyboard direction to the robot.
func (d *Director) getInputs(cast *casting.Cast) error {
	robot, err := requireActor(cast, casting.GroupRobot)
	if err != nil {
		return err
	}
	robot.SetVelocity(d.keyboard.GetDirection())
	return nil
}

// addMinerals spawns new gems and rocks on the top row.
func (d *Director) addMinerals(cast *casting.Cast) {
	limit := d.cfg.Minerals.SpawnLimit
	numOfRocks := d.rng.Intn(limit)
	numOfGems := d.rng.Intn(limit)

	for i := 0; i < numOfGems; i++ {
		cast.AddActor(casting.GroupGem, d.place(casting.NewGem()))
	}

	// Rocks reuse the gem count; numOfRocks is drawn but never drives a loop.
	for i := 0; i < numOfGems; i++ {
		cast.AddActor(casting.GroupRock, d.place(casting.NewRock()))
	}

	if numOfGems > 0 {
		d.logger.Debug("minerals spawned", "frame", d.frames, "gems", numOfGems, "rocks", numOfGems, "rockDraw", numOfRocks)
	}
}

// place puts a new mineral at a random column of the top row.
func (d *Director) place(mineral *casting.Actor) *casting.Actor {
	w := d.cfg.Window
	var x int
	if d.cfg.Minerals.AlignToGrid {
		x = d.rng.Intn(w.Columns()) * w.CellSize
	} else {
		x = d.rng.Intn(w.MaxX)
	}

	mineral.SetFontSize(d.cfg.Minerals.FontSize)
	mineral.SetPosition(core.NewPoint(x, 0))
	return mineral
}

// updateMinerals moves every rock and gem down by one cell.
func (d *Director) updateMinerals(cast *casting.Cast) {
	w := d.cfg.Window
	fall := core.NewPoint(0, 1).Scale(w.CellSize)

	for _, group := range []string{casting.GroupRock, casting.GroupGem} {
		for _, m := range cast.Actors(group) {
			m.SetVelocity(fall)
			m.MoveNext(w.MaxX, w.MaxY)
		}
	}
}

// doUpdates moves the robot and resolves collisions with minerals.
func (d *Director) doUpdates(cast *casting.Cast) error {
	banner, err := requireActor(cast, casting.GroupBanner)
	if err != nil {
		return err
	}
	robot, err := requireActor(cast, casting.GroupRobot)
	if err != nil {
		return err
	}
	rocks := cast.Actors(casting.GroupRock)
	gems := cast.Actors(casting.GroupGem)

	banner.SetText("")
	robot.MoveNext(d.video.GetWidth(), d.video.GetHeight())

	pos := robot.Position()
	for _, rock := range rocks {
		if pos.Equals(rock.Position()) {
			d.score.AddPoints(-1)
			d.logger.Debug("hit rock", "frame", d.frames, "at", pos, "score", d.score.Points())
		}
	}
	for _, gem := range gems {
		if pos.Equals(gem.Position()) {
			d.score.AddPoints(1)
			d.logger.Debug("collected gem", "frame", d.frames, "at", pos, "score", d.score.Points())
		}
	}
	return nil
}

// doOutputs draws the score and every actor.
func (d *Director) doOutputs(cast *casting.Cast) {
	actors := cast.AllActors()
	d.video.ClearBuffer()
	d.video.DrawActor(d.score)
	d.video.DrawActors(actors)
	d.video.FlushBuffer()
}

// removeMinerals despawns rocks and gems that reached the bottom row.
func (d *Director) removeMinerals(cast *casting.Cast) {
	maxY := d.cfg.Window.MaxY
	for _, group := range []string{casting.GroupRock, casting.GroupGem} {
		for _, m := range cast.Actors(group) {
			if m.Position().Y == maxY-m.FontSize() {
				cast.RemoveActor(group, m)
			}
		}
	}
}

// requireActor returns the first actor of group or ErrMissingActor.
func requireActor(cast *casting.Cast, group string) (*casting.Actor, error) {
	a := cast.FirstActor(group)
	if a == nil {
		return nil, fmt.Errorf("directing: %w: %q", ErrMissingActor, group)
	}
	return a, nil
}
