// Package config provides YAML-based game configuration loading for Greed.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// GreedConfig contains all configuration for the game.
type GreedConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Minerals MineralsConfig `yaml:"minerals"`
}

// WindowConfig defines the play field and the video surface.
type WindowConfig struct {
	Caption    string `yaml:"caption"`
	MaxX       int    `yaml:"max_x"`
	MaxY       int    `yaml:"max_y"`
	CellSize   int    `yaml:"cell_size"`
	FontSize   int    `yaml:"font_size"`
	FrameRate  int    `yaml:"frame_rate"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// MineralsConfig defines how rocks and gems are spawned.
type MineralsConfig struct {
	SpawnLimit  int  `yaml:"spawn_limit"`   // Spawn counts are drawn from [0, SpawnLimit)
	FontSize    int  `yaml:"font_size"`     // Also decides the despawn row
	AlignToGrid bool `yaml:"align_to_grid"` // Spawn x on multiples of CellSize
}

// Columns returns the play field width in grid cells.
func (w WindowConfig) Columns() int {
	return w.MaxX / w.CellSize
}

// Rows returns the play field height in grid cells.
func (w WindowConfig) Rows() int {
	return w.MaxY / w.CellSize
}

// Validate checks that the configuration describes a playable grid.
func (c GreedConfig) Validate() error {
	w := c.Window
	switch {
	case w.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, w.CellSize)
	case w.MaxX <= 0 || w.MaxY <= 0:
		return fmt.Errorf("%w: max_x and max_y must be positive, got %dx%d", ErrInvalidConfig, w.MaxX, w.MaxY)
	case w.MaxX%w.CellSize != 0 || w.MaxY%w.CellSize != 0:
		return fmt.Errorf("%w: max_x and max_y must be multiples of cell_size %d", ErrInvalidConfig, w.CellSize)
	case w.Columns()%2 != 0:
		return fmt.Errorf("%w: max_x must span an even number of cells so the robot starts on the grid, got %d", ErrInvalidConfig, w.Columns())
	case w.FontSize <= 0 || w.FontSize > w.MaxY:
		return fmt.Errorf("%w: window font_size must be in (0, max_y], got %d", ErrInvalidConfig, w.FontSize)
	case w.FontSize%w.CellSize != 0:
		return fmt.Errorf("%w: window font_size must be a multiple of cell_size %d, got %d", ErrInvalidConfig, w.CellSize, w.FontSize)
	case w.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalidConfig, w.FrameRate)
	}

	m := c.Minerals
	switch {
	case m.SpawnLimit <= 0:
		return fmt.Errorf("%w: spawn_limit must be at least 1, got %d", ErrInvalidConfig, m.SpawnLimit)
	case m.FontSize <= 0 || m.FontSize > w.MaxY:
		return fmt.Errorf("%w: minerals font_size must be in (0, max_y], got %d", ErrInvalidConfig, m.FontSize)
	case m.FontSize%w.CellSize != 0:
		// Minerals fall a cell at a time and despawn at max_y - font_size
		return fmt.Errorf("%w: minerals font_size must be a multiple of cell_size %d, got %d", ErrInvalidConfig, w.CellSize, m.FontSize)
	}
	return nil
}
