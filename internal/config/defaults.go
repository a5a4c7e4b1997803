package config

import (
	_ "embed"
)

//go:embed defaults/greed.yaml
var defaultGreedYAML []byte

// DefaultGreedConfig returns the default Greed configuration.
func DefaultGreedConfig() GreedConfig {
	return GreedConfig{
		Window: WindowConfig{
			Caption:    "Greed",
			MaxX:       900,
			MaxY:       600,
			CellSize:   15,
			FontSize:   15,
			FrameRate:  12,
			Fullscreen: false,
		},
		Minerals: MineralsConfig{
			SpawnLimit:  2,
			FontSize:    15,
			AlignToGrid: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGreedYAML
}
