package config

import (
	_ "embed"
)

//go:embed defaults/gridworm.yaml
var defaultYAML []byte

// Default returns the stock configuration: a 500x500 field of 8px cells
// with 2px spacing, a 5-segment worm heading right, 250ms ticks.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  500,
			Height: 500,
		},
		Cell: CellConfig{
			Size:    8,
			Spacing: 2,
		},
		Worm: WormConfig{
			Segments:         5,
			InitialDirection: "right",
			StartX:           100,
			StartY:           100,
		},
		Timing: TimingConfig{
			TickMS:    250,
			FrameRate: 30,
		},
	}
}
