package tui

import "github.com/gridworm/gridworm/internal/registry"

// FitVariant shrinks a variant's playfield so it fits a terminal of the
// given size, keeping the stride and everything else untouched. Pixel
// dimensions stay multiples of the stride so wrap laps stay exact.
// Variants that already fit are returned unchanged.
func FitVariant(v registry.Variant, termW, termH int) registry.Variant {
	cfg := v.Config
	stride := cfg.Stride()

	maxCols := termW
	maxRows := termH - 1 - hudHeight // help footer plus HUD
	if maxCols < 3 || maxRows < 3 {
		return v // hopeless terminal; the model shows its own overlay
	}

	cols := cfg.Playfield.Width / stride
	rows := cfg.Playfield.Height / stride
	if cols > maxCols {
		cols = maxCols
	}
	if rows > maxRows {
		rows = maxRows
	}

	cfg.Playfield.Width = cols * stride
	cfg.Playfield.Height = rows * stride

	// Keep the starting head on the shrunken field.
	if cfg.Worm.StartX > cfg.Playfield.Width-stride {
		cfg.Worm.StartX = (cols / 2) * stride
	}
	if cfg.Worm.StartY > cfg.Playfield.Height-stride {
		cfg.Worm.StartY = (rows / 2) * stride
	}

	v.Config = cfg
	return v
}
