// Package config provides YAML-based configuration loading for the
// simulation: playfield geometry, worm layout and loop timing.
package config

import (
	"fmt"
	"time"

	"github.com/gridworm/gridworm/internal/core"
)

// Config contains all configuration for a simulation session.
// Every value is fixed at session start.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Cell      CellConfig      `yaml:"cell"`
	Worm      WormConfig      `yaml:"worm"`
	Timing    TimingConfig    `yaml:"timing"`
}

// PlayfieldConfig defines the toroidal field dimensions in pixels.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CellConfig defines segment geometry. Spacing is cosmetic: movement is
// quantized to size + spacing.
type CellConfig struct {
	Size    int `yaml:"size"`
	Spacing int `yaml:"spacing"`
}

// WormConfig defines the body layout at session start.
type WormConfig struct {
	Segments         int    `yaml:"segments"`
	InitialDirection string `yaml:"initial_direction"`
	StartX           int    `yaml:"start_x"`
	StartY           int    `yaml:"start_y"`
}

// TimingConfig defines the two loop cadences: simulation ticks and
// repaint frames. They are deliberately independent.
type TimingConfig struct {
	TickMS    int `yaml:"tick_ms"`
	FrameRate int `yaml:"frame_rate"`
}

// Stride returns the distance between adjacent cell origins.
func (c Config) Stride() int {
	return c.Cell.Size + c.Cell.Spacing
}

// TickInterval returns the simulation tick cadence as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// InitialDirection parses the configured direction name.
func (c Config) InitialDirection() (core.Direction, error) {
	return core.ParseDirection(c.Worm.InitialDirection)
}

// Validate checks that the configuration describes a runnable session.
func (c Config) Validate() error {
	if c.Cell.Size <= 0 {
		return fmt.Errorf("config: cell size %d must be positive", c.Cell.Size)
	}
	if c.Cell.Spacing < 0 {
		return fmt.Errorf("config: cell spacing %d must not be negative", c.Cell.Spacing)
	}
	if c.Playfield.Width < c.Stride() || c.Playfield.Height < c.Stride() {
		return fmt.Errorf("config: playfield %dx%d smaller than one %d-pixel stride",
			c.Playfield.Width, c.Playfield.Height, c.Stride())
	}
	if c.Worm.Segments <= 0 {
		return fmt.Errorf("config: segments %d must be positive", c.Worm.Segments)
	}
	if _, err := c.InitialDirection(); err != nil {
		return fmt.Errorf("config: initial_direction: %w", err)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms %d must be positive", c.Timing.TickMS)
	}
	if c.Timing.FrameRate <= 0 {
		return fmt.Errorf("config: frame_rate %d must be positive", c.Timing.FrameRate)
	}
	return nil
}
