// Package grid maps continuous pixel coordinates onto discrete,
// wrap-around playfield cells. It owns the toroidal constrain rule.
package grid

import (
	"fmt"

	"github.com/gridworm/gridworm/internal/core"
)

// Grid describes a toroidal playfield in pixel units.
// Cells are CellSize pixels wide with CellSpacing cosmetic pixels between
// them; movement is quantized to Stride = CellSize + CellSpacing.
type Grid struct {
	Width       int // Playfield width in pixels
	Height      int // Playfield height in pixels
	CellSize    int // Segment edge length in pixels
	CellSpacing int // Gap between adjacent cells in pixels
}

// New creates a grid, validating that the dimensions can hold at least one
// cell per axis.
func New(width, height, cellSize, cellSpacing int) (*Grid, error) {
	g := &Grid{
		Width:       width,
		Height:      height,
		CellSize:    cellSize,
		CellSpacing: cellSpacing,
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("grid: cell size %d must be positive", cellSize)
	}
	if cellSpacing < 0 {
		return nil, fmt.Errorf("grid: cell spacing %d must not be negative", cellSpacing)
	}
	stride := g.Stride()
	if width < stride || height < stride {
		return nil, fmt.Errorf("grid: playfield %dx%d smaller than one %d-pixel stride", width, height, stride)
	}
	return g, nil
}

// Stride returns the distance in pixels between adjacent cell origins.
func (g *Grid) Stride() int {
	return g.CellSize + g.CellSpacing
}

// Cols returns how many whole cells fit horizontally.
func (g *Grid) Cols() int {
	return g.Width / g.Stride()
}

// Rows returns how many whole cells fit vertically.
func (g *Grid) Rows() int {
	return g.Height / g.Stride()
}

// Wrap constrains a raw, possibly out-of-bounds cell back onto the
// playfield. Each axis is checked independently, so a diagonal overshoot
// only wraps the axis that actually overshot. Always returns a valid cell.
func (g *Grid) Wrap(c core.Cell) core.Cell {
	stride := g.Stride()

	switch {
	case c.X < 0:
		c.X = g.Width - stride
	case c.X > g.Width-stride:
		c.X = 0
	}

	switch {
	case c.Y < 0:
		c.Y = g.Height - stride
	case c.Y > g.Height-stride:
		c.Y = 0
	}

	return c
}

// Step advances a cell one stride in the given direction and wraps the
// result. Pure, no side effects.
func (g *Grid) Step(c core.Cell, d core.Direction) core.Cell {
	dx, dy := d.Delta()
	stride := g.Stride()
	return g.Wrap(c.Add(dx*stride, dy*stride))
}
