// Package core provides fundamental types for the simulation: grid cells,
// directions and the screen buffer hosts render into. It contains no
// external dependencies (especially no Bubble Tea) to keep engine logic
// pure and testable.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell identifies a grid-aligned rectangle by its top-left pixel.
// X increases to the right, Y increases upward.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Key returns the canonical string form "x,y" used for set membership.
// It round-trips losslessly through ParseKey.
func (c Cell) Key() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// String returns a human-readable representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// ParseKey converts a canonical "x,y" key back into a Cell.
// Returns an error for anything that did not come out of Key.
func ParseKey(key string) (Cell, error) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return Cell{}, fmt.Errorf("core: malformed cell key %q", key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Cell{}, fmt.Errorf("core: malformed cell key %q: %w", key, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Cell{}, fmt.Errorf("core: malformed cell key %q: %w", key, err)
	}
	return Cell{X: x, Y: y}, nil
}
