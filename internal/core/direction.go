package core

import "fmt"

// Direction represents one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Delta returns the unit step (dx, dy) in grid units for the direction.
// The Y axis increases upward: Up is (0,1) and Down is (0,-1). Hosts that
// render with screen rows growing downward flip Y at the paint boundary;
// the sign convention here must not change or wrap collisions invert.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection converts a direction name ("up", "right", "down", "left")
// into a Direction. Used by config loading and the headless driver.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	default:
		return 0, fmt.Errorf("core: unknown direction %q", s)
	}
}
