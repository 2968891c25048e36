package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, 1},
		{DirRight, 1, 0},
		{DirDown, 0, -1},
		{DirLeft, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d,%d), expected (%d,%d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirRight: DirLeft,
		DirDown:  DirUp,
		DirLeft:  DirRight,
	}

	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
		// Opposite of opposite is identity
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v, expected %v", d, got, d)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q) returned error: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDirection(%q) = %v, expected %v", d.String(), got, d)
		}
	}

	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(\"sideways\") = nil error, expected failure")
	}
}
