package core

import "testing"

func TestCellKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
	}{
		{"origin", C(0, 0)},
		{"positive", C(100, 250)},
		{"negative x", C(-10, 40)},
		{"negative y", C(30, -120)},
		{"both negative", C(-1, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseKey(tc.cell.Key())
			if err != nil {
				t.Fatalf("ParseKey(%q) returned error: %v", tc.cell.Key(), err)
			}
			if got != tc.cell {
				t.Errorf("round trip = %v, expected %v", got, tc.cell)
			}
		})
	}
}

func TestParseKeyRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"no comma", "100"},
		{"missing y", "100,"},
		{"missing x", ",100"},
		{"non-numeric", "ten,twenty"},
		{"trailing junk", "10,20,30"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseKey(tc.key); err == nil {
				t.Errorf("ParseKey(%q) = nil error, expected failure", tc.key)
			}
		})
	}
}

func TestCellAdd(t *testing.T) {
	got := C(10, 20).Add(-10, 5)
	if got != C(0, 25) {
		t.Errorf("Add = %v, expected (0,25)", got)
	}
}
