package engine

import "github.com/gridworm/gridworm/internal/core"

// Diff reports which cells entered and left occupancy between two ticks.
// It exists purely so renderers can repaint incrementally; simulation
// correctness never depends on it. No ordering is guaranteed.
type Diff struct {
	Added   []core.Cell
	Removed []core.Cell
}

// Empty reports whether the diff carries no changes.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Compute compares two bodies as sets of canonical cell keys. Removed
// holds cells occupied before but not after; Added holds cells occupied
// after but not before. Repeated cells in degenerate short bodies
// collapse into the set.
func Compute(prev, next []core.Cell) Diff {
	prevSet := toSet(prev)
	nextSet := toSet(next)

	var d Diff
	for key, c := range prevSet {
		if _, ok := nextSet[key]; !ok {
			d.Removed = append(d.Removed, c)
		}
	}
	for key, c := range nextSet {
		if _, ok := prevSet[key]; !ok {
			d.Added = append(d.Added, c)
		}
	}
	return d
}

func toSet(body []core.Cell) map[string]core.Cell {
	set := make(map[string]core.Cell, len(body))
	for _, c := range body {
		set[c.Key()] = c
	}
	return set
}
