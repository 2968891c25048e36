package engine

import (
	"testing"

	"github.com/gridworm/gridworm/internal/core"
)

func cellSet(cells []core.Cell) map[string]bool {
	set := make(map[string]bool, len(cells))
	for _, c := range cells {
		set[c.Key()] = true
	}
	return set
}

func TestComputeIdenticalBodies(t *testing.T) {
	body := []core.Cell{core.C(100, 100), core.C(90, 100), core.C(80, 100)}

	d := Compute(body, body)
	if !d.Empty() {
		t.Errorf("diff of identical bodies = %+v, expected empty", d)
	}
}

func TestComputeAddedRemoved(t *testing.T) {
	prev := []core.Cell{core.C(100, 100), core.C(90, 100), core.C(80, 100)}
	next := []core.Cell{core.C(110, 100), core.C(100, 100), core.C(90, 100)}

	d := Compute(prev, next)

	added := cellSet(d.Added)
	removed := cellSet(d.Removed)
	if len(added) != 1 || !added["110,100"] {
		t.Errorf("Added = %v, expected only (110,100)", d.Added)
	}
	if len(removed) != 1 || !removed["80,100"] {
		t.Errorf("Removed = %v, expected only (80,100)", d.Removed)
	}
}

func TestComputeCollapsesRepeatedCells(t *testing.T) {
	// Degenerate bodies may occupy a cell twice; sets collapse them
	prev := []core.Cell{core.C(10, 10), core.C(10, 10)}
	next := []core.Cell{core.C(20, 10), core.C(10, 10)}

	d := Compute(prev, next)
	if len(d.Added) != 1 || len(d.Removed) != 0 {
		t.Errorf("diff = %+v, expected one added cell and nothing removed", d)
	}
}

func TestComputeEmptyPrev(t *testing.T) {
	next := []core.Cell{core.C(10, 10), core.C(0, 10)}

	d := Compute(nil, next)
	if len(d.Added) != 2 || len(d.Removed) != 0 {
		t.Errorf("diff = %+v, expected both cells added", d)
	}
}
