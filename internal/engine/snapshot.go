package engine

import "github.com/gridworm/gridworm/internal/core"

// Snapshot captures the complete simulation state for determinism testing
// and debugging.
type Snapshot struct {
	State    State
	Playing  bool
	Segments int
	Head     core.Cell
	Body     []core.Cell
	Turns    []Turn
}

// Snapshot returns the current simulation snapshot.
func (e *Engine) Snapshot() Snapshot {
	var head core.Cell
	if h, ok := e.Head(); ok {
		head = h
	}

	return Snapshot{
		State:    e.state,
		Playing:  e.playing,
		Segments: e.segments,
		Head:     head,
		Body:     e.Body(),
		Turns:    e.queue.Turns(),
	}
}
