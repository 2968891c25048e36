// Package engine implements the tick-driven worm movement simulation:
// the pending-turn queue, the segment advance rules and the occupancy
// diff hosts use for incremental repaints.
package engine

import "github.com/gridworm/gridworm/internal/core"

// Turn is a pending direction change anchored to the cell the head
// occupied when the command was issued.
type Turn struct {
	Dir core.Direction
	At  core.Cell
}

// PassedBy reports whether a segment has moved strictly beyond the turn's
// anchor cell along the turn's own axis of travel. The test is positional,
// not temporal: it is valid because segments move monotonically between
// wraps. A segment that crosses the playfield edge in the same tick a turn
// is issued near that edge can be misclassified for one tick; that quirk
// is inherent to the coordinate-only test and is left as-is.
func (t Turn) PassedBy(seg core.Cell) bool {
	switch t.Dir {
	case core.DirUp:
		return seg.Y > t.At.Y
	case core.DirRight:
		return seg.X > t.At.X
	case core.DirDown:
		return seg.Y < t.At.Y
	case core.DirLeft:
		return seg.X < t.At.X
	default:
		return false
	}
}

// TurnQueue is the insertion-ordered list of pending direction changes,
// oldest first. After the first tick it is never empty: element 0 survives
// every prune and serves as the fallback direction once every segment has
// consumed all newer turns.
type TurnQueue struct {
	turns []Turn
}

// Record appends a turn unconditionally. Duplicate same-direction turns
// are harmless for movement and are not deduplicated.
func (q *TurnQueue) Record(d core.Direction, at core.Cell) {
	q.turns = append(q.turns, Turn{Dir: d, At: at})
}

// Len returns the number of queued turns.
func (q *TurnQueue) Len() int {
	return len(q.turns)
}

// Turns returns a copy of the queued turns, oldest first.
func (q *TurnQueue) Turns() []Turn {
	out := make([]Turn, len(q.turns))
	copy(out, q.turns)
	return out
}

// Select returns the oldest turn the segment has not yet passed, along
// with its queue index. If the segment has passed every queued turn the
// oldest turn is the fallback, so selection never comes up empty.
func (q *TurnQueue) Select(seg core.Cell) (Turn, int) {
	for i, t := range q.turns {
		if !t.PassedBy(seg) {
			return t, i
		}
	}
	return q.turns[0], 0
}

// Prune removes every turn whose index is absent from applied, keeping
// index 0 unconditionally. Applied holds the indices Select returned
// during the tick, which bounds queue growth to the direction changes
// still relevant to some segment.
func (q *TurnQueue) Prune(applied map[int]bool) {
	if len(q.turns) <= 1 {
		return
	}
	kept := q.turns[:1]
	for i := 1; i < len(q.turns); i++ {
		if applied[i] {
			kept = append(kept, q.turns[i])
		}
	}
	q.turns = kept
}
