package engine

import (
	"github.com/gridworm/gridworm/internal/core"
	"github.com/gridworm/gridworm/internal/grid"
)

// State is the movement engine lifecycle state.
type State int

const (
	// StateUninitialized means no body exists yet; the first tick after
	// play starts synthesizes it.
	StateUninitialized State = iota
	// StateExtending is the transient state while the initial body is
	// being laid out. It is never re-entered.
	StateExtending
	// StateSteady means the body is fully populated and every tick
	// recomputes all segments via turn queue lookups.
	StateSteady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateExtending:
		return "extending"
	case StateSteady:
		return "steady"
	default:
		return "unknown"
	}
}

// Options configures an engine at session start. All fields are fixed for
// the lifetime of the session.
type Options struct {
	Segments   int            // Body length; default 5
	InitialDir core.Direction // Direction of travel before any turn; default right
	Start      core.Cell      // Head cell at first tick; wrapped onto the grid
}

// DefaultOptions returns the stock session options.
func DefaultOptions() Options {
	return Options{
		Segments:   5,
		InitialDir: core.DirRight,
	}
}

// Engine owns the body and the turn queue and advances both one tick at a
// time. It is an explicit simulation context: nothing is shared between
// engines, so tests and hosts can run as many as they like side by side.
// All methods are synchronous and must be called from a single goroutine.
type Engine struct {
	grid       *grid.Grid
	segments   int
	initialDir core.Direction
	start      core.Cell

	playing bool
	state   State
	body    []core.Cell
	queue   TurnQueue
}

// New creates an engine over the given grid. Zero or negative Segments
// falls back to the default of 5; an invalid initial direction falls back
// to right.
func New(g *grid.Grid, opts Options) *Engine {
	if opts.Segments <= 0 {
		opts.Segments = DefaultOptions().Segments
	}
	if !opts.InitialDir.Valid() {
		opts.InitialDir = core.DirRight
	}
	return &Engine{
		grid:       g,
		segments:   opts.Segments,
		initialDir: opts.InitialDir,
		start:      g.Wrap(opts.Start),
		state:      StateUninitialized,
	}
}

// Start transitions the session to playing. Idempotent.
func (e *Engine) Start() {
	e.playing = true
}

// Stop transitions the session to not-playing. Idempotent. Ticks arriving
// after Stop mutate nothing, so cancelled-but-in-flight host timers are
// harmless.
func (e *Engine) Stop() {
	e.playing = false
}

// Playing reports whether the session is currently running.
func (e *Engine) Playing() bool {
	return e.playing
}

// State returns the engine lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Segments returns the configured body length.
func (e *Engine) Segments() int {
	return e.segments
}

// Body returns a copy of the current body, head first. Empty before the
// first tick.
func (e *Engine) Body() []core.Cell {
	out := make([]core.Cell, len(e.body))
	copy(out, e.body)
	return out
}

// Head returns the head cell, or false before the body exists.
func (e *Engine) Head() (core.Cell, bool) {
	if len(e.body) == 0 {
		return core.Cell{}, false
	}
	return e.body[0], true
}

// Turn enqueues a direction change anchored at the current head cell.
// Commands issued before the body exists are dropped at the boundary: a
// missed keypress has no safety implication and must never crash the
// simulation. Returns whether the command was recorded.
func (e *Engine) Turn(d core.Direction) bool {
	if !d.Valid() {
		return false
	}
	head, ok := e.Head()
	if !ok {
		return false
	}
	e.queue.Record(d, head)
	return true
}

// Tick advances the simulation by one step and returns the occupancy diff
// between the previous and next bodies. While the session is stopped the
// tick is a no-op returning an empty diff. The first tick after play
// starts synthesizes the initial body.
func (e *Engine) Tick() Diff {
	if !e.playing {
		return Diff{}
	}

	if e.state == StateUninitialized {
		e.extend()
		return Diff{Added: e.Body()}
	}

	prev := e.body
	next := make([]core.Cell, 0, len(prev))
	applied := make(map[int]bool, e.queue.Len())

	for _, seg := range prev {
		turn, idx := e.queue.Select(seg)
		next = append(next, e.grid.Step(seg, turn.Dir))
		applied[idx] = true
	}

	e.queue.Prune(applied)
	e.body = next
	return Compute(prev, next)
}

// extend lays out the initial body behind the head, each segment one step
// further opposite the initial direction, and seeds the queue with the
// initial direction anchored at the starting head cell. Runs exactly once.
func (e *Engine) extend() {
	e.state = StateExtending

	body := make([]core.Cell, e.segments)
	body[0] = e.start
	trail := e.initialDir.Opposite()
	for i := 1; i < e.segments; i++ {
		body[i] = e.grid.Step(body[i-1], trail)
	}

	e.body = body
	e.queue.Record(e.initialDir, e.start)
	e.state = StateSteady
}
