package engine

import (
	"testing"

	"github.com/gridworm/gridworm/internal/core"
	"github.com/gridworm/gridworm/internal/grid"
)

// stride is 10 throughout: 8px cells with 2px spacing on a 500x500 field.
func testGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(500, 500, 8, 2)
	if err != nil {
		t.Fatalf("grid.New returned error: %v", err)
	}
	return g
}

func bodiesEqual(a, b []core.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInitialBodySynthesis(t *testing.T) {
	e := New(testGrid(t), Options{Segments: 5, InitialDir: core.DirRight, Start: core.C(100, 100)})
	e.Start()

	if e.State() != StateUninitialized {
		t.Fatalf("state before first tick = %v, expected uninitialized", e.State())
	}

	d := e.Tick()

	if e.State() != StateSteady {
		t.Errorf("state after first tick = %v, expected steady", e.State())
	}

	body := e.Body()
	if len(body) != 5 {
		t.Fatalf("body length = %d, expected 5", len(body))
	}
	if body[0] != core.C(100, 100) {
		t.Errorf("head = %v, expected (100,100)", body[0])
	}
	// Each segment trails one step left of its predecessor
	g := testGrid(t)
	for i := 1; i < len(body); i++ {
		want := g.Step(body[i-1], core.DirLeft)
		if body[i] != want {
			t.Errorf("segment %d = %v, expected %v", i, body[i], want)
		}
	}

	// The first tick reports the whole body as added
	if len(d.Added) != 5 || len(d.Removed) != 0 {
		t.Errorf("first diff = %+v, expected 5 added and none removed", d)
	}
}

func TestTurnAppliesAtIssuedCell(t *testing.T) {
	e := New(testGrid(t), Options{Segments: 3, InitialDir: core.DirRight, Start: core.C(90, 100)})
	e.Start()

	e.Tick() // synthesize: head (90,100)
	e.Tick() // head advances to (100,100)

	head, ok := e.Head()
	if !ok || head != core.C(100, 100) {
		t.Fatalf("head = %v, expected (100,100)", head)
	}

	if !e.Turn(core.DirUp) {
		t.Fatal("Turn(up) was not recorded")
	}
	e.Tick()

	want := []core.Cell{core.C(100, 110), core.C(100, 100), core.C(90, 100)}
	if got := e.Body(); !bodiesEqual(got, want) {
		t.Errorf("body = %v, expected %v", got, want)
	}
}

func TestStraightRunStaysColinear(t *testing.T) {
	e := New(testGrid(t), Options{Segments: 3, InitialDir: core.DirRight, Start: core.C(100, 100)})
	e.Start()
	e.Tick() // synthesize

	for i := 0; i < 5; i++ {
		e.Tick()
	}

	want := []core.Cell{core.C(150, 100), core.C(140, 100), core.C(130, 100)}
	if got := e.Body(); !bodiesEqual(got, want) {
		t.Errorf("body after 5 ticks = %v, expected %v", got, want)
	}
}

func TestWrapAtRightEdge(t *testing.T) {
	e := New(testGrid(t), Options{Segments: 3, InitialDir: core.DirRight, Start: core.C(490, 200)})
	e.Start()
	e.Tick() // synthesize: head at x = width - stride

	e.Tick()
	head, _ := e.Head()
	if head != core.C(0, 200) {
		t.Errorf("head = %v, expected wrap to (0,200)", head)
	}
}

func TestStopFreezesSimulation(t *testing.T) {
	e := New(testGrid(t), Options{Segments: 3, InitialDir: core.DirRight, Start: core.C(100, 100)})
	e.Start()
	e.Tick()
	e.Tick()

	before := e.Body()
	e.Stop()

	for i := 0; i < 10; i++ {
		if d := e.Tick(); !d.Empty() {
			t.Fatalf("tick %d after stop produced diff %+v", i, d)
		}
	}
	if got := e.Body(); !bodiesEqual(got, before) {
		t.Errorf("body changed after stop: %v, expected %v", got, before)
	}
}

func TestResumeDoesNotReExtend(t *testing.T) {
	e := New(testGrid(t), Options{Segments: 3, InitialDir: core.DirRight, Start: core.C(100, 100)})
	e.Start()
	e.Tick()
	e.Tick()

	e.Stop()
	e.Start()
	e.Tick()

	if e.State() != StateSteady {
		t.Errorf("state after resume = %v, expected steady", e.State())
	}
	head, _ := e.Head()
	if head != core.C(120, 100) {
		t.Errorf("head = %v, expected (120,100) after resume tick", head)
	}
}

func TestTurnBeforeBodyIsDropped(t *testing.T) {
	e := New(testGrid(t), DefaultOptions())

	if e.Turn(core.DirUp) {
		t.Error("Turn before first tick was recorded, expected drop")
	}
	if n := len(e.Snapshot().Turns); n != 0 {
		t.Errorf("queue length = %d, expected 0", n)
	}
}

func TestTurnWhileStoppedIsQueued(t *testing.T) {
	e := New(testGrid(t), Options{Segments: 3, InitialDir: core.DirRight, Start: core.C(100, 100)})
	e.Start()
	e.Tick()
	e.Stop()

	if !e.Turn(core.DirUp) {
		t.Error("Turn while stopped was dropped, expected queue")
	}
}

func TestOldestTurnSurvivesPruning(t *testing.T) {
	e := New(testGrid(t), Options{Segments: 3, InitialDir: core.DirRight, Start: core.C(100, 100)})
	e.Start()
	e.Tick()

	dirs := []core.Direction{core.DirUp, core.DirLeft, core.DirDown, core.DirRight}
	for i := 0; i < 40; i++ {
		if i%7 == 0 {
			e.Turn(dirs[(i/7)%len(dirs)])
		}
		e.Tick()
	}

	turns := e.Snapshot().Turns
	if len(turns) == 0 {
		t.Fatal("queue is empty, expected the oldest turn to survive")
	}
	want := Turn{Dir: core.DirRight, At: core.C(100, 100)}
	if turns[0] != want {
		t.Errorf("turns[0] = %v, expected initial %v", turns[0], want)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		e := New(testGrid(t), Options{Segments: 4, InitialDir: core.DirRight, Start: core.C(200, 200)})
		e.Start()
		for i := 0; i < 60; i++ {
			switch i {
			case 10:
				e.Turn(core.DirUp)
			case 25:
				e.Turn(core.DirLeft)
			case 40:
				e.Turn(core.DirDown)
			}
			e.Tick()
		}
		return e.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1.Head != s2.Head {
		t.Errorf("head mismatch: %v vs %v", s1.Head, s2.Head)
	}
	if !bodiesEqual(s1.Body, s2.Body) {
		t.Errorf("body mismatch: %v vs %v", s1.Body, s2.Body)
	}
	if len(s1.Turns) != len(s2.Turns) {
		t.Errorf("queue length mismatch: %d vs %d", len(s1.Turns), len(s2.Turns))
	}
}
