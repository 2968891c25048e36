package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridworm/gridworm/internal/config"
	"github.com/gridworm/gridworm/internal/core"
	"github.com/gridworm/gridworm/internal/engine"
	"github.com/gridworm/gridworm/internal/grid"
	"github.com/gridworm/gridworm/internal/registry"
)

const hudHeight = 2 // Title line plus separator

// Model is the Bubble Tea model hosting one simulation. It owns the two
// loops the engine itself deliberately does not: a fixed-interval
// simulation tick and a repaint frame cadence, each a separate tea.Tick
// chain cancelled by bumping the generation counter.
type Model struct {
	title  string
	cfg    config.Config
	grid   *grid.Grid
	eng    *engine.Engine
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	// gen identifies the current start/stop cycle; ticks and frames
	// scheduled before a stop carry the old value and are dropped.
	gen     int
	pending engine.Diff
	dirty   bool

	offsetX  int
	offsetY  int
	tooSmall bool
	quitting bool
}

// NewModel creates a host model for the given variant sized to the
// terminal. The variant's config must already be validated.
func NewModel(v registry.Variant, termW, termH int) (*Model, error) {
	cfg := v.Config
	g, err := grid.New(cfg.Playfield.Width, cfg.Playfield.Height, cfg.Cell.Size, cfg.Cell.Spacing)
	if err != nil {
		return nil, err
	}
	dir, err := cfg.InitialDirection()
	if err != nil {
		return nil, err
	}

	eng := engine.New(g, engine.Options{
		Segments:   cfg.Worm.Segments,
		InitialDir: dir,
		Start:      core.C(cfg.Worm.StartX, cfg.Worm.StartY),
	})

	screenH := max(termH-1, 1) // bottom row is the help footer
	m := &Model{
		title:  v.Title,
		cfg:    cfg,
		grid:   g,
		eng:    eng,
		screen: core.NewScreen(termW, screenH),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.layout()
	m.repaintAll()
	return m, nil
}

// Init implements tea.Model. No loops run until the start command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case SimTickMsg:
		return m.handleSimTick(msg)
	case FrameMsg:
		return m.handleFrame(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stop()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.StartStop):
		if m.eng.Playing() {
			m.stop()
			m.repaintAll()
			return m, nil
		}
		return m, m.start()

	default:
		if d, ok := m.keys.direction(func(b key.Binding) bool { return key.Matches(msg, b) }); ok {
			// Dropped silently before the body exists; a missed
			// keypress must never crash the session.
			m.eng.Turn(d)
		}
		return m, nil
	}
}

// start begins both loops. Idempotent: called while playing it only
// reschedules nothing new because the engine flag is already set.
func (m *Model) start() tea.Cmd {
	if m.eng.Playing() {
		return nil
	}
	m.eng.Start()
	m.repaintAll()
	return tea.Batch(
		simTickCmd(m.gen, m.cfg.TickInterval()),
		frameCmd(m.gen, m.cfg.Timing.FrameRate),
	)
}

// stop halts the session and invalidates all in-flight timer messages.
func (m *Model) stop() {
	if !m.eng.Playing() {
		return
	}
	m.eng.Stop()
	m.gen++
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.layout()
	m.repaintAll()
	return m, nil
}

func (m *Model) handleSimTick(msg SimTickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.eng.Playing() {
		return m, nil
	}

	diff := m.eng.Tick()
	if !diff.Empty() {
		m.pending = diff
		m.dirty = true
	}
	return m, simTickCmd(m.gen, m.cfg.TickInterval())
}

func (m *Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.eng.Playing() {
		return m, nil
	}

	// Paint the latest diff once; further frames before the next tick
	// find nothing to do.
	if m.dirty && !m.tooSmall {
		m.applyDiff(m.pending)
		m.dirty = false
	}
	return m, frameCmd(m.gen, m.cfg.Timing.FrameRate)
}

// layout recomputes the playfield placement for the current screen size.
func (m *Model) layout() {
	cols, rows := m.grid.Cols(), m.grid.Rows()
	m.tooSmall = m.screen.Width() < cols || m.screen.Height() < rows+hudHeight
	m.offsetX = (m.screen.Width() - cols) / 2
	m.offsetY = hudHeight
}

// cellToChar maps a playfield cell to screen character coordinates.
// One character per stride; rows are flipped because the model's Y axis
// increases upward while screen rows grow downward.
func (m *Model) cellToChar(c core.Cell) (int, int) {
	stride := m.grid.Stride()
	col := m.offsetX + c.X/stride
	row := m.offsetY + (m.grid.Rows() - 1 - c.Y/stride)
	return col, row
}

// applyDiff paints only the cells that changed occupancy.
func (m *Model) applyDiff(d engine.Diff) {
	for _, c := range d.Removed {
		x, y := m.cellToChar(c)
		m.screen.SetCell(x, y, ' ', core.ColorDefault)
	}
	for _, c := range d.Added {
		x, y := m.cellToChar(c)
		m.screen.SetCell(x, y, '█', core.ColorGreen)
	}
}

// repaintAll redraws the whole screen: HUD, body and, when stopped, the
// start prompt. Used on start/stop transitions and resizes; steady-state
// painting goes through applyDiff.
func (m *Model) repaintAll() {
	m.screen.Clear()
	m.drawHUD()

	if m.tooSmall {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Window too small")
		return
	}

	m.applyDiff(engine.Diff{Added: m.eng.Body()})
	m.dirty = false

	if !m.eng.Playing() {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Press space to start")
	}
}

func (m *Model) drawHUD() {
	status := "stopped"
	if m.eng.Playing() {
		status = "running"
	}
	hud := fmt.Sprintf(" gridworm · %s [%dx%d px, stride %d, %d segments, %dms] %s",
		m.title,
		m.cfg.Playfield.Width, m.cfg.Playfield.Height,
		m.grid.Stride(), m.eng.Segments(), m.cfg.Timing.TickMS,
		status)
	m.screen.DrawText(0, 0, hud)
	for x := 0; x < m.screen.Width(); x++ {
		m.screen.SetCell(x, 1, '─', core.ColorGray)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program hosting the variant.
func Run(v registry.Variant, termW, termH int) error {
	model, err := NewModel(v, termW, termH)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
