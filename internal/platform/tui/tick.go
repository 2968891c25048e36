// Package tui provides the Bubble Tea integration for the simulation.
// It handles the terminal loop, key mapping and incremental cell painting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SimTickMsg advances the simulation by one tick. Gen identifies which
// start/stop cycle scheduled it so a stale in-flight tick is ignored after
// the session stops.
type SimTickMsg struct {
	Gen  int
	Time time.Time
}

// FrameMsg triggers a repaint pass. Independent of the simulation cadence:
// frames may fire many times between ticks and simply re-apply the latest
// diff once.
type FrameMsg struct {
	Gen  int
	Time time.Time
}

// simTickCmd schedules the next simulation tick.
func simTickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SimTickMsg{Gen: gen, Time: t}
	})
}

// frameCmd schedules the next repaint frame at the given rate.
func frameCmd(gen int, frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}
