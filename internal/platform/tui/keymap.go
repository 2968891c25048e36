package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/gridworm/gridworm/internal/core"
)

// KeyMap holds the key bindings for the simulation host.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	StartStop key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the stock bindings: arrows/WASD/vim keys for
// turns, space to start and stop, q to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "turn up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "turn down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "turn right"),
		),
		StartStop: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "start/stop"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.StartStop, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.StartStop, k.Quit},
	}
}

// direction maps a matched turn binding to the model-space direction.
// The model's Y axis increases upward, so the "up" key maps to DirUp and
// the paint layer flips rows; the worm moves visually up either way.
func (k KeyMap) direction(matches func(key.Binding) bool) (core.Direction, bool) {
	switch {
	case matches(k.Up):
		return core.DirUp, true
	case matches(k.Down):
		return core.DirDown, true
	case matches(k.Left):
		return core.DirLeft, true
	case matches(k.Right):
		return core.DirRight, true
	default:
		return 0, false
	}
}
