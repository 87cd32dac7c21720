package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// EditMode selects which tool pointer input drives.
type EditMode int

const (
	ModePan EditMode = iota
	ModeBuild
	ModeErase
	ModeSwitch
)

// String returns the HUD label for the mode.
func (m EditMode) String() string {
	switch m {
	case ModePan:
		return "PAN"
	case ModeBuild:
		return "BUILD"
	case ModeErase:
		return "ERASE"
	case ModeSwitch:
		return "SWITCH"
	default:
		return "?"
	}
}

// KeyMap defines the key bindings for the simulator.
type KeyMap struct {
	PanMode    key.Binding
	BuildMode  key.Binding
	EraseMode  key.Binding
	SwitchMode key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PanMode: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "pan"),
		),
		BuildMode: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "build"),
		),
		EraseMode: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "erase"),
		),
		SwitchMode: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "switch"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "pan up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "pan down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "pan right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.BuildMode, k.EraseMode, k.SwitchMode, k.Pause, k.Help, k.Quit}
}

// FullHelp returns all bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PanMode, k.BuildMode, k.EraseMode, k.SwitchMode},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Reset, k.Help, k.Quit},
	}
}
