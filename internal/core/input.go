package core

// Action represents a semantic simulation action, abstracted from physical
// key presses and mouse buttons. The platform maps raw input to actions;
// the simulation consumes actions without knowing the input source.
type Action int

const (
	ActionNone         Action = iota
	ActionPaint               // Pointer held in build mode - extend the brush trail
	ActionBulldoze            // Pointer pressed in erase mode - clear the pointed cell
	ActionToggleSwitch        // Pointer pressed in switch mode - cycle the active connection
	ActionPause               // P, Escape - pause/unpause the simulation
	ActionReset               // R - rebuild the scenario from scratch
	ActionQuit                // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPaint:
		return "Paint"
	case ActionBulldoze:
		return "Bulldoze"
	case ActionToggleSwitch:
		return "ToggleSwitch"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the world-plane position of the pointer for one frame.
// The platform resolves the screen-space cursor against the grid plane
// and reports a continuous world coordinate; Valid is false when the
// cursor is outside the grid viewport.
type Pointer struct {
	X, Z  float64
	Valid bool
}

// InputFrame represents the input state for a single simulation tick:
// the set of actions triggered this frame plus the pointer sample.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
