package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone      Action = iota
	ActionTiltUp           // Up arrow, k, w
	ActionTiltDown         // Down arrow, j, s
	ActionTiltLeft         // Left arrow, h, a
	ActionTiltRight        // Right arrow, l, d
	ActionLevel            // '.' - clear tilt on both axes
	ActionSweep            // 't' - toggle autopilot sweep
	ActionPause            // Space, p
	ActionReseed           // r - clear and reseed the grid
	ActionQuit             // q, esc, ctrl+c
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTiltUp:
		return "TiltUp"
	case ActionTiltDown:
		return "TiltDown"
	case ActionTiltLeft:
		return "TiltLeft"
	case ActionTiltRight:
		return "TiltRight"
	case ActionLevel:
		return "Level"
	case ActionSweep:
		return "Sweep"
	case ActionPause:
		return "Pause"
	case ActionReseed:
		return "Reseed"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
type InputFrame struct {
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
