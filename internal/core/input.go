package core

// Action represents a semantic game action, abstracted from physical key
// presses so the platform and games never deal in raw key names.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move targeting cursor up
	ActionDown           // S, Down arrow - move targeting cursor down
	ActionLeft           // A, Left arrow - move targeting cursor left
	ActionRight          // D, Right arrow - move targeting cursor right
	ActionFire           // Space, Enter - fire at the cursor cell
	ActionReroll         // R during setup - re-place both fleets
	ActionConfirm        // Enter - start the match from setup
	ActionRestart        // N after game over - new game
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionReroll:
		return "Reroll"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one tick.
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

// Has reports whether the action was triggered this frame.
func (f *InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes all triggered actions.
func (f *InputFrame) Clear() {
	for a := range f.Actions {
		delete(f.Actions, a)
	}
}
