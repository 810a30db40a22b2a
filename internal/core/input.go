package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - steer up
	ActionDown           // S, J, Down arrow - steer down
	ActionLeft           // A, H, Left arrow - steer left
	ActionRight          // D, L, Right arrow - steer right
	ActionPause          // Space, P - pause/resume
	ActionStart          // Enter - start a new game
	ActionRestart        // R - restart from any state
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
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a single script character to an action.
// Used by headless runs: U/D/L/R steer, P pauses, S starts, X restarts.
// Unknown characters map to ActionNone.
func ParseAction(c rune) Action {
	switch c {
	case 'U', 'u':
		return ActionUp
	case 'D', 'd':
		return ActionDown
	case 'L', 'l':
		return ActionLeft
	case 'R', 'r':
		return ActionRight
	case 'P', 'p':
		return ActionPause
	case 'S', 's':
		return ActionStart
	case 'X', 'x':
		return ActionRestart
	default:
		return ActionNone
	}
}
