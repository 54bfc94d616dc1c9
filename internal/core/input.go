package core

// Action represents a semantic input, abstracted from physical key presses.
// The game resolves configured key names to actions so bindings stay
// independent of the frontend that produced the key.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // configured left key
	ActionRight          // configured right key
	ActionUp             // configured up key, also menu navigation
	ActionDown           // configured down key, also menu navigation
	ActionPause          // configured pause key
	ActionConfirm        // Enter - activate menu item, commit entry
	ActionBack           // Escape - leave entry, menu or game
	ActionErase          // Backspace - edit text or number entry
	ActionQuit           // Ctrl+C - leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionErase:
		return "Erase"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether a is one of the four steering actions.
func (a Action) IsDirection() bool {
	return a >= ActionLeft && a <= ActionDown
}

// Delta returns the movement delta of a steering action, or the zero Point.
func (a Action) Delta() Point {
	switch a {
	case ActionLeft:
		return DirLeft
	case ActionRight:
		return DirRight
	case ActionUp:
		return DirUp
	case ActionDown:
		return DirDown
	}
	return Point{}
}
