package core

// Action is a semantic input event, abstracted from physical key presses.
// The platform maps keys to actions; each screen interprets the actions it
// cares about and ignores the rest.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionHome      // jump to first menu item
	ActionEnd       // jump to last menu item
	ActionNextField // Tab
	ActionPrevField // Shift+Tab
	ActionSelect    // Enter
	ActionToggle    // Space
	ActionPause     // Esc
	ActionPlay      // p - starts a game from the menu, pauses during play
	ActionRestart   // r
	ActionToMenu    // m
	ActionQuit      // q - quit from menu, pause, and game-over screens
	ActionTerminate // Ctrl+C - immediate exit from any screen
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
	case ActionHome:
		return "Home"
	case ActionEnd:
		return "End"
	case ActionNextField:
		return "NextField"
	case ActionPrevField:
		return "PrevField"
	case ActionSelect:
		return "Select"
	case ActionToggle:
		return "Toggle"
	case ActionPause:
		return "Pause"
	case ActionPlay:
		return "Play"
	case ActionRestart:
		return "Restart"
	case ActionToMenu:
		return "ToMenu"
	case ActionQuit:
		return "Quit"
	case ActionTerminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}

// DirectionFor maps a directional action to a grid direction.
// Returns ok=false for non-directional actions.
func DirectionFor(a Action) (Direction, bool) {
	switch a {
	case ActionUp:
		return North, true
	case ActionDown:
		return South, true
	case ActionLeft:
		return West, true
	case ActionRight:
		return East, true
	default:
		return North, false
	}
}
