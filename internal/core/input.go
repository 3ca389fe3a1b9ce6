package core

// Action represents a semantic game action, abstracted from physical key presses.
// Actions are edge-triggered: set for the single tick in which they happened.
type Action int

const (
	ActionNone    Action = iota
	ActionFire           // Space, mouse click - shoot towards the aim point
	ActionConfirm        // Enter - start / advance to next level
	ActionCancel         // Escape - leave the current screen
	ActionSelect         // Menu shortcut, see InputFrame.MenuItem
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// MenuItem identifies an entry of the main menu.
type MenuItem int

const (
	MenuNone MenuItem = iota
	MenuNewGame
	MenuContinue
	MenuQuit
)

func (m MenuItem) String() string {
	switch m {
	case MenuNewGame:
		return "New Game"
	case MenuContinue:
		return "Continue"
	case MenuQuit:
		return "Quit"
	default:
		return "None"
	}
}

// MoveIntent is the held direction state for one tick.
type MoveIntent struct {
	Up, Down, Left, Right bool
}

// Any reports whether any direction is held.
func (m MoveIntent) Any() bool {
	return m.Up || m.Down || m.Left || m.Right
}

// InputFrame represents the player's input during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	Move MoveIntent
	// Aim is the latest pointer position in world units.
	Aim Vec
	// MenuItem is the entry picked when ActionSelect is set.
	MenuItem MenuItem
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

// Select records a menu pick for this frame.
func (f *InputFrame) Select(item MenuItem) {
	f.Set(ActionSelect)
	f.MenuItem = item
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets the edge-triggered actions for the next frame.
// Move and Aim are level-triggered and survive.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.MenuItem = MenuNone
}
