package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space - flap (Flappy), pick the cursor cell (Tic-Tac-Toe)
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionSelectCell        // 1-9 - choose a board cell, index in Input.Cell
	ActionPause             // P - pause/unpause where the game supports it
	ActionRestart           // R - start a new round
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "MoveUp"
	case ActionDown:
		return "MoveDown"
	case ActionLeft:
		return "MoveLeft"
	case ActionRight:
		return "MoveRight"
	case ActionSelectCell:
		return "SelectCell"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one discrete input event. Cell is only meaningful for ActionSelectCell.
type Input struct {
	Action Action
	Cell   int
}

// Press builds an input event for a plain action.
func Press(a Action) Input {
	return Input{Action: a}
}

// SelectCell builds an input event choosing a board cell.
func SelectCell(index int) Input {
	return Input{Action: ActionSelectCell, Cell: index}
}

// InputFrame holds the input events queued for a single simulation tick,
// in the order they arrived.
type InputFrame struct {
	events []Input
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
// Setting the same plain action twice records it once.
func (f *InputFrame) Set(a Action) {
	if f.Has(a) {
		return
	}
	f.events = append(f.events, Press(a))
}

// Push appends an event, keeping duplicates (direction changes, cell picks).
func (f *InputFrame) Push(in Input) {
	f.events = append(f.events, in)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, in := range f.events {
		if in.Action == a {
			return true
		}
	}
	return false
}

// Events returns the queued events in arrival order.
func (f InputFrame) Events() []Input {
	return f.events
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.events)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{events: make([]Input, len(f.events))}
	copy(clone.events, f.events)
	return clone
}

// Without returns a copy of the frame with every event of the given actions removed.
// The session uses it to strip lifecycle actions before handing a frame to the rules.
func (f InputFrame) Without(actions ...Action) InputFrame {
	out := InputFrame{events: make([]Input, 0, len(f.events))}
	for _, in := range f.events {
		drop := false
		for _, a := range actions {
			if in.Action == a {
				drop = true
				break
			}
		}
		if !drop {
			out.events = append(out.events, in)
		}
	}
	return out
}
