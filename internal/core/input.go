package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter, Space - start a round from the title screen
	ActionRestart        // R key - play again after a round ends
	ActionCopy           // C key - copy the round summary
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionCopy:
		return "Copy"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Tap is a click or touch at a terminal cell.
type Tap struct {
	Col, Row int
}

// InputFrame represents the input collected between two frames.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Taps in the order they arrived.
	Taps []Tap

	// Now is the frame timestamp. Games advance their clocks to it.
	Now time.Time
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

// AddTap queues a tap for this frame.
func (f *InputFrame) AddTap(col, row int) {
	f.Taps = append(f.Taps, Tap{Col: col, Row: row})
}

// Clear resets all actions and taps for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Taps = f.Taps[:0]
	f.Now = time.Time{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Taps = append([]Tap(nil), f.Taps...)
	clone.Now = f.Now
	return clone
}
