package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // Space, P - pause/unpause
	ActionRestart        // R - new session after clearing
	ActionScores         // Tab - show the scoreboard
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two ticks.
// Pops and taps keep their arrival order.
type InputFrame struct {
	Actions map[Action]bool
	PopIDs  []int   // Bubble ids named directly (digit keys)
	Taps    []Point // Screen cells clicked
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
	return f.Actions[a]
}

// Pop queues a pop of bubble id.
func (f *InputFrame) Pop(id int) {
	f.PopIDs = append(f.PopIDs, id)
}

// Tap queues a click at screen cell (x, y).
func (f *InputFrame) Tap(x, y int) {
	f.Taps = append(f.Taps, Point{X: x, Y: y})
}

// Empty reports whether nothing was recorded.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.PopIDs) == 0 && len(f.Taps) == 0
}

// Clear resets the frame for the next tick, keeping allocations.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.PopIDs = f.PopIDs[:0]
	f.Taps = f.Taps[:0]
}
