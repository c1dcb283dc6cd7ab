package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents; the platform decides which keys produce them.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, K, Up arrow
	ActionRight           // D, L, Right arrow
	ActionDown            // S, J, Down arrow
	ActionLeft            // A, H, Left arrow
	ActionRestart         // R - start a new game
	ActionContinue        // C - keep playing after reaching 2048
	ActionAnalysis        // Tab - toggle the board analysis panel
	ActionScores          // Ctrl+O - open the scoreboard
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRestart:
		return "Restart"
	case ActionContinue:
		return "Continue"
	case ActionAnalysis:
		return "Analysis"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four slide directions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionLeft
}

// InputFrame holds the actions triggered since the last step.
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
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
