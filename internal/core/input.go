package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A, H
	ActionRight            // Right arrow, D, L
	ActionRotate           // Up arrow, W, X
	ActionRotateCCW        // Z
	ActionSoftDrop         // Down arrow, S
	ActionHardDrop         // Space
	ActionPause            // P
	ActionRestart          // R
	ActionConfirm          // Enter
	ActionBack             // B, Esc
	ActionQuit             // Q, Ctrl+C
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionRotate:    "Rotate",
	ActionRotateCCW: "RotateCCW",
	ActionSoftDrop:  "SoftDrop",
	ActionHardDrop:  "HardDrop",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions triggered during one simulation step.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear forgets all actions so the frame can be reused.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
