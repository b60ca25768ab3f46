package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// IsDirection reports whether a is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame collects the actions seen during one tick. The zero value is
// an empty frame.
type InputFrame struct {
	set  uint16
	last Action // latest direction; two arrows in one tick resolve to the later
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a for this tick.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.set |= 1 << a
	if a.IsDirection() {
		f.last = a
	}
}

// Has reports whether a was recorded this tick.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.set&(1<<a) != 0
}

// LastDirection returns the most recent direction, or ActionNone.
func (f InputFrame) LastDirection() Action {
	return f.last
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}
