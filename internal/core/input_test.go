package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true after Set")
	}

	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameLastDirection(t *testing.T) {
	var f InputFrame // zero value must be usable
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)

	if f.LastDirection() != ActionLeft {
		t.Errorf("LastDirection() = %v, expected Left", f.LastDirection())
	}

	f.Clear()
	if f.LastDirection() != ActionNone {
		t.Errorf("LastDirection() after Clear = %v, expected None", f.LastDirection())
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionRight: "Right",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestInputFrameIgnoresInvalidActions(t *testing.T) {
	var f InputFrame
	f.Set(ActionNone)
	f.Set(Action(99))
	if f.Has(ActionNone) || f.Has(Action(99)) {
		t.Error("invalid actions should not be recorded")
	}
	if f.LastDirection() != ActionNone {
		t.Error("invalid actions should not change the direction")
	}
}
