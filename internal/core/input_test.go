package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)

	if len(f.Actions) != 2 {
		t.Fatalf("Expected 2 actions (ActionNone is dropped), got %d", len(f.Actions))
	}
	if f.Actions[0] != ActionUp || f.Actions[1] != ActionLeft {
		t.Errorf("Actions should keep arrival order, got %v", f.Actions)
	}
	if !f.Has(ActionLeft) || f.Has(ActionDown) {
		t.Error("Has() reports wrong membership")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)

	clone := f.Clone()
	f.Clear()

	if len(f.Actions) != 0 {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionRestart) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventMoved, EventAte}}
	if !r.Has(EventAte) {
		t.Error("Has(EventAte) should be true")
	}
	if r.Has(EventDied) {
		t.Error("Has(EventDied) should be false")
	}
	if EventDied.String() != "died" {
		t.Errorf("EventDied.String() = %q", EventDied.String())
	}
}
