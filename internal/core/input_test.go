package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionFire) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)

	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}
}

func TestInputFrameClick(t *testing.T) {
	f := NewInputFrame()

	if f.Clicked {
		t.Error("New frame should have no click")
	}

	f.SetClick(42.5, 87.0)

	if !f.Clicked {
		t.Error("SetClick should mark the frame as clicked")
	}
	if f.ClickX != 42.5 || f.ClickY != 87.0 {
		t.Errorf("Click = (%v, %v), expected (42.5, 87.0)", f.ClickX, f.ClickY)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.SetClick(10, 20)

	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear should remove all actions")
	}
	if f.Clicked || f.ClickX != 0 || f.ClickY != 0 {
		t.Error("Clear should reset the click")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// A zero-value frame must be safe to query and set.
	var f InputFrame

	if f.Has(ActionFire) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set on a zero frame should allocate the map")
	}
}
