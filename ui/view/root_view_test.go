package view

import "testing"

func TestPathEntryFocusTracking(t *testing.T) {
	rv := NewRootView(nil, nil)
	if rv.PathEntryFocused() {
		t.Fatalf("fresh view must not report entry focus")
	}
	rv.setPathFocus(true)
	if !rv.PathEntryFocused() {
		t.Fatalf("focus-in not tracked")
	}
	rv.setPathFocus(false)
	if rv.PathEntryFocused() {
		t.Fatalf("focus-out not tracked")
	}
}

func TestRootViewNilReceiverIsSafe(t *testing.T) {
	var rv *RootView
	rv.SetStatus("x")
	rv.Warn("x")
	rv.ShowFrame(nil)
	if rv.PathText() != "" || rv.PathEntryFocused() {
		t.Fatalf("nil view must report empty state")
	}
}
