package gesture

import (
	"image"
	"testing"
)

var (
	imageBox     = image.Rect(0, 0, 500, 750)
	containerBox = image.Rect(0, 0, 520, 770)
)

func TestTracker_BeginOutsideImageRefused(t *testing.T) {
	tr := NewTracker(0)
	if tr.Begin(image.Pt(510, 10), imageBox, containerBox) {
		t.Fatalf("press outside the image box must not start a gesture")
	}
	if tr.Active() {
		t.Fatalf("tracker should stay idle")
	}
}

func TestTracker_NormalizationIsDirectionIndependent(t *testing.T) {
	corners := []struct {
		start, end image.Point
	}{
		{image.Pt(100, 100), image.Pt(200, 200)}, // down-right
		{image.Pt(200, 200), image.Pt(100, 100)}, // up-left
		{image.Pt(200, 100), image.Pt(100, 200)}, // down-left
		{image.Pt(100, 200), image.Pt(200, 100)}, // up-right
	}
	want := image.Rect(100, 100, 200, 200)
	for _, c := range corners {
		tr := NewTracker(0)
		if !tr.Begin(c.start, imageBox, containerBox) {
			t.Fatalf("begin failed at %v", c.start)
		}
		tr.Update(c.end)
		r, ok := tr.Finish(c.end)
		if !ok || r != want {
			t.Fatalf("drag %v->%v: expected %v ok, got %v ok=%v", c.start, c.end, want, r, ok)
		}
	}
}

func TestTracker_SubThresholdDiscarded(t *testing.T) {
	cases := []image.Point{
		{X: 105, Y: 200}, // 5px wide
		{X: 200, Y: 105}, // 5px tall
		{X: 101, Y: 101}, // plain click
	}
	for _, end := range cases {
		tr := NewTracker(10)
		tr.Begin(image.Pt(100, 100), imageBox, containerBox)
		if r, ok := tr.Finish(end); ok {
			t.Fatalf("expected discard for end %v, got %v", end, r)
		}
		if tr.Active() {
			t.Fatalf("tracker must return to idle after discard")
		}
	}
}

func TestTracker_ExactThresholdAccepted(t *testing.T) {
	tr := NewTracker(10)
	tr.Begin(image.Pt(100, 100), imageBox, containerBox)
	r, ok := tr.Finish(image.Pt(110, 110))
	if !ok || r.Dx() != 10 || r.Dy() != 10 {
		t.Fatalf("10px span should pass threshold, got %v ok=%v", r, ok)
	}
}

func TestTracker_MovesClampedToContainer(t *testing.T) {
	tr := NewTracker(0)
	tr.Begin(image.Pt(400, 700), imageBox, containerBox)
	tr.Update(image.Pt(9999, 9999))
	live, ok := tr.Live()
	if !ok {
		t.Fatalf("expected live rectangle while active")
	}
	if live.Max.X != containerBox.Max.X || live.Max.Y != containerBox.Max.Y {
		t.Fatalf("expected clamp to container corner, got %v", live)
	}
	r, ok := tr.Finish(image.Pt(-50, -50))
	if !ok {
		t.Fatalf("expected finished rectangle, clamped at origin")
	}
	if r.Min.X != 0 || r.Min.Y != 0 {
		t.Fatalf("expected clamp to container origin, got %v", r)
	}
}

func TestTracker_CancelDiscards(t *testing.T) {
	tr := NewTracker(0)
	tr.Begin(image.Pt(100, 100), imageBox, containerBox)
	tr.Cancel()
	if tr.Active() {
		t.Fatalf("cancel should return to idle")
	}
	if _, ok := tr.Live(); ok {
		t.Fatalf("no live rectangle after cancel")
	}
	if _, ok := tr.Finish(image.Pt(300, 300)); ok {
		t.Fatalf("finish after cancel must not produce a rectangle")
	}
}

func TestTracker_BeginWhileActiveIgnored(t *testing.T) {
	tr := NewTracker(0)
	if !tr.Begin(image.Pt(10, 10), imageBox, containerBox) {
		t.Fatalf("first begin failed")
	}
	if tr.Begin(image.Pt(20, 20), imageBox, containerBox) {
		t.Fatalf("second begin while active must be ignored")
	}
}

func TestTracker_StateString(t *testing.T) {
	if StateIdle.String() != "idle" || StateActive.String() != "active" {
		t.Fatalf("unexpected state names")
	}
}
