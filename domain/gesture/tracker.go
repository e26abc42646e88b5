package gesture

import (
	"image"
)

// State enumerates the finite states of a pointer gesture.
type State int

const (
	StateIdle State = iota
	StateActive
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// DefaultMinSpan is the smallest display-pixel span accepted on either axis.
// Anything shorter is treated as an accidental click and discarded.
const DefaultMinSpan = 10

// Tracker converts a pointer-down/move/up sequence into a normalized display
// rectangle. It is a two-state machine: Idle until Begin succeeds, Active
// until Finish or Cancel. Updates run on the UI event loop; the tracker is
// not safe for concurrent use.
type Tracker struct {
	state     State
	start     image.Point
	current   image.Point
	container image.Rectangle
	minSpan   int
}

// NewTracker returns an idle tracker. minSpan <= 0 selects DefaultMinSpan.
func NewTracker(minSpan int) *Tracker {
	if minSpan <= 0 {
		minSpan = DefaultMinSpan
	}
	return &Tracker{minSpan: minSpan}
}

// State returns the current machine state.
func (t *Tracker) State() State {
	if t == nil {
		return StateIdle
	}
	return t.state
}

// Active reports whether a gesture is in flight.
func (t *Tracker) Active() bool { return t.State() == StateActive }

// Begin starts a gesture at p. It only fires inside the displayed image box;
// presses on surrounding chrome stay idle. Subsequent moves are clamped to
// containerBox, which may be larger than imageBox so the drag can run a
// little past the image edge and still track.
func (t *Tracker) Begin(p image.Point, imageBox, containerBox image.Rectangle) bool {
	if t == nil || t.state == StateActive {
		return false
	}
	if !p.In(imageBox) {
		return false
	}
	t.state = StateActive
	t.start = p
	t.current = p
	t.container = containerBox
	return true
}

// Update moves the live corner of the rectangle, clamped to the container.
func (t *Tracker) Update(p image.Point) {
	if t == nil || t.state != StateActive {
		return
	}
	t.current = clampPoint(p, t.container)
}

// Finish ends the gesture at p and returns the normalized rectangle. A
// rectangle under the minimum span on either axis is silently discarded and
// ok is false. The tracker is idle afterwards either way.
func (t *Tracker) Finish(p image.Point) (image.Rectangle, bool) {
	if t == nil || t.state != StateActive {
		return image.Rectangle{}, false
	}
	t.current = clampPoint(p, t.container)
	r := normalize(t.start, t.current)
	t.state = StateIdle
	if r.Dx() < t.minSpan || r.Dy() < t.minSpan {
		return image.Rectangle{}, false
	}
	return r, true
}

// Cancel discards any in-flight gesture.
func (t *Tracker) Cancel() {
	if t == nil {
		return
	}
	t.state = StateIdle
}

// Live returns the current normalized rectangle while a gesture is active,
// for drawing in-progress feedback.
func (t *Tracker) Live() (image.Rectangle, bool) {
	if t == nil || t.state != StateActive {
		return image.Rectangle{}, false
	}
	return normalize(t.start, t.current), true
}

// normalize builds a canonical rectangle from two opposite corners, so the
// result is independent of drag direction.
func normalize(a, b image.Point) image.Rectangle {
	return image.Rect(a.X, a.Y, b.X, b.Y)
}

func clampPoint(p image.Point, box image.Rectangle) image.Point {
	if p.X < box.Min.X {
		p.X = box.Min.X
	}
	if p.X > box.Max.X {
		p.X = box.Max.X
	}
	if p.Y < box.Min.Y {
		p.Y = box.Min.Y
	}
	if p.Y > box.Max.Y {
		p.Y = box.Max.Y
	}
	return p
}
