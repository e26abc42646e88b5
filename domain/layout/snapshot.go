package layout

import (
	"image"
	"math"
)

// Snapshot captures the affine relationship between a source image's natural
// pixel space and its displayed box at one point in time. It is derived on
// demand from the current viewport; nothing in it is cached across layout
// changes, so a resize simply produces a new Snapshot.
type Snapshot struct {
	// Natural holds the source image dimensions in natural pixels.
	Natural image.Point
	// Display is the box the image occupies inside its container, in
	// display pixels. Min carries the image offset within the container.
	Display image.Rectangle
}

// Valid reports whether both coordinate spaces have positive extent. Until
// the source image has loaded, Natural is zero and all conversions refuse to
// run rather than divide by zero.
func (s Snapshot) Valid() bool {
	return s.Natural.X > 0 && s.Natural.Y > 0 && s.Display.Dx() > 0 && s.Display.Dy() > 0
}

// ScaleX returns natural pixels per display pixel on the horizontal axis.
func (s Snapshot) ScaleX() float64 { return float64(s.Natural.X) / float64(s.Display.Dx()) }

// ScaleY returns natural pixels per display pixel on the vertical axis.
func (s Snapshot) ScaleY() float64 { return float64(s.Natural.Y) / float64(s.Display.Dy()) }

// ToNatural converts a rectangle in display coordinates into natural source
// coordinates. The input is clamped to the displayed image box first: drags
// may overshoot the image edges and still have to map to a legal crop.
// Returns ok=false for an invalid snapshot or a rectangle that degenerates
// after clamping.
func (s Snapshot) ToNatural(r image.Rectangle) (image.Rectangle, bool) {
	if !s.Valid() {
		return image.Rectangle{}, false
	}
	r = r.Intersect(s.Display)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return image.Rectangle{}, false
	}
	sx, sy := s.ScaleX(), s.ScaleY()
	x0 := roundToInt(float64(r.Min.X-s.Display.Min.X) * sx)
	y0 := roundToInt(float64(r.Min.Y-s.Display.Min.Y) * sy)
	x1 := roundToInt(float64(r.Max.X-s.Display.Min.X) * sx)
	y1 := roundToInt(float64(r.Max.Y-s.Display.Min.Y) * sy)
	out := image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, s.Natural.X, s.Natural.Y))
	if out.Dx() <= 0 || out.Dy() <= 0 {
		return image.Rectangle{}, false
	}
	return out, true
}

// ToDisplay re-projects a stored natural-space rectangle into the current
// display box. The natural reference is the original dimension pair recorded
// with the rectangle, not the snapshot's own Natural: that keeps overlays
// registered even when the viewport (or the session image) changed after the
// region was captured.
func (s Snapshot) ToDisplay(r image.Rectangle, original image.Point) (image.Rectangle, bool) {
	if s.Display.Dx() <= 0 || s.Display.Dy() <= 0 || original.X <= 0 || original.Y <= 0 {
		return image.Rectangle{}, false
	}
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return image.Rectangle{}, false
	}
	fx := float64(s.Display.Dx()) / float64(original.X)
	fy := float64(s.Display.Dy()) / float64(original.Y)
	x0 := s.Display.Min.X + roundToInt(float64(r.Min.X)*fx)
	y0 := s.Display.Min.Y + roundToInt(float64(r.Min.Y)*fy)
	x1 := s.Display.Min.X + roundToInt(float64(r.Max.X)*fx)
	y1 := s.Display.Min.Y + roundToInt(float64(r.Max.Y)*fy)
	out := image.Rect(x0, y0, x1, y1).Intersect(s.Display)
	if out.Dx() <= 0 || out.Dy() <= 0 {
		return image.Rectangle{}, false
	}
	return out, true
}

func roundToInt(v float64) int { return int(math.Round(v)) }
