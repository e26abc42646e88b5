package images

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// OverlayStyle holds the two color variants of one region highlight.
type OverlayStyle struct {
	Fill   color.NRGBA // translucent body
	Border color.NRGBA // opaque-ish outline and label plate
}

// OverlayItem is one rectangle to paint, already re-projected into display
// coordinates. Ordinal is the 1-based label; items with Ordinal <= 0 (the
// live drag rectangle) are drawn border-only with no label or delete box.
type OverlayItem struct {
	Rect    image.Rectangle
	Ordinal int
	Style   OverlayStyle
}

const (
	borderPx    = 2
	deleteBoxPx = 14
	labelPadPx  = 2
)

// DeleteBox returns the delete affordance hit area for a display rectangle:
// a small square anchored at the rectangle's top-right corner. Callers use
// the same function for painting and hit-testing so the two can not drift.
func DeleteBox(r image.Rectangle) image.Rectangle {
	box := image.Rect(r.Max.X-deleteBoxPx, r.Min.Y, r.Max.X, r.Min.Y+deleteBoxPx)
	return box.Intersect(r)
}

// ComposeOverlays paints every item over base and returns a fresh frame;
// base is never written to. Items are painted in slice order, so a later
// item sits on top wherever two overlap — delete clicks resolve to the
// highest-ordinal region for the same reason.
func ComposeOverlays(base image.Image, items []OverlayItem) *image.RGBA {
	if base == nil {
		return nil
	}
	b := base.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), base, b.Min, draw.Src)
	for _, it := range items {
		r := it.Rect.Intersect(dst.Bounds())
		if r.Dx() <= 0 || r.Dy() <= 0 {
			continue
		}
		draw.Draw(dst, r, image.NewUniform(it.Style.Fill), image.Point{}, draw.Over)
		drawBorder(dst, r, it.Style.Border)
		if it.Ordinal > 0 {
			drawLabel(dst, r, strconv.Itoa(it.Ordinal), it.Style.Border)
			drawDeleteGlyph(dst, r, it.Style.Border)
		}
	}
	return dst
}

// drawBorder paints the four edges of r at borderPx thickness.
func drawBorder(dst *image.RGBA, r image.Rectangle, c color.NRGBA) {
	u := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+borderPx),
		image.Rect(r.Min.X, r.Max.Y-borderPx, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+borderPx, r.Max.Y),
		image.Rect(r.Max.X-borderPx, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(r), u, image.Point{}, draw.Over)
	}
}

// drawLabel paints the ordinal on a small opaque plate in the top-left
// corner so the number stays readable over any page content.
func drawLabel(dst *image.RGBA, r image.Rectangle, text string, c color.NRGBA) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	plate := image.Rect(
		r.Min.X, r.Min.Y,
		r.Min.X+w+2*labelPadPx+borderPx, r.Min.Y+face.Height+2*labelPadPx,
	).Intersect(r)
	if plate.Dx() <= 0 || plate.Dy() <= 0 {
		return
	}
	opaque := c
	opaque.A = 255
	draw.Draw(dst, plate, image.NewUniform(opaque), image.Point{}, draw.Over)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBA{255, 255, 255, 255}),
		Face: face,
		Dot: fixed.P(
			plate.Min.X+labelPadPx+borderPx/2,
			plate.Min.Y+labelPadPx+face.Ascent,
		),
	}
	d.DrawString(text)
}

// drawDeleteGlyph paints the delete affordance: a plate in the top-right
// corner with an "x" glyph. Its hit area is exactly DeleteBox(r).
func drawDeleteGlyph(dst *image.RGBA, r image.Rectangle, c color.NRGBA) {
	box := DeleteBox(r)
	if box.Dx() <= 0 || box.Dy() <= 0 {
		return
	}
	opaque := c
	opaque.A = 255
	draw.Draw(dst, box, image.NewUniform(opaque), image.Point{}, draw.Over)
	face := basicfont.Face7x13
	w := font.MeasureString(face, "x").Ceil()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBA{255, 255, 255, 255}),
		Face: face,
		Dot: fixed.P(
			box.Min.X+(box.Dx()-w)/2,
			box.Min.Y+(box.Dy()-face.Height)/2+face.Ascent,
		),
	}
	d.DrawString("x")
}
