package view

import (
	"image"

	"github.com/soocke/region-clip-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerHandlers receives pointer events in page-display coordinates.
type PointerHandlers struct {
	Down func(x, y int)
	Move func(x, y int)
	Up   func(x, y int)
}

// PageView renders composed frames (page plus overlays) and forwards pointer
// gestures. It owns a single label widget whose photo is swapped per frame.
type PageView interface {
	ShowFrame(img image.Image)
	Reset()
}

type pageView struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo instance, disposed before replacement
}

// NewPageView creates the page label at the given grid row and binds the
// pointer events driving selection.
func NewPageView(row int, h PointerHandlers) PageView {
	placeholder := image.NewRGBA(image.Rect(0, 0, 400, 300))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(5), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	v := &pageView{label: label, prevPhoto: photo}
	Bind(label, "<ButtonPress-1>", Command(func(e *Event) {
		if h.Down != nil {
			h.Down(e.X, e.Y)
		}
	}))
	Bind(label, "<B1-Motion>", Command(func(e *Event) {
		if h.Move != nil {
			h.Move(e.X, e.Y)
		}
	}))
	Bind(label, "<ButtonRelease-1>", Command(func(e *Event) {
		if h.Up != nil {
			h.Up(e.X, e.Y)
		}
	}))
	return v
}

// ShowFrame replaces the displayed photo. The previous Tk image is deleted
// first so per-drag re-renders do not accumulate off-screen pixel data.
func (v *pageView) ShowFrame(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.label.Configure(Image(newPhoto))
}

// Reset restores the empty placeholder.
func (v *pageView) Reset() {
	if v == nil || v.label == nil {
		return
	}
	v.ShowFrame(image.NewRGBA(image.Rect(0, 0, 400, 300)))
}
