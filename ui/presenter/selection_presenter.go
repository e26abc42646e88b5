package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/region-clip-go/config"
	"github.com/soocke/region-clip-go/domain/extract"
	"github.com/soocke/region-clip-go/domain/gesture"
	"github.com/soocke/region-clip-go/domain/layout"
	"github.com/soocke/region-clip-go/domain/region"
	"github.com/soocke/region-clip-go/source"
	"github.com/soocke/region-clip-go/ui/images"
	"github.com/soocke/region-clip-go/ui/model"
	"github.com/soocke/region-clip-go/ui/theme"
)

// View is the narrow surface the presenter drives, enabling decoupling from
// the concrete Tk views and fakes in tests.
type View interface {
	ShowFrame(img image.Image)
	SetStatus(text string)
	Warn(text string)
}

// SelectionPresenter owns the region-selection control flow: pointer events
// in, store mutations and re-composited frames out. All methods run on the
// UI event loop.
type SelectionPresenter struct {
	logger  *slog.Logger
	cfg     *config.Config
	session *model.SessionModel
	sel     *model.SelectionModel
	store   *region.Store
	tracker *gesture.Tracker
	view    View
	commit  region.CommitFunc

	// Display rects of the last composed frame, in paint order, kept for
	// delete hit-testing. Rebuilt on every render.
	painted []paintedRegion
}

type paintedRegion struct {
	id        string
	rect      image.Rectangle
	deleteBox image.Rectangle
}

// New wires a presenter. logger may be nil; commit receives the store
// contents on save.
func New(cfg *config.Config, session *model.SessionModel, sel *model.SelectionModel,
	store *region.Store, tracker *gesture.Tracker, view View,
	commit region.CommitFunc, logger *slog.Logger) *SelectionPresenter {
	return &SelectionPresenter{
		logger:  logger,
		cfg:     cfg,
		session: session,
		sel:     sel,
		store:   store,
		tracker: tracker,
		view:    view,
		commit:  commit,
	}
}

// OpenSession replaces the current page. Any in-flight gesture is discarded
// and the store is cleared; previously committed records are unaffected.
func (p *SelectionPresenter) OpenSession(pg source.Page, viewW, viewH int) {
	if p == nil {
		return
	}
	p.tracker.Cancel()
	p.store.Clear()
	p.session.Open(pg)
	if !pg.Loaded() {
		p.view.SetStatus("No page loaded")
		return
	}
	p.ViewportChanged(viewW, viewH)
	p.view.SetStatus(fmt.Sprintf("Loaded %s (%dx%d)", pg.Name, pg.Natural().X, pg.Natural().Y))
}

// CloseSession discards the gesture, the store and the page.
func (p *SelectionPresenter) CloseSession() {
	if p == nil {
		return
	}
	p.tracker.Cancel()
	p.store.Clear()
	p.session.Close()
}

// ViewportChanged recomputes the layout snapshot for a new container size
// and re-projects every overlay. Stored region data is never mutated here;
// only the display projection moves.
func (p *SelectionPresenter) ViewportChanged(viewW, viewH int) {
	if p == nil || !p.session.Loaded() {
		return
	}
	maxW, maxH := viewW, viewH
	if p.cfg != nil {
		if maxW <= 0 || maxW > p.cfg.MaxViewW {
			maxW = p.cfg.MaxViewW
		}
		if maxH <= 0 || maxH > p.cfg.MaxViewH {
			maxH = p.cfg.MaxViewH
		}
	}
	nat := p.session.Natural()
	size := images.FitSize(nat.X, nat.Y, maxW, maxH)
	p.session.SetSnapshot(layout.Snapshot{
		Natural: nat,
		Display: image.Rect(0, 0, size.X, size.Y),
	})
	p.Render()
}

// PointerDown routes a press: delete affordances first, then gesture start.
func (p *SelectionPresenter) PointerDown(pt image.Point) {
	if p == nil {
		return
	}
	if !p.session.Loaded() {
		p.logDebug("pointer down before page load", "x", pt.X, "y", pt.Y)
		return
	}
	// Walk painted regions topmost-first so overlapping delete boxes resolve
	// to the region drawn last (highest current ordinal).
	for i := len(p.painted) - 1; i >= 0; i-- {
		if pt.In(p.painted[i].deleteBox) {
			p.Delete(p.painted[i].id)
			return
		}
	}
	if !p.sel.Enabled() {
		return
	}
	snap := p.session.Snapshot()
	if !snap.Valid() {
		p.logDebug("pointer down before layout", "x", pt.X, "y", pt.Y)
		return
	}
	p.tracker.Begin(pt, snap.Display, p.containerBox(snap))
}

// PointerMove advances the live rectangle and refreshes the frame.
func (p *SelectionPresenter) PointerMove(pt image.Point) {
	if p == nil || !p.tracker.Active() {
		return
	}
	p.tracker.Update(pt)
	p.Render()
}

// PointerUp finalizes the gesture. Undersized rectangles vanish silently;
// valid ones are mapped to natural coordinates, extracted and appended.
func (p *SelectionPresenter) PointerUp(pt image.Point) {
	if p == nil {
		return
	}
	disp, ok := p.tracker.Finish(pt)
	if !ok {
		p.Render()
		return
	}
	snap := p.session.Snapshot()
	nat, ok := snap.ToNatural(disp)
	if !ok {
		p.logDebug("gesture did not map to a crop", "rect", disp.String())
		p.Render()
		return
	}
	quality := 0
	if p.cfg != nil {
		quality = p.cfg.JPEGQuality
	}
	data, err := extract.Extract(p.session.Image(), nat, quality)
	if err != nil {
		// A failed extraction aborts this region only; the store is intact.
		if p.logger != nil {
			p.logger.Error("region extraction failed", "error", err, "crop", nat.String())
		}
		p.Render()
		return
	}
	reg := region.Region{
		ID:        region.NewID(),
		Crop:      region.CropFromRect(nat, p.session.Natural()),
		ImageData: data,
	}
	if err := p.store.Append(reg); err != nil {
		if p.logger != nil {
			p.logger.Error("region append failed", "error", err)
		}
		p.Render()
		return
	}
	p.Render()
	p.view.SetStatus(fmt.Sprintf("%d region(s) selected", p.store.Len()))
}

// Delete removes one region; later ordinals and colors shift down.
func (p *SelectionPresenter) Delete(id string) {
	if p == nil {
		return
	}
	if p.store.Remove(id) {
		p.Render()
		p.view.SetStatus(fmt.Sprintf("%d region(s) selected", p.store.Len()))
	}
}

// ClearAll empties the store and refreshes the frame.
func (p *SelectionPresenter) ClearAll() {
	if p == nil {
		return
	}
	p.tracker.Cancel()
	p.store.Clear()
	p.Render()
	p.view.SetStatus("Selection cleared")
}

// Commit hands the store contents to the collaborator callback. An empty
// store warns the user and aborts; the callback never sees zero regions.
func (p *SelectionPresenter) Commit() {
	if p == nil {
		return
	}
	n := p.store.Len()
	err := p.store.Commit(p.commit)
	switch {
	case errors.Is(err, region.ErrEmptyCommit):
		p.view.Warn("No regions selected yet - draw one first")
	case err != nil:
		if p.logger != nil {
			p.logger.Error("commit failed", "error", err)
		}
		p.view.Warn("Saving regions failed")
	default:
		p.view.SetStatus(fmt.Sprintf("Saved %d region(s)", n))
	}
}

// CancelGesture handles Escape: an active drag is discarded; otherwise
// selection mode switches off.
func (p *SelectionPresenter) CancelGesture() {
	if p == nil {
		return
	}
	if p.tracker.Active() {
		p.tracker.Cancel()
		p.Render()
		return
	}
	p.sel.SetEnabled(false)
	p.view.SetStatus("Selection off")
}

// ToggleSelection flips selection mode.
func (p *SelectionPresenter) ToggleSelection() {
	if p == nil {
		return
	}
	if p.sel.Toggle() {
		p.view.SetStatus("Selection on - drag to mark a region")
	} else {
		p.view.SetStatus("Selection off")
	}
}

// Render re-derives every overlay from stored natural coordinates through
// the current snapshot and pushes a freshly composed frame to the view.
func (p *SelectionPresenter) Render() {
	if p == nil || !p.session.Loaded() {
		return
	}
	snap := p.session.Snapshot()
	if !snap.Valid() {
		return
	}
	base := images.Scale(p.session.Image(), snap.Display.Dx(), snap.Display.Dy())
	if base == nil {
		return
	}
	regs := p.store.Regions()
	items := make([]images.OverlayItem, 0, len(regs)+1)
	p.painted = p.painted[:0]
	for i, r := range regs {
		disp, ok := snap.ToDisplay(r.Crop.Rect(), image.Pt(r.Crop.OriginalWidth, r.Crop.OriginalHeight))
		if !ok {
			continue
		}
		items = append(items, images.OverlayItem{
			Rect:    disp,
			Ordinal: i + 1,
			Style:   theme.RegionStyleAt(i),
		})
		p.painted = append(p.painted, paintedRegion{
			id:        r.ID,
			rect:      disp,
			deleteBox: images.DeleteBox(disp),
		})
	}
	if live, ok := p.tracker.Live(); ok {
		items = append(items, images.OverlayItem{Rect: live, Style: theme.LiveStyle()})
	}
	p.view.ShowFrame(images.ComposeOverlays(base, items))
}

// containerBox is the area a drag may wander in: the displayed frame. It
// matches the display box today; kept separate so a padded container stays a
// one-line change.
func (p *SelectionPresenter) containerBox(snap layout.Snapshot) image.Rectangle {
	return snap.Display
}

func (p *SelectionPresenter) logDebug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
