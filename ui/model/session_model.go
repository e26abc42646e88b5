package model

import (
	"image"

	"github.com/soocke/region-clip-go/domain/layout"
	"github.com/soocke/region-clip-go/source"
)

// SessionModel tracks the current image session: the source page, its natural
// dimensions and the latest layout snapshot. It is decoupled from the UI;
// presenters read it and push projections to views. Updates occur on the UI
// thread, so no synchronization is needed. The zero value is an empty session.
type SessionModel struct {
	page source.Page
	snap layout.Snapshot
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// Open replaces the session's source page and resets the layout snapshot.
// Natural dimensions become known here; they are not valid pre-load.
func (m *SessionModel) Open(pg source.Page) {
	if m == nil {
		return
	}
	m.page = pg
	m.snap = layout.Snapshot{Natural: pg.Natural()}
}

// Close ends the session, discarding page and snapshot.
func (m *SessionModel) Close() {
	if m == nil {
		return
	}
	m.page = source.Page{}
	m.snap = layout.Snapshot{}
}

// Loaded reports whether a decodable source with positive extent is present.
func (m *SessionModel) Loaded() bool {
	if m == nil {
		return false
	}
	return m.page.Loaded()
}

// Image returns the session's source image, nil when no session is open.
func (m *SessionModel) Image() image.Image {
	if m == nil {
		return nil
	}
	return m.page.Image
}

// Name returns the short display name of the source.
func (m *SessionModel) Name() string {
	if m == nil {
		return ""
	}
	return m.page.Name
}

// Natural returns the source dimensions in natural pixels, zero pre-load.
func (m *SessionModel) Natural() image.Point {
	if m == nil {
		return image.Point{}
	}
	return m.page.Natural()
}

// SetSnapshot stores the layout snapshot derived from the current viewport.
func (m *SessionModel) SetSnapshot(s layout.Snapshot) {
	if m == nil {
		return
	}
	m.snap = s
}

// Snapshot returns the last stored layout snapshot.
func (m *SessionModel) Snapshot() layout.Snapshot {
	if m == nil {
		return layout.Snapshot{}
	}
	return m.snap
}
