package source

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vova616/screenshot"
)

// Page is one decoded source image plus a short name for session display.
type Page struct {
	Name  string
	Image image.Image
}

// Loaded reports whether the page carries decodable pixels with positive
// extent. Coordinate mapping and extraction refuse to run before this holds.
func (p Page) Loaded() bool {
	if p.Image == nil {
		return false
	}
	b := p.Image.Bounds()
	return b.Dx() > 0 && b.Dy() > 0
}

// Natural returns the page's natural pixel dimensions, zero when unloaded.
func (p Page) Natural() image.Point {
	if p.Image == nil {
		return image.Point{}
	}
	return image.Pt(p.Image.Bounds().Dx(), p.Image.Bounds().Dy())
}

const defaultCacheSize = 8

// Loader decodes page images from disk. Recently used pages stay in an LRU
// cache so flipping back to a page does not pay the decode again.
type Loader struct {
	logger *slog.Logger
	cache  *lru.Cache[string, image.Image]
}

// NewLoader builds a loader caching up to size decoded pages. size <= 0
// selects a small default. logger may be nil.
func NewLoader(size int, logger *slog.Logger) (*Loader, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New[string, image.Image](size)
	if err != nil {
		return nil, fmt.Errorf("page cache: %w", err)
	}
	return &Loader{logger: logger, cache: c}, nil
}

// Open returns the page stored at path, from cache when possible. EXIF
// orientation is applied at decode time so natural coordinates match what the
// user sees.
func (l *Loader) Open(path string) (Page, error) {
	if l == nil || l.cache == nil {
		return Page{}, fmt.Errorf("loader not initialized")
	}
	name := filepath.Base(path)
	if img, ok := l.cache.Get(path); ok {
		return Page{Name: name, Image: img}, nil
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return Page{}, fmt.Errorf("open page image: %w", err)
	}
	l.cache.Add(path, img)
	if l.logger != nil {
		b := img.Bounds()
		l.logger.Info("page decoded", "path", path, "w", b.Dx(), "h", b.Dy())
	}
	return Page{Name: name, Image: img}, nil
}

// Cached reports whether path is currently held in the decode cache.
func (l *Loader) Cached(path string) bool {
	if l == nil || l.cache == nil {
		return false
	}
	return l.cache.Contains(path)
}

// Evict drops one path from the decode cache.
func (l *Loader) Evict(path string) {
	if l == nil || l.cache == nil {
		return
	}
	l.cache.Remove(path)
}

// Screen grabs the active screen as an alternate session source.
func Screen() (Page, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return Page{}, fmt.Errorf("capture screen: %w", err)
	}
	return Page{Name: "screen", Image: img}, nil
}
