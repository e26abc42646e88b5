package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoader_OpenAndCache(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "page.png", 64, 48)

	l, err := NewLoader(0, nil)
	if err != nil {
		t.Fatalf("loader: %v", err)
	}
	pg, err := l.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !pg.Loaded() {
		t.Fatalf("page should be loaded")
	}
	if pg.Natural() != image.Pt(64, 48) {
		t.Fatalf("unexpected natural dims %v", pg.Natural())
	}
	if pg.Name != "page.png" {
		t.Fatalf("unexpected name %q", pg.Name)
	}
	if !l.Cached(path) {
		t.Fatalf("decoded page should sit in the cache")
	}
	// Second open comes from the cache and returns the same decoded pixels.
	again, err := l.Open(path)
	if err != nil {
		t.Fatalf("cached open: %v", err)
	}
	if again.Image != pg.Image {
		t.Fatalf("expected cached image instance to be reused")
	}
	l.Evict(path)
	if l.Cached(path) {
		t.Fatalf("evict failed")
	}
}

func TestLoader_OpenMissingFileFails(t *testing.T) {
	l, err := NewLoader(4, nil)
	if err != nil {
		t.Fatalf("loader: %v", err)
	}
	if _, err := l.Open(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestPage_ZeroValueNotLoaded(t *testing.T) {
	var pg Page
	if pg.Loaded() {
		t.Fatalf("zero page must not report loaded")
	}
	if pg.Natural() != (image.Point{}) {
		t.Fatalf("zero page must have zero natural dims")
	}
}
