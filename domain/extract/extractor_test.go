package extract

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

// gradientPage builds a page-like source with distinguishable pixel content.
func gradientPage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}

func TestExtract_SizeMatchesCrop(t *testing.T) {
	src := gradientPage(1000, 1500)
	data, err := Extract(src, image.Rect(200, 200, 400, 400), 92)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.HasPrefix(data, DataURIPrefix) {
		t.Fatalf("artifact is not a self-describing data URI: %.40s", data)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("artifact must decode standalone: %v", err)
	}
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 200 {
		t.Fatalf("expected 200x200 artifact, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestExtract_DegenerateRectFails(t *testing.T) {
	src := gradientPage(100, 100)
	if _, err := Extract(src, image.Rect(10, 10, 10, 50), 92); err != ErrDegenerateRect {
		t.Fatalf("zero-width crop: expected ErrDegenerateRect, got %v", err)
	}
	if _, err := Extract(src, image.Rect(10, 10, 50, 10), 92); err != ErrDegenerateRect {
		t.Fatalf("zero-height crop: expected ErrDegenerateRect, got %v", err)
	}
}

func TestExtract_NilSourceFails(t *testing.T) {
	if _, err := Extract(nil, image.Rect(0, 0, 10, 10), 92); err != ErrNoSource {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
}

func TestExtract_ClipsToSourceBounds(t *testing.T) {
	src := gradientPage(100, 100)
	data, err := Extract(src, image.Rect(80, 80, 300, 300), 92)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 20 {
		t.Fatalf("expected clip to 20x20, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestExtract_FullyOutsideFails(t *testing.T) {
	src := gradientPage(100, 100)
	if _, err := Extract(src, image.Rect(200, 200, 300, 300), 92); err != ErrDegenerateRect {
		t.Fatalf("expected ErrDegenerateRect for out-of-bounds crop, got %v", err)
	}
}

func TestExtract_PixelContentSurvivesRoundTrip(t *testing.T) {
	src := gradientPage(256, 256)
	data, err := Extract(src, image.Rect(64, 64, 192, 192), 95)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// JPEG is lossy; check a sample pixel stays close to the original.
	wantR, wantG := 128, 128 // source pixel at (128,128) maps to artifact (64,64)
	r, g, _, _ := out.At(64, 64).RGBA()
	if diff8(int(r>>8), wantR) > 16 || diff8(int(g>>8), wantG) > 16 {
		t.Fatalf("artifact pixel drifted too far: got r=%d g=%d", r>>8, g>>8)
	}
}

func TestPayload_RejectsForeignPayloads(t *testing.T) {
	if _, err := Payload("data:image/png;base64,AAAA"); err == nil {
		t.Fatalf("expected rejection of non-JPEG payload")
	}
	if _, err := Payload(DataURIPrefix + "!!!not-base64!!!"); err == nil {
		t.Fatalf("expected base64 error")
	}
}

func diff8(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
