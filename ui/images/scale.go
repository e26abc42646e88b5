package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// EncodePNG encodes an image to PNG bytes for Tk photo consumption. Errors
// are swallowed and may yield an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// FitSize returns the largest size with the aspect ratio of (w, h) that fits
// within maxW x maxH. A source already inside the box keeps its size. The
// result is the displayed-image box used for layout snapshots, so Scale and
// FitSize must round identically.
func FitSize(w, h, maxW, maxH int) image.Point {
	if w <= 0 || h <= 0 {
		return image.Point{}
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	if w <= maxW && h <= maxH {
		return image.Pt(w, h)
	}
	ratioW := float64(maxW) / float64(w)
	ratioH := float64(maxH) / float64(h)
	ratio := ratioW
	if ratioH < ratio {
		ratio = ratioH
	}
	newW := int(float64(w)*ratio + 0.5)
	newH := int(float64(h)*ratio + 0.5)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	return image.Pt(newW, newH)
}

// Scale resizes src to exactly w x h with nearest-neighbour sampling. This is
// display-only scaling; extraction always reads the natural-resolution
// source. Returns src unchanged when the size already matches.
func Scale(src image.Image, w, h int) image.Image {
	if src == nil || w < 1 || h < 1 {
		return nil
	}
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		sy := int(float64(y) * float64(b.Dy()) / float64(h))
		for x := 0; x < w; x++ {
			sx := int(float64(x) * float64(b.Dx()) / float64(w))
			c := src.At(b.Min.X+sx, b.Min.Y+sy)
			r, g, bl, a := c.RGBA()
			dst.SetRGBA(x, y, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)})
		}
	}
	return dst
}

// ScaleToFit scales src to fit within maxW x maxH preserving aspect ratio.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	size := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if size == (image.Point{}) {
		return nil
	}
	return Scale(src, size.X, size.Y)
}
