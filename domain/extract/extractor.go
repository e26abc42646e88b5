package extract

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Extracted artifacts are JPEG data URIs so the collaborator can embed them
// verbatim as record content without holding on to the source image.
const DataURIPrefix = "data:image/jpeg;base64,"

// DefaultQuality is used when the caller passes a non-positive quality.
// Region artifacts are meant for re-reading, so the floor is high.
const DefaultQuality = 92

var (
	// ErrNoSource means extraction ran before the source image loaded.
	ErrNoSource = errors.New("source image not available")
	// ErrDegenerateRect means the crop has no area after clipping.
	ErrDegenerateRect = errors.New("degenerate crop rectangle")
)

// Extract rasterizes the crop rectangle of src into a standalone JPEG data
// URI. The crop is taken at natural resolution, never from the scaled
// display, and is clipped to the source bounds. A failed extraction returns
// an error and produces nothing; it never corrupts previously extracted
// regions.
func Extract(src image.Image, crop image.Rectangle, quality int) (string, error) {
	if src == nil {
		return "", ErrNoSource
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return "", ErrNoSource
	}
	if crop.Dx() <= 0 || crop.Dy() <= 0 {
		return "", ErrDegenerateRect
	}
	crop = crop.Intersect(b)
	if crop.Dx() <= 0 || crop.Dy() <= 0 {
		return "", ErrDegenerateRect
	}
	if quality <= 0 {
		quality = DefaultQuality
	}
	if quality > 100 {
		quality = 100
	}
	sub := imaging.Crop(src, crop)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, sub, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("encode region: %w", err)
	}
	return DataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Payload splits an artifact produced by Extract into its raw JPEG bytes.
func Payload(dataURI string) ([]byte, error) {
	body, ok := strings.CutPrefix(dataURI, DataURIPrefix)
	if !ok {
		return nil, fmt.Errorf("not a %s payload", DataURIPrefix)
	}
	raw, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("decode artifact body: %w", err)
	}
	return raw, nil
}

// Decode reconstructs the pixels of an artifact, independent of the source
// image it was cut from.
func Decode(dataURI string) (image.Image, error) {
	raw, err := Payload(dataURI)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode artifact image: %w", err)
	}
	return img, nil
}
