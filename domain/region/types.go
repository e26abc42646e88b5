package region

import (
	"image"

	"github.com/oklog/ulid/v2"
)

// Crop locates a region inside its source image using natural (unscaled)
// pixel coordinates. OriginalWidth/OriginalHeight record the source
// dimensions at extraction time so the region can be re-projected onto any
// later display box.
type Crop struct {
	X              int `json:"x"`
	Y              int `json:"y"`
	Width          int `json:"width"`
	Height         int `json:"height"`
	OriginalWidth  int `json:"original_width"`
	OriginalHeight int `json:"original_height"`
}

// Valid reports whether the crop has positive extent and lies fully inside
// the recorded original dimensions.
func (c Crop) Valid() bool {
	return c.Width > 0 && c.Height > 0 &&
		c.X >= 0 && c.Y >= 0 &&
		c.X+c.Width <= c.OriginalWidth &&
		c.Y+c.Height <= c.OriginalHeight
}

// Rect returns the crop as a stdlib rectangle in natural coordinates.
func (c Crop) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// CropFromRect builds a Crop from a natural-space rectangle plus the source
// dimensions it was taken from.
func CropFromRect(r image.Rectangle, original image.Point) Crop {
	return Crop{
		X:              r.Min.X,
		Y:              r.Min.Y,
		Width:          r.Dx(),
		Height:         r.Dy(),
		OriginalWidth:  original.X,
		OriginalHeight: original.Y,
	}
}

// Region is one committed selection: its location in the source plus a
// standalone encoded artifact that stays decodable after the source image is
// gone. Ordinals and display colors are intentionally absent; both derive
// from the region's current position in the store.
type Region struct {
	ID        string `json:"id"`
	Crop      Crop   `json:"crop"`
	ImageData string `json:"image_data"` // self-describing data URI
}

// NewID returns a fresh session-unique region identifier.
func NewID() string { return ulid.Make().String() }

// CommitFunc receives the full region list when the user saves.
type CommitFunc func([]Region)
