package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// PlaceholderPagePNG contains the raw PNG bytes of the blank page shown when
// the app starts without an image argument.
//
//go:embed placeholder_page.png
var PlaceholderPagePNG []byte

// PlaceholderPage decodes the embedded PNG into an image.Image.
func PlaceholderPage() (image.Image, error) {
	if len(PlaceholderPagePNG) == 0 {
		return nil, fmt.Errorf("embedded placeholder_page.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(PlaceholderPagePNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
