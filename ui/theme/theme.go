package theme

// Centralized theming for the region clip UI: widget style initialization
// plus the cyclic region palette used by the overlay renderer.

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/region-clip-go/ui/images"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, cards
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // buttons, accents
	ColorDanger    = "#dc2626"
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStateLabel    = "state.TLabel"
)

// regionHues is the cyclic palette for region overlays. Five visually
// distinct hues; position i wears hue i mod len(regionHues).
var regionHues = []string{
	"#2563eb", // blue
	"#dc2626", // red
	"#10b981", // green
	"#f59e0b", // amber
	"#8b5cf6", // violet
}

const (
	regionFillAlpha   = 64
	regionBorderAlpha = 230
)

// PaletteSize returns the number of distinct region hues before cycling.
func PaletteSize() int { return len(regionHues) }

// RegionStyleAt returns the overlay style for a region at the given
// zero-based position. The translucent fill uses the hue directly; the
// border is a darkened variant derived in HSL space so it reads as an
// outline over busy page content.
func RegionStyleAt(i int) images.OverlayStyle {
	n := len(regionHues)
	hex := regionHues[((i%n)+n)%n]
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 0.15, G: 0.39, B: 0.92}
	}
	h, s, l := c.Hsl()
	border := colorful.Hsl(h, s, l*0.7)
	return images.OverlayStyle{
		Fill:   toNRGBA(c, regionFillAlpha),
		Border: toNRGBA(border, regionBorderAlpha),
	}
}

// LiveStyle returns the style of the in-flight drag rectangle: accent hue,
// fainter fill than committed regions.
func LiveStyle() images.OverlayStyle {
	c, err := colorful.Hex(ColorAccent)
	if err != nil {
		c = colorful.Color{R: 0.06, G: 0.72, B: 0.51}
	}
	return images.OverlayStyle{
		Fill:   toNRGBA(c, 40),
		Border: toNRGBA(c, 255),
	}
}

func toNRGBA(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

// InitStyles applies the base theme and semantic widget styles.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStateLabel,
		Foreground("white"),
		Background(ColorAccent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
