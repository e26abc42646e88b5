package theme

import (
	"testing"
)

func TestRegionStyleAt_CyclesPalette(t *testing.T) {
	n := PaletteSize()
	if n < 5 {
		t.Fatalf("palette must hold at least 5 hues, got %d", n)
	}
	for i := 0; i < n; i++ {
		a := RegionStyleAt(i)
		b := RegionStyleAt(i + n)
		if a != b {
			t.Fatalf("palette must cycle: style %d != style %d", i, i+n)
		}
	}
}

func TestRegionStyleAt_DistinctHues(t *testing.T) {
	seen := map[[3]uint8]bool{}
	for i := 0; i < PaletteSize(); i++ {
		s := RegionStyleAt(i)
		key := [3]uint8{s.Fill.R, s.Fill.G, s.Fill.B}
		if seen[key] {
			t.Fatalf("hue %d repeats within one palette cycle", i)
		}
		seen[key] = true
	}
}

func TestRegionStyleAt_FillTranslucentBorderOpaque(t *testing.T) {
	for i := 0; i < PaletteSize(); i++ {
		s := RegionStyleAt(i)
		if s.Fill.A >= 128 {
			t.Fatalf("fill %d should be translucent, alpha=%d", i, s.Fill.A)
		}
		if s.Border.A < 200 {
			t.Fatalf("border %d should be near-opaque, alpha=%d", i, s.Border.A)
		}
	}
}

func TestRegionStyleAt_NegativeIndexSafe(t *testing.T) {
	// Derived positions are never negative; the accessor still must not
	// panic if one slips through.
	_ = RegionStyleAt(-1)
}

func TestLiveStyle_FainterThanCommitted(t *testing.T) {
	live := LiveStyle()
	if live.Fill.A >= RegionStyleAt(0).Fill.A {
		t.Fatalf("live fill should be fainter than committed fills")
	}
}
