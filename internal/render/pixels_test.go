package render

import (
	"image/color"
	"testing"

	"mad-ripples/internal/core"
)

func TestFillWaterRGBATiles(t *testing.T) {
	const w, h = 32, 16
	buf := make([]byte, w*h*4)
	FillWaterRGBA(buf, w, h, WaterPalette())

	img := RGBAImage(buf, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.RGBAAt(x, y).A != 255 {
				t.Fatalf("pixel (%d,%d) is not opaque", x, y)
			}
		}
	}
	distinct := map[color.RGBA]bool{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			distinct[img.RGBAAt(x, y)] = true
		}
	}
	if len(distinct) < 3 {
		t.Fatalf("expected a varied pattern, got %d colours", len(distinct))
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{0, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestFillFieldRGBA(t *testing.T) {
	grid := core.NewInt16Grid(2)
	grid.Add(0, 0, 800)
	grid.Add(1, 0, -2000)
	buf := make([]byte, 4*4*4)
	FillFieldRGBA(buf, grid)
	if buf[0] != 228 {
		t.Fatalf("crest = %d, want 228", buf[0])
	}
	if buf[4] != 0 {
		t.Fatalf("trough = %d, want 0", buf[4])
	}
	if buf[8] != 128 {
		t.Fatalf("flat = %d, want 128", buf[8])
	}
}
