package render

import (
	"image"
	"image/color"
	"math"

	"mad-ripples/internal/core"
)

// WaterPalette returns the shades used by the procedural water texture, from
// deep to bright.
func WaterPalette() []color.RGBA {
	return []color.RGBA{
		{R: 8, G: 32, B: 64, A: 255},
		{R: 12, G: 52, B: 96, A: 255},
		{R: 20, G: 74, B: 122, A: 255},
		{R: 34, G: 98, B: 146, A: 255},
		{R: 58, G: 126, B: 170, A: 255},
		{R: 96, G: 160, B: 196, A: 255},
		{R: 150, G: 200, B: 222, A: 255},
		{R: 214, G: 236, B: 246, A: 255},
	}
}

// FillWaterRGBA paints a seamless caustic-like pattern into buf, which must
// hold w*h*4 bytes. The pattern tiles because every term is periodic in w
// and h.
func FillWaterRGBA(buf []byte, w, h int, palette []color.RGBA) {
	if w <= 0 || h <= 0 || len(buf) < w*h*4 {
		return
	}
	cells := make([]uint8, w*h)
	levels := len(palette)
	if levels == 0 {
		levels = 1
	}
	for y := 0; y < h; y++ {
		fy := float64(y) / float64(h) * 2 * math.Pi
		for x := 0; x < w; x++ {
			fx := float64(x) / float64(w) * 2 * math.Pi
			v := math.Sin(3*fx+math.Cos(2*fy)) + math.Cos(4*fy+math.Sin(fx)) + 0.5*math.Sin(5*(fx+fy))
			t := (v + 2.5) / 5
			idx := int(t * float64(levels))
			if idx < 0 {
				idx = 0
			}
			if idx >= levels {
				idx = levels - 1
			}
			cells[y*w+x] = uint8(idx)
		}
	}
	fillPaletteRGBA(buf, cells, palette)
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillFieldRGBA renders a height field as grey levels around mid-grey: crests
// are bright, troughs dark. buf must hold W*W*4 bytes.
func FillFieldRGBA(buf []byte, grid *core.Int16Grid) {
	for i, v := range grid.Cells() {
		l := 128 + int(v)/8
		if l < 0 {
			l = 0
		}
		if l > 255 {
			l = 255
		}
		base := i * 4
		buf[base+0] = uint8(l)
		buf[base+1] = uint8(l)
		buf[base+2] = uint8(l)
		buf[base+3] = 255
	}
}

// RGBAImage wraps a packed RGBA buffer without copying.
func RGBAImage(pix []byte, w, h int) *image.RGBA {
	return &image.RGBA{Pix: pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
}
