//go:build ebiten

package render

import (
	"mad-ripples/internal/ripple"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaterPainter keeps one GPU image per ripple output and uploads pixels only
// when the synthesizer rewrote them.
type WaterPainter struct {
	images map[ripple.SourceID]*ebiten.Image
}

// NewWaterPainter returns an empty painter.
func NewWaterPainter() *WaterPainter {
	return &WaterPainter{images: make(map[ripple.SourceID]*ebiten.Image)}
}

// Reset drops all derived images.
func (p *WaterPainter) Reset() {
	for id, img := range p.images {
		img.Dispose()
		delete(p.images, id)
	}
}

// Resolve returns the image to draw for a surface: the source itself when the
// effect passed it through, otherwise the derived image, refreshed if needed.
func (p *WaterPainter) Resolve(id ripple.SourceID, src *ebiten.Image, res ripple.Result) *ebiten.Image {
	if res.Passthrough || res.Output == nil {
		return src
	}
	out := res.Output
	img, ok := p.images[id]
	if !ok || out.NeedsUpload {
		if ok {
			img.Dispose()
		}
		img = ebiten.NewImage(out.Width, out.Height)
		p.images[id] = img
		img.WritePixels(out.Pix)
		out.NeedsUpload = false
		return img
	}
	if res.Changed {
		img.WritePixels(out.Pix)
	}
	return img
}

// DrawTiled repeats img over a cols×rows grid of tiles, each scaled to
// tileSize pixels, starting at (x, y).
func DrawTiled(dst, img *ebiten.Image, x, y, cols, rows, tileSize int, filter string) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	sx := float64(tileSize) / float64(b.Dx())
	sy := float64(tileSize) / float64(b.Dy())
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(float64(x+c*tileSize), float64(y+r*tileSize))
			op.Filter = Filter(filter)
			dst.DrawImage(img, op)
		}
	}
}

// Filter maps a ripple texture filter name to ebiten's.
func Filter(name string) ebiten.Filter {
	if name == ripple.FilterNearest {
		return ebiten.FilterNearest
	}
	return ebiten.FilterLinear
}
