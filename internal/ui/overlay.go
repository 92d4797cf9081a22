//go:build ebiten

package ui

import (
	"mad-ripples/internal/core"
	"mad-ripples/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type fieldProvider interface {
	Current() *core.Int16Grid
}

// Overlay draws the raw height field on top of the water when toggled with F.
type Overlay struct {
	field fieldProvider
	scale int
	show  bool
	img   *ebiten.Image
	buf   []byte
}

// NewOverlay constructs an overlay for field drawn at the given scale.
func NewOverlay(field fieldProvider, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{field: field, scale: scale}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.show = !o.show
	}
}

// Draw paints the field when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.show || o.field == nil {
		return
	}
	grid := o.field.Current()
	if o.img == nil || o.img.Bounds().Dx() != grid.W {
		o.img = ebiten.NewImage(grid.W, grid.W)
		o.buf = make([]byte, 4*grid.W*grid.W)
	}
	render.FillFieldRGBA(o.buf, grid)
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	op.ColorScale.ScaleAlpha(0.85)
	screen.DrawImage(o.img, op)
}
