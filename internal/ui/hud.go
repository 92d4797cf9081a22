//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"mad-ripples/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the ripple parameter panel to the right of the water view.
type HUD struct {
	provider core.ParameterProvider
	width    int
	height   int
	title    string
	panel    *ebiten.Image
	pixel    *ebiten.Image
	offsetX  int

	snapshot    core.ParameterSnapshot
	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

type controlState struct {
	control core.ParameterControl
	value   float64
	label   string
	valid   bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 21
	controlsTop    = panelPadding + headerBaseline + 14
	statusSpacing  = 16
)

var (
	panelColor    = color.RGBA{R: 14, G: 20, B: 28, A: 255}
	textColor     = color.RGBA{R: 220, G: 228, B: 236, A: 255}
	dimTextColor  = color.RGBA{R: 140, G: 150, B: 160, A: 255}
	buttonColor   = color.RGBA{R: 44, G: 60, B: 76, A: 255}
	disabledColor = color.RGBA{R: 28, G: 34, B: 42, A: 255}
)

// NewHUD constructs a HUD of the given size for provider. Providers that also
// implement the control and setter interfaces get +/- buttons.
func NewHUD(title string, provider core.ParameterProvider, width, height int) *HUD {
	h := &HUD{provider: provider, width: width, height: height, title: title}
	if width <= 0 || height <= 0 {
		return h
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.panel = ebiten.NewImage(width, height)
	if cp, ok := provider.(core.ParameterControlsProvider); ok {
		for i, ctrl := range cp.ParameterControls() {
			top := controlsTop + i*lineHeight
			by := top + (lineHeight-buttonSize)/2
			plus := image.Rect(width-panelPadding-buttonSize, by, width-panelPadding, by+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, controlState{control: ctrl, top: top, minus: minus, plus: plus})
		}
	}
	h.intSetter, _ = provider.(core.IntParameterSetter)
	h.floatSetter, _ = provider.(core.FloatParameterSetter)
	return h
}

// Update refreshes the snapshot and handles clicks on the panel placed at
// offsetX.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.provider == nil {
		return
	}
	h.offsetX = offsetX
	h.snapshot = h.provider.Parameters()
	for i := range h.controls {
		st := &h.controls[i]
		p, ok := h.snapshot.Lookup(st.control.Key)
		st.valid = false
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		st.value = v
		st.label = formatValue(st.control, v)
		st.valid = true
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		st := &h.controls[i]
		switch {
		case pt.In(st.minus):
			h.adjust(st, -1)
			return
		case pt.In(st.plus):
			h.adjust(st, 1)
			return
		}
	}
}

func (h *HUD) adjust(st *controlState, dir int) {
	target, ok := nextValue(st, dir)
	if !ok {
		return
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil && h.intSetter.SetIntParameter(st.control.Key, int(math.Round(target))) {
			st.value = target
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil && h.floatSetter.SetFloatParameter(st.control.Key, target) {
			st.value = target
		}
	}
	st.label = formatValue(st.control, st.value)
}

// nextValue steps the control in dir, reporting false when a bound blocks it.
func nextValue(st *controlState, dir int) (float64, bool) {
	if !st.valid || dir == 0 {
		return 0, false
	}
	step := st.control.Step
	if step <= 0 {
		step = 1
	}
	target := st.value + float64(dir)*step
	if st.control.HasMin && target < st.control.Min {
		target = st.control.Min
	}
	if st.control.HasMax && target > st.control.Max {
		target = st.control.Max
	}
	if math.Abs(target-st.value) < 1e-9 {
		return target, false
	}
	return target, true
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.panel == nil {
		return
	}
	face := basicfont.Face7x13
	h.panel.Fill(panelColor)
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, textColor)

	for i := range h.controls {
		st := &h.controls[i]
		y := st.top + labelBaseline
		text.Draw(h.panel, st.control.Label, face, panelPadding, y, textColor)
		value := "--"
		col := dimTextColor
		if st.valid {
			value = st.label
			col = textColor
		}
		vx := st.minus.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, vx, y, col)
		_, canDown := nextValue(st, -1)
		_, canUp := nextValue(st, 1)
		h.drawButton(st.minus, "-", canDown)
		h.drawButton(st.plus, "+", canUp)
	}

	y := controlsTop + len(h.controls)*lineHeight + statusSpacing
	for _, g := range h.snapshot.Groups {
		for _, p := range g.Params {
			if h.isControl(p.Key) {
				continue
			}
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, dimTextColor)
			y += statusSpacing
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) isControl(key string) bool {
	for _, st := range h.controls {
		if st.control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg := buttonColor
	fg := textColor
	if !enabled {
		bg = disabledColor
		fg = dimTextColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	switch {
	case ctrl.Step >= 1:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case ctrl.Step >= 0.05:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
