//go:build ebiten

package app

import (
	"log"

	"mad-ripples/internal/core"
	"mad-ripples/internal/render"
	"mad-ripples/internal/ripple"
	"mad-ripples/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

var intensityKeys = []struct {
	key       ebiten.Key
	intensity float64
}{
	{ebiten.Key0, 0},
	{ebiten.Key1, 1},
	{ebiten.Key2, 2},
}

// surface is one water polygon of the demo scene.
type surface struct {
	source ripple.SourceID
	x, y   int
}

// Game adapts the ripple effect to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	effect  *ripple.Effect
	store   *render.TextureStore
	painter *render.WaterPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	surfaces []surface
	tileSize int
	paused   bool
}

// New constructs a Game showing a few water surfaces that share textures.
func New(cfg *Config, logger *log.Logger) *Game {
	effect := ripple.NewEffect(cfg.Ripple, core.NewWallClock(), logger)
	store := render.NewTextureStore()

	wide := make([]byte, 256*128*4)
	render.FillWaterRGBA(wide, 256, 128, render.WaterPalette())
	wideID := store.AddRGBA(wide, 256, 128)

	square := make([]byte, 64*64*4)
	render.FillWaterRGBA(square, 64, 64, render.WaterPalette()[2:])
	squareID := store.AddRGBA(square, 64, 64)

	g := &Game{
		cfg:      cfg,
		effect:   effect,
		store:    store,
		painter:  render.NewWaterPainter(),
		tileSize: ripple.FieldWidth * cfg.Scale / 2,
	}
	for i := 0; i < cfg.Tiles; i++ {
		src := wideID
		if i%2 == 1 {
			src = squareID
		}
		g.surfaces = append(g.surfaces, surface{source: src, x: i * g.tileSize, y: 0})
	}
	w, h := g.viewSize()
	g.hud = ui.NewHUD("Water Ripples", effect, hudWidth, h)
	g.overlay = ui.NewOverlay(effect.Field(), h/ripple.FieldWidth)
	return g
}

func (g *Game) viewSize() (int, int) {
	return g.cfg.Tiles * g.tileSize, 2 * g.tileSize
}

// Reset clears all cached textures and restarts the field.
func (g *Game) Reset() {
	g.effect.Reset()
	g.painter.Reset()
}

// Update handles per-frame logic and advances the effect.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	for _, k := range intensityKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.effect.SetFloatParameter(ripple.KeyEnabled, k.intensity)
		}
	}

	w, _ := g.viewSize()
	g.hud.Update(w)
	g.overlay.Update()

	if !g.paused {
		g.effect.BeginFrame()
	}
	return nil
}

// Draw renders every water surface. Surfaces sharing a source reuse the same
// synthesized image within a frame.
func (g *Game) Draw(screen *ebiten.Image) {
	filter := g.effect.Config().TextureFilter
	for _, s := range g.surfaces {
		src := g.store.Image(s.source)
		w, h := g.store.Size(s.source)
		res := g.effect.Surface(s.source, w, h, g.store.ReadBack)
		img := g.painter.Resolve(s.source, src, res)
		render.DrawTiled(screen, img, s.x, s.y, 1, 2, g.tileSize, filter)
	}
	g.overlay.Draw(screen)
	w, _ := g.viewSize()
	g.hud.Draw(screen, w)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewSize()
	return w + hudWidth, h
}
