package ripple

import (
	"log"

	"mad-ripples/internal/core"
)

// Effect wires the field, the source cache and the synthesizer together and
// is the only object a renderer talks to. Call BeginFrame once per rendered
// frame, then Surface for every water surface drawn in that frame.
type Effect struct {
	cfg    Config
	clock  core.Clock
	logger *log.Logger

	field *Field
	cache *SourceCache
	synth *Synthesizer

	frame   uint16
	updated bool
	failed  map[SourceID]struct{}
}

// NewEffect builds an effect and resets it against clock. A nil clock uses
// wall time and a nil logger uses the standard logger.
func NewEffect(cfg Config, clock core.Clock, logger *log.Logger) *Effect {
	if clock == nil {
		clock = core.NewWallClock()
	}
	if logger == nil {
		logger = log.Default()
	}
	cfg = cfg.Sanitize()
	e := &Effect{
		cfg:    cfg,
		clock:  clock,
		logger: logger,
		field:  NewField(cfg.Seed),
		cache:  NewSourceCache(),
		synth:  NewSynthesizer(),
		failed: make(map[SourceID]struct{}),
	}
	e.Reset()
	return e
}

// Config returns the active configuration.
func (e *Effect) Config() Config { return e.cfg }

// SetConfig replaces the configuration after sanitizing it.
func (e *Effect) SetConfig(cfg Config) { e.cfg = cfg.Sanitize() }

// Field exposes the simulation.
func (e *Effect) Field() *Field { return e.field }

// Cache exposes the captured sources.
func (e *Effect) Cache() *SourceCache { return e.cache }

// Synthesizer exposes the derived outputs.
func (e *Effect) Synthesizer() *Synthesizer { return e.synth }

// Frame returns the 16-bit frame counter.
func (e *Effect) Frame() uint16 { return e.frame }

// Updated reports whether the field advanced during the current frame.
func (e *Effect) Updated() bool { return e.updated }

// Reset clears the field, all captured sources and all outputs. Hosts call it
// whenever textures may have been recreated, e.g. after a video mode change.
func (e *Effect) Reset() {
	e.field.Reseed(e.cfg.Seed)
	e.field.Reset(e.clock.Now())
	e.cache.Clear()
	e.synth.Reset()
	clear(e.failed)
	e.updated = false
}

// BeginFrame bumps the frame counter and advances the field if its update
// interval elapsed. It reports whether the field changed.
func (e *Effect) BeginFrame() bool {
	e.frame++
	e.updated = e.field.Advance(e.clock.Now(), e.cfg)
	return e.updated
}

// Surface returns the image to draw for source id. Sources that cannot be
// captured are remembered and passed through until the next Reset.
func (e *Effect) Surface(id SourceID, w, h int, readBack ReadBackFunc) Result {
	if !e.cfg.Active() {
		return Result{Passthrough: true}
	}
	if _, bad := e.failed[id]; bad {
		return Result{Passthrough: true}
	}
	src, err := e.cache.GetOrCapture(id, w, h, readBack)
	if err != nil {
		e.failed[id] = struct{}{}
		e.logger.Printf("ripple: source %d left undistorted: %v", id, err)
		return Result{Passthrough: true}
	}
	return e.synth.Synthesize(src, e.field, e.frame, e.updated, e.cfg)
}
