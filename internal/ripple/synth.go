package ripple

import (
	"mad-ripples/internal/core"

	"github.com/chewxy/math32"
)

// displacementScale divides field values into pixel offsets.
const displacementScale = 16

// Output is the distorted image derived from one source.
type Output struct {
	Width  int
	Height int
	Pix    []byte

	// Frame is the 16-bit frame stamp of the last synthesis.
	Frame uint16
	// NeedsUpload is set when the buffer was freshly allocated and the
	// presentation surface does not exist yet.
	NeedsUpload bool
}

// Result is what a renderer gets back for one surface.
type Result struct {
	// Passthrough asks the renderer to draw the unmodified source.
	Passthrough bool
	// Changed reports that Output.Pix was rewritten this call.
	Changed bool
	Output  *Output
}

// OutputSize scales a source so its longer side equals FieldWidth while
// keeping the aspect ratio. Degenerate sources map to 1×1.
func OutputSize(srcW, srcH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 1
	}
	switch {
	case srcW > srcH:
		return FieldWidth, scaleSide(srcH, srcW)
	case srcW < srcH:
		return scaleSide(srcW, srcH), FieldWidth
	}
	return FieldWidth, FieldWidth
}

func scaleSide(short, long int) int {
	n := int(math32.Floor(float32(short)/float32(long)*FieldWidth + 0.5))
	if n < 1 {
		n = 1
	}
	return n
}

// Synthesizer keeps one derived output per source and rewrites it at most once
// per frame.
type Synthesizer struct {
	outputs map[SourceID]*Output
}

// NewSynthesizer returns a synthesizer with no outputs.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{outputs: make(map[SourceID]*Output)}
}

// Output returns the derived image for id, if one was allocated.
func (s *Synthesizer) Output(id SourceID) (*Output, bool) {
	out, ok := s.outputs[id]
	return out, ok
}

// Reset drops all derived outputs.
func (s *Synthesizer) Reset() { clear(s.outputs) }

// Synthesize distorts src by the current field. updated tells whether the
// field advanced since the last frame; frame is the renderer's frame counter.
// Repeated calls with the same frame leave the output untouched.
func (s *Synthesizer) Synthesize(src *SourceImage, field *Field, frame uint16, updated bool, cfg Config) Result {
	if !cfg.Active() || src == nil || field == nil {
		return Result{Passthrough: true}
	}
	out, ok := s.outputs[src.ID]
	if !ok {
		w, h := OutputSize(src.Size())
		out = &Output{
			Width:       w,
			Height:      h,
			Pix:         make([]byte, w*h*4),
			Frame:       frame - 1,
			NeedsUpload: true,
		}
		s.outputs[src.ID] = out
		updated = true
	}
	if !updated || out.Frame == frame {
		return Result{Output: out}
	}
	out.Frame = frame
	Resample(out, src, field.Current(), cfg.SampleSize())
	return Result{Changed: true, Output: out}
}

// Resample fills out with src pixels displaced by grid. The grid is sampled at
// size×size resolution; offsets flow up and right, wrapping on both axes.
func Resample(out *Output, src *SourceImage, grid *core.Int16Grid, size int) {
	w, h := out.Width, out.Height
	fw, fh := float32(w), float32(h)
	sw, sh := float32(src.Width), float32(src.Height)
	fs := float32(size)
	for y := 0; y < h; y++ {
		ry := int(float32(y) / fh * fs)
		row := y * w
		for x := 0; x < w; x++ {
			rx := int(float32(x) / fw * fs)
			val := int(grid.At(rx, ry)) / displacementScale

			rpy := (y - val) % h
			rpx := (x + val) % w

			py := int(float32(rpy) / fh * sh)
			px := int(float32(rpx) / fw * sw)
			py = wrapSource(py, src.Height)
			px = wrapSource(px, src.Width)

			si := src.PixOffset(px, py)
			di := (row + x) * 4
			copy(out.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
}

// wrapSource folds a scaled coordinate back into [0, n) on a torus.
func wrapSource(v, n int) int {
	return (v%n + n) % n
}
