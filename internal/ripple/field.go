package ripple

import "mad-ripples/internal/core"

const (
	// FieldBits is log2 of the field side length.
	FieldBits = 7
	// FieldWidth is the side length W of the square field.
	FieldWidth = 1 << FieldBits
	// FieldCells is the number of cells in one field buffer.
	FieldCells = FieldWidth * FieldWidth

	decayShift  = 6
	spreadShift = 2

	// resetLead backdates both timers on reset so the first Advance fires.
	resetLead = 0.1

	coordMask     = 0x7fff
	amplitudeMask = 0x3ff
)

// Field is the double-buffered ripple height field. Step reads the previous
// buffer and overwrites the current one in place; Advance swaps the roles.
type Field struct {
	cur *core.Int16Grid
	prv *core.Int16Grid

	update core.Interval
	spawn  core.Interval
	rng    *core.RNG

	ticks uint64
}

// NewField allocates a zeroed field whose spawns are drawn from seed.
func NewField(seed int64) *Field {
	return &Field{
		cur: core.NewInt16Grid(FieldBits),
		prv: core.NewInt16Grid(FieldBits),
		rng: core.NewRNG(seed),
	}
}

// Width returns the side length of the field.
func (f *Field) Width() int { return f.cur.W }

// Current exposes the buffer consumers read from. The pointer is only valid
// until the next Advance.
func (f *Field) Current() *core.Int16Grid { return f.cur }

// Previous exposes the buffer Spawn writes into and Step reads from.
func (f *Field) Previous() *core.Int16Grid { return f.prv }

// At reads the current buffer at the wrapped coordinates.
func (f *Field) At(x, y int) int16 { return f.cur.At(x, y) }

// Index returns the flat index of the wrapped coordinates.
func (f *Field) Index(x, y int) int { return f.cur.Index(x, y) }

// Ticks counts the successful Advance calls since the last Reset.
func (f *Field) Ticks() uint64 { return f.ticks }

// Reset zeroes both buffers and backdates the timers relative to now.
func (f *Field) Reset(now float64) {
	f.cur.Clear()
	f.prv.Clear()
	f.update.Reset(now - resetLead)
	f.spawn.Reset(now - resetLead)
	f.ticks = 0
}

// Reseed restarts the spawn generator.
func (f *Field) Reseed(seed int64) { f.rng.Seed(seed) }

// Swap exchanges the current and previous buffers.
func (f *Field) Swap() { f.cur, f.prv = f.prv, f.cur }

// Spawn injects an impulse into the previous buffer: the full amplitude at the
// centre and a quarter of it on each orthogonal neighbour.
func (f *Field) Spawn(x, y int, amplitude int16) {
	for _, tap := range SpawnTaps(x, y, amplitude) {
		f.prv.Add(tap.X, tap.Y, tap.V)
	}
}

// Tap is a single cell contribution.
type Tap struct {
	X, Y int
	V    int16
}

// SpawnTaps lists the cell contributions of an impulse at (x, y). Coordinates
// are left unwrapped; the grid wraps them on write.
func SpawnTaps(x, y int, amplitude int16) [5]Tap {
	q := amplitude >> spreadShift
	return [5]Tap{
		{x, y, amplitude},
		{x + 1, y, q},
		{x - 1, y, q},
		{x, y + 1, q},
		{x, y - 1, q},
	}
}

// StencilSum adds the four orthogonal neighbours of (x, y) in g. Each axis
// wraps on its own, so unlike a flattened j±1 walk the x-edges do not carry
// into the adjacent row and the last cell is updated like any other.
func StencilSum(g *core.Int16Grid, x, y int) int32 {
	return int32(g.At(x, y-1)) +
		int32(g.At(x-1, y)) +
		int32(g.At(x+1, y)) +
		int32(g.At(x, y+1))
}

// Decay removes 1/64th of v, rounding the removed part toward negative
// infinity.
func Decay(v int16) int16 { return v - v>>decayShift }

// Step runs one pass of the averaging rule over every cell:
// cur = decay(sum(prv neighbours)/2 - cur).
func (f *Field) Step() {
	src := f.prv
	dst := f.cur.Cells()
	w := f.cur.W
	for y := 0; y < w; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			i := row + x
			v := int16(StencilSum(src, x, y)>>1 - int32(dst[i]))
			dst[i] = Decay(v)
		}
	}
}

// Advance runs one fixed-cadence tick if the update interval elapsed. It swaps
// the buffers, spawns a random impulse when the spawn interval was exceeded and
// steps the field. The return value reports whether anything changed.
func (f *Field) Advance(now float64, cfg Config) bool {
	if !cfg.Animating() {
		return false
	}
	if !f.update.Ready(now, cfg.UpdateInterval) {
		return false
	}
	f.Swap()
	if f.spawn.Exceeded(now, cfg.SpawnInterval) {
		x := f.rng.Uint15() & coordMask
		y := f.rng.Uint15() & coordMask
		amp := int16(f.rng.Uint15() & amplitudeMask)
		f.Spawn(x, y, amp)
	}
	f.Step()
	f.ticks++
	return true
}

// Energy sums the absolute values of the current buffer.
func (f *Field) Energy() int64 {
	var total int64
	for _, v := range f.cur.Cells() {
		if v < 0 {
			total -= int64(v)
		} else {
			total += int64(v)
		}
	}
	return total
}

// Peak returns the largest absolute value in the current buffer.
func (f *Field) Peak() int {
	peak := 0
	for _, v := range f.cur.Cells() {
		a := int(v)
		if a < 0 {
			a = -a
		}
		if a > peak {
			peak = a
		}
	}
	return peak
}
