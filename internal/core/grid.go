package core

// Int16Grid stores a square W×W grid of signed cell values in row-major
// order. W is always a power of two so wrapping reduces to a bit mask.
type Int16Grid struct {
	W    int
	mask int
	data []int16
}

// NewInt16Grid allocates a grid whose side is 1<<bits. Out-of-range bit counts
// fall back to a 1×1 grid.
func NewInt16Grid(bits uint) *Int16Grid {
	if bits > 14 {
		bits = 0
	}
	w := 1 << bits
	return &Int16Grid{W: w, mask: w - 1, data: make([]int16, w*w)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Int16Grid) Cells() []int16 { return g.data }

// Wrap applies toroidal wrapping to the provided coordinates. Negative values
// wrap too because the mask operates on the two's-complement representation.
func (g *Int16Grid) Wrap(x, y int) (int, int) {
	return x & g.mask, y & g.mask
}

// Index returns the linear slice index for coordinates (x, y) after wrapping.
func (g *Int16Grid) Index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.W + x
}

// At reads the cell at the wrapped coordinates.
func (g *Int16Grid) At(x, y int) int16 { return g.data[g.Index(x, y)] }

// Add accumulates v into the wrapped cell. Overflow wraps like int16 does.
func (g *Int16Grid) Add(x, y int, v int16) { g.data[g.Index(x, y)] += v }

// Clear fills the grid with zeros.
func (g *Int16Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
