package ripple

import (
	"slices"
	"testing"
)

func TestIndexWrapsToroidally(t *testing.T) {
	f := NewField(1)
	for _, k := range []int{-3, -1, 1, 2, 7} {
		for _, p := range [][2]int{{0, 0}, {5, 9}, {FieldWidth - 1, FieldWidth - 1}, {64, 0}} {
			x, y := p[0], p[1]
			want := f.Index(x, y)
			if got := f.Index(x+k*FieldWidth, y); got != want {
				t.Fatalf("Index(%d+%d*W, %d)=%d, want %d", x, k, y, got, want)
			}
			if got := f.Index(x, y+k*FieldWidth); got != want {
				t.Fatalf("Index(%d, %d+%d*W)=%d, want %d", x, y, k, got, want)
			}
		}
	}
}

func TestSpawnSingleImpulse(t *testing.T) {
	f := NewField(1)
	f.Reset(0)
	f.Spawn(10, 20, 400)

	cells := f.Previous().Cells()
	expects := map[int]int16{
		f.Index(10, 20): 400,
		f.Index(11, 20): 100,
		f.Index(9, 20):  100,
		f.Index(10, 21): 100,
		f.Index(10, 19): 100,
	}
	for i, v := range cells {
		want := expects[i]
		if v != want {
			t.Fatalf("cell %d = %d, want %d", i, v, want)
		}
	}
	for _, v := range f.Current().Cells() {
		if v != 0 {
			t.Fatal("spawn must only touch the previous buffer")
		}
	}
}

func TestSpawnWrapsAtCorner(t *testing.T) {
	f := NewField(1)
	f.Reset(0)
	f.Spawn(0, 0, 8)

	prv := f.Previous()
	if got := prv.At(FieldWidth-1, 0); got != 2 {
		t.Fatalf("left neighbour across edge = %d, want 2", got)
	}
	if got := prv.At(0, FieldWidth-1); got != 2 {
		t.Fatalf("upper neighbour across edge = %d, want 2", got)
	}
}

func TestSpawnHandlesFifteenBitCoordinates(t *testing.T) {
	f := NewField(1)
	f.Reset(0)
	f.Spawn(0x7fff, 0x7fff, 4)
	if got := f.Previous().At(FieldWidth-1, FieldWidth-1); got != 4 {
		t.Fatalf("centre = %d, want 4", got)
	}
}

func TestStepAveragesNeighbours(t *testing.T) {
	f := NewField(1)
	f.Reset(0)
	f.Spawn(5, 5, 400)
	f.Step()

	// Centre sees four quarter-amplitude neighbours: (4*100)>>1 = 200.
	if got := f.At(5, 5); got != Decay(200) {
		t.Fatalf("centre after step = %d, want %d", got, Decay(200))
	}
	// A direct neighbour sees only the centre: 400>>1 = 200.
	if got := f.At(6, 5); got != Decay(200) {
		t.Fatalf("neighbour after step = %d, want %d", got, Decay(200))
	}
	// Diagonal sees two quarter taps: (100+100)>>1 = 100.
	if got := f.At(6, 6); got != Decay(100) {
		t.Fatalf("diagonal after step = %d, want %d", got, Decay(100))
	}
	if got := f.At(50, 50); got != 0 {
		t.Fatalf("distant cell = %d, want 0", got)
	}
}

func TestStepSubtractsOutputCell(t *testing.T) {
	f := NewField(1)
	f.Reset(0)
	f.Current().Add(3, 3, 64)
	f.Step()
	// No neighbours: 0 - 64 = -64, decay removes -1.
	if got := f.At(3, 3); got != -63 {
		t.Fatalf("cell = %d, want -63", got)
	}
}

func TestDecayRoundsTowardNegativeInfinity(t *testing.T) {
	cases := map[int16]int16{
		0:    0,
		63:   63,
		64:   63,
		-1:   0,
		-64:  -63,
		-65:  -63,
		6400: 6300,
	}
	for in, want := range cases {
		if got := Decay(in); got != want {
			t.Fatalf("Decay(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestStepIsUniformAcrossEdges(t *testing.T) {
	a := NewField(1)
	b := NewField(1)
	a.Reset(0)
	b.Reset(0)
	a.Spawn(0, 0, 800)
	b.Spawn(FieldWidth/2, FieldWidth/2, 800)
	for i := 0; i < 20; i++ {
		a.Step()
		b.Step()
		a.Swap()
		b.Swap()
	}
	for dy := -10; dy <= 10; dy++ {
		for dx := -10; dx <= 10; dx++ {
			va := a.Previous().At(dx, dy)
			vb := b.Previous().At(FieldWidth/2+dx, FieldWidth/2+dy)
			if va != vb {
				t.Fatalf("offset (%d,%d): edge=%d centre=%d", dx, dy, va, vb)
			}
		}
	}
}

func TestRepeatedStepsDecay(t *testing.T) {
	const amplitude = 1000
	f := NewField(1)
	f.Reset(0)
	f.Spawn(40, 70, amplitude)

	peak := amplitude
	for i := 0; i < 4000; i++ {
		f.Step()
		f.Swap()
		p := f.Peak()
		if q := absPeak(f.Previous().Cells()); q > p {
			p = q
		}
		if p > amplitude*64 {
			t.Fatalf("step %d: peak %d exceeds bound", i, p)
		}
		if p > peak {
			peak = p
		}
	}
	if f.Energy() != 0 {
		t.Fatalf("current buffer kept energy %d after 4000 steps (max peak %d)", f.Energy(), peak)
	}
	f.Swap()
	if f.Energy() != 0 {
		t.Fatalf("previous buffer kept energy %d after 4000 steps (max peak %d)", f.Energy(), peak)
	}
}

func absPeak(cells []int16) int {
	peak := 0
	for _, v := range cells {
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

func TestAdvanceRespectsIntervals(t *testing.T) {
	cfg := DefaultConfig()
	f := NewField(7)
	f.Reset(10)

	if !f.Advance(10, cfg) {
		t.Fatal("first advance after reset should update")
	}
	if f.Advance(10.02, cfg) {
		t.Fatal("advance inside update interval should not update")
	}
	if !f.Advance(10.06, cfg) {
		t.Fatal("advance past update interval should update")
	}
	if f.Ticks() != 2 {
		t.Fatalf("ticks = %d, want 2", f.Ticks())
	}
}

func TestAdvanceSpawnsImpulses(t *testing.T) {
	cfg := DefaultConfig()
	f := NewField(7)
	f.Reset(0)
	stirred := false
	for i := 0; i < 40; i++ {
		f.Advance(float64(i)*0.25, cfg)
		if f.Energy() != 0 {
			stirred = true
			break
		}
	}
	if !stirred {
		t.Fatal("advancing past the spawn interval should disturb the field")
	}
}

func TestAdvanceDisabledFreezesField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = 0
	f := NewField(7)
	f.Reset(0)
	if f.Advance(5, cfg) {
		t.Fatal("disabled field must not advance")
	}
}

func TestResetZeroesBuffers(t *testing.T) {
	cfg := DefaultConfig()
	f := NewField(7)
	f.Reset(0)
	for i := 1; i <= 20; i++ {
		f.Advance(float64(i)*0.2, cfg)
	}
	f.Reset(100)
	zero := make([]int16, FieldCells)
	if !slices.Equal(f.Current().Cells(), zero) || !slices.Equal(f.Previous().Cells(), zero) {
		t.Fatal("reset must zero both buffers")
	}
	if f.Ticks() != 0 {
		t.Fatal("reset must clear the tick count")
	}
}

func TestAdvanceSwapsByReference(t *testing.T) {
	cfg := DefaultConfig()
	f := NewField(7)
	f.Reset(0)
	cur, prv := f.Current(), f.Previous()
	f.Advance(0, cfg)
	if f.Current() != prv || f.Previous() != cur {
		t.Fatal("advance must exchange buffer roles")
	}
}
