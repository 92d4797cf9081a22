package core

import "testing"

func TestIntervalReadyIsInclusive(t *testing.T) {
	var iv Interval
	iv.Reset(1)
	if iv.Ready(1.25, 0.5) {
		t.Fatal("fired before period elapsed")
	}
	if !iv.Ready(1.5, 0.5) {
		t.Fatal("expected to fire when elapsed equals period")
	}
	if iv.Elapsed(1.5) != 0 {
		t.Fatalf("expected firing to restart the interval, elapsed %v", iv.Elapsed(1.5))
	}
}

func TestIntervalExceededIsStrict(t *testing.T) {
	var iv Interval
	iv.Reset(1)
	if iv.Exceeded(1.5, 0.5) {
		t.Fatal("strict interval fired on equality")
	}
	if !iv.Exceeded(1.75, 0.5) {
		t.Fatal("expected strict interval to fire after period")
	}
	if iv.Exceeded(2, 0.5) {
		t.Fatal("expected interval to restart from the last firing")
	}
}

func TestManualClockIgnoresNegativeSteps(t *testing.T) {
	c := &ManualClock{T: 2}
	c.Advance(0.5)
	c.Advance(-1)
	if c.Now() != 2.5 {
		t.Fatalf("expected 2.5, got %v", c.Now())
	}
}

func TestWallClockMonotonic(t *testing.T) {
	c := NewWallClock()
	a := c.Now()
	b := c.Now()
	if a < 0 || b < a {
		t.Fatalf("clock went backwards: %v then %v", a, b)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Uint15(), b.Uint15()
		if va != vb {
			t.Fatalf("draw %d diverged: %d vs %d", i, va, vb)
		}
		if va < 0 || va > 0x7fff {
			t.Fatalf("draw %d out of range: %d", i, va)
		}
	}
	first := NewRNG(42).Uint15()
	a.Seed(42)
	if a.Uint15() != first {
		t.Fatal("Seed did not restart the sequence")
	}
}
