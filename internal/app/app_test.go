//go:build ebiten

package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestIntensityKeys(t *testing.T) {
	want := map[ebiten.Key]float64{ebiten.Key0: 0, ebiten.Key1: 1, ebiten.Key2: 2}
	if len(intensityKeys) != len(want) {
		t.Fatalf("got %d intensity keys, want %d", len(intensityKeys), len(want))
	}
	for _, k := range intensityKeys {
		v, ok := want[k.key]
		if !ok || v != k.intensity {
			t.Fatalf("key %v maps to %v, want %v", k.key, k.intensity, v)
		}
	}
}
