package ripple

import (
	"errors"
	"testing"
)

func TestGetOrCaptureReadsOnce(t *testing.T) {
	cache := NewSourceCache()
	calls := 0
	readBack := func(id SourceID, w, h int, dst []byte) error {
		calls++
		if len(dst) != w*h*4 {
			t.Fatalf("read-back buffer has %d bytes, want %d", len(dst), w*h*4)
		}
		for i := range dst {
			dst[i] = byte(i)
		}
		return nil
	}

	first, err := cache.GetOrCapture(3, 4, 2, readBack)
	if err != nil {
		t.Fatalf("first capture: %v", err)
	}
	second, err := cache.GetOrCapture(3, 4, 2, readBack)
	if err != nil {
		t.Fatalf("second capture: %v", err)
	}
	if calls != 1 {
		t.Fatalf("read-back called %d times, want 1", calls)
	}
	if first != second {
		t.Fatal("cache must return the same snapshot")
	}
	if first.Pix[5] != 5 {
		t.Fatalf("pixel byte 5 = %d, want 5", first.Pix[5])
	}
}

func TestGetOrCaptureFailureIsNotCached(t *testing.T) {
	cache := NewSourceCache()
	boom := errors.New("texture gone")
	calls := 0
	readBack := func(id SourceID, w, h int, dst []byte) error {
		calls++
		dst[0] = 99
		return boom
	}

	img, err := cache.GetOrCapture(9, 2, 2, readBack)
	if !errors.Is(err, ErrCaptureFailed) || !errors.Is(err, boom) {
		t.Fatalf("err = %v, want capture failure wrapping cause", err)
	}
	if img == nil || len(img.Pix) != 16 {
		t.Fatal("failed capture must still yield a zero-filled image")
	}
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("failed capture must leave the buffer zeroed")
		}
	}
	if cache.Len() != 0 {
		t.Fatal("failed capture must not be cached")
	}
	cache.GetOrCapture(9, 2, 2, readBack)
	if calls != 2 {
		t.Fatalf("read-back called %d times, want 2", calls)
	}
}

func TestGetOrCaptureZeroAreaSkipsReadBack(t *testing.T) {
	cache := NewSourceCache()
	calls := 0
	rb := func(SourceID, int, int, []byte) error { calls++; return nil }
	img, err := cache.GetOrCapture(1, 0, -4, rb)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if img.Width != 1 || img.Height != 1 || len(img.Pix) != 4 || !img.Empty {
		t.Fatalf("got %dx%d with %d bytes (empty=%t), want empty 1x1 with 4", img.Width, img.Height, len(img.Pix), img.Empty)
	}
	if w, h := img.Size(); w != 0 || h != 0 {
		t.Fatalf("Size() = %dx%d, want 0x0", w, h)
	}
	if calls != 0 {
		t.Fatalf("read-back called %d times for a zero-area source", calls)
	}
	again, _ := cache.GetOrCapture(1, 0, -4, rb)
	if again != img || cache.Len() != 1 {
		t.Fatal("zero-area source should be cached")
	}
}

func TestClearDropsEntries(t *testing.T) {
	cache := NewSourceCache()
	ok := func(SourceID, int, int, []byte) error { return nil }
	cache.GetOrCapture(1, 2, 2, ok)
	cache.GetOrCapture(2, 2, 2, ok)
	if cache.Len() != 2 {
		t.Fatalf("len = %d, want 2", cache.Len())
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Fatal("clear must drop all entries")
	}
	if _, found := cache.Lookup(1); found {
		t.Fatal("lookup after clear should miss")
	}
}
