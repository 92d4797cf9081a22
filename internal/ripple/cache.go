package ripple

import (
	"errors"
	"fmt"
)

// SourceID identifies a renderer texture whose pixels are cached.
type SourceID uint32

// ErrCaptureFailed is returned when a read-back yields no usable pixels.
var ErrCaptureFailed = errors.New("source capture failed")

// ReadBackFunc copies the RGBA pixels of texture id into dst, which holds
// exactly w*h*4 bytes.
type ReadBackFunc func(id SourceID, w, h int, dst []byte) error

// SourceImage is an immutable RGBA snapshot of a source texture.
type SourceImage struct {
	ID     SourceID
	Width  int
	Height int
	Pix    []byte

	// Empty marks a zero-area source. Its single transparent pixel was never
	// read back.
	Empty bool
}

// Size reports the dimensions of the captured texture, 0×0 when it had no
// area.
func (s *SourceImage) Size() (int, int) {
	if s.Empty {
		return 0, 0
	}
	return s.Width, s.Height
}

// PixOffset returns the byte offset of pixel (x, y).
func (s *SourceImage) PixOffset(x, y int) int { return (y*s.Width + x) * 4 }

// SourceCache captures each source texture once and hands the same snapshot
// back on every later lookup.
type SourceCache struct {
	entries map[SourceID]*SourceImage
}

// NewSourceCache returns an empty cache.
func NewSourceCache() *SourceCache {
	return &SourceCache{entries: make(map[SourceID]*SourceImage)}
}

// Len reports the number of cached sources.
func (c *SourceCache) Len() int { return len(c.entries) }

// Lookup returns the cached snapshot for id without capturing.
func (c *SourceCache) Lookup(id SourceID) (*SourceImage, bool) {
	img, ok := c.entries[id]
	return img, ok
}

// GetOrCapture returns the snapshot for id, capturing it through readBack on
// the first request. When the read-back fails the zero-filled image is still
// returned so callers can degrade, but it is not cached. Zero-area sources
// are cached as an empty 1×1 image without calling readBack.
func (c *SourceCache) GetOrCapture(id SourceID, w, h int, readBack ReadBackFunc) (*SourceImage, error) {
	if img, ok := c.entries[id]; ok {
		return img, nil
	}
	if w <= 0 || h <= 0 {
		img := &SourceImage{ID: id, Width: 1, Height: 1, Pix: make([]byte, 4), Empty: true}
		c.entries[id] = img
		return img, nil
	}
	img := &SourceImage{ID: id, Width: w, Height: h, Pix: make([]byte, w*h*4)}
	if readBack == nil {
		return img, fmt.Errorf("capture source %d: %w", id, ErrCaptureFailed)
	}
	if err := readBack(id, w, h, img.Pix); err != nil {
		clear(img.Pix)
		return img, fmt.Errorf("capture source %d: %w", id, errors.Join(ErrCaptureFailed, err))
	}
	c.entries[id] = img
	return img, nil
}

// Clear drops every cached snapshot.
func (c *SourceCache) Clear() {
	clear(c.entries)
}
