//go:build ebiten

package render

import (
	"fmt"

	"mad-ripples/internal/ripple"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureStore owns the source textures of the scene and reads their pixels
// back for the ripple cache.
type TextureStore struct {
	images map[ripple.SourceID]*ebiten.Image
	next   ripple.SourceID
}

// NewTextureStore returns an empty store.
func NewTextureStore() *TextureStore {
	return &TextureStore{images: make(map[ripple.SourceID]*ebiten.Image), next: 1}
}

// Add registers img and returns its handle.
func (s *TextureStore) Add(img *ebiten.Image) ripple.SourceID {
	id := s.next
	s.next++
	s.images[id] = img
	return id
}

// AddRGBA uploads an RGBA buffer as a new source texture.
func (s *TextureStore) AddRGBA(pix []byte, w, h int) ripple.SourceID {
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	return s.Add(img)
}

// Image returns the texture for id.
func (s *TextureStore) Image(id ripple.SourceID) *ebiten.Image { return s.images[id] }

// Size reports the dimensions of texture id.
func (s *TextureStore) Size(id ripple.SourceID) (int, int) {
	img, ok := s.images[id]
	if !ok {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// ReadBack satisfies ripple.ReadBackFunc. It must run inside the game loop.
func (s *TextureStore) ReadBack(id ripple.SourceID, w, h int, dst []byte) error {
	img, ok := s.images[id]
	if !ok {
		return fmt.Errorf("texture %d not registered", id)
	}
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return fmt.Errorf("texture %d is %dx%d, asked for %dx%d", id, b.Dx(), b.Dy(), w, h)
	}
	img.ReadPixels(dst)
	return nil
}
