// Package ebiten uploads textures as Ebiten images and resolves texture handles
// back to those images at draw time.
package ebiten

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/plus3/cookiedog/texture"
)

var errEmptyImage = errors.New("image has no pixels")

// Registry implements texture.Uploader on top of Ebiten. Handles start at 1 so
// the zero handle stays free for texture.Sentinel.
type Registry struct {
	images *intmap.Map[texture.Handle, *ebiten.Image]
	next   texture.Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		images: intmap.New[texture.Handle, *ebiten.Image](16),
	}
}

// Upload copies img into a new Ebiten image and returns its handle.
func (r *Registry) Upload(img image.Image) (texture.Handle, error) {
	if img.Bounds().Empty() {
		return 0, errEmptyImage
	}

	r.next++
	r.images.Put(r.next, ebiten.NewImageFromImage(img))
	return r.next, nil
}

// Release deallocates the image behind h. Unknown handles are ignored.
func (r *Registry) Release(h texture.Handle) {
	img, ok := r.images.Get(h)
	if !ok {
		return
	}
	img.Deallocate()
	r.images.Del(h)
}

// Image returns the image uploaded under h, or nil if there is none.
func (r *Registry) Image(h texture.Handle) *ebiten.Image {
	if h == 0 {
		return nil
	}
	img, _ := r.images.Get(h)
	return img
}

// Len returns the number of live images.
func (r *Registry) Len() int {
	return r.images.Len()
}
