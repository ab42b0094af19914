package scene

import (
	"errors"
	"fmt"

	"github.com/plus3/cookiedog/texture"
)

// ErrMissingTexture is wrapped for each scene texture that failed to load.
var ErrMissingTexture = errors.New("missing texture")

// TexturePaths locates the image files for the scene's textures.
type TexturePaths struct {
	Player      string
	Collectible string
	Background  string
}

// LoadTextures loads the player, collectible and background textures into
// cache under the names NewWorld resolves. Every texture is attempted; the
// returned error lists each one that came back as the sentinel.
func LoadTextures(cache *texture.Cache, paths TexturePaths) error {
	textures := []struct {
		name string
		path string
	}{
		{PlayerTexture, paths.Player},
		{CollectibleTexture, paths.Collectible},
		{BackgroundTexture, paths.Background},
	}

	var errs []error
	for _, tex := range textures {
		if cache.Load(tex.path, tex.name).IsSentinel() {
			errs = append(errs, fmt.Errorf("%w: %s (%s)", ErrMissingTexture, tex.name, tex.path))
		}
	}
	return errors.Join(errs...)
}
