package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/cookiedog/sprite"
	"github.com/plus3/cookiedog/texture"
)

// Texture names the scene resolves through the cache.
const (
	PlayerTexture      = "dog"
	CollectibleTexture = "cookie"
	BackgroundTexture  = "background"
)

// DefaultMoveSpeed is the player's speed in world units per second.
const DefaultMoveSpeed = 4.0

const (
	playerSize      = 1.5
	collectibleSize = 0.5
	backgroundSize  = 10.0
	backgroundDepth = -5.0
)

var collectiblePositions = []mgl32.Vec3{
	{2.5, 2.0, 0},
	{-2.0, -1.5, 0},
	{1.5, -2.5, 0},
}

// World is the scene's entity collection. Collected entities stay in
// Collectibles with Visible cleared until the world is discarded.
type World struct {
	Background   *sprite.Entity
	Player       *sprite.Entity
	Collectibles []*sprite.Entity

	MoveSpeed float32
	EatSound  string
}

// NewWorld lays out the player, the cookies and the background using textures
// already loaded into cache.
func NewWorld(cache *texture.Cache, eatSound string) *World {
	dog := cache.Get(PlayerTexture)
	cookie := cache.Get(CollectibleTexture)
	background := cache.Get(BackgroundTexture)

	w := &World{
		Background: sprite.New(mgl32.Vec3{0, 0, backgroundDepth}, backgroundSize, background),
		Player:     sprite.New(mgl32.Vec3{}, playerSize, dog),
		MoveSpeed:  DefaultMoveSpeed,
		EatSound:   eatSound,
	}
	for _, pos := range collectiblePositions {
		w.Collectibles = append(w.Collectibles, sprite.New(pos, collectibleSize, cookie))
	}
	return w
}

// Collected returns how many collectibles have been hidden.
func (w *World) Collected() int {
	n := 0
	for _, item := range w.Collectibles {
		if !item.Visible {
			n++
		}
	}
	return n
}

// Remaining returns how many collectibles are still visible.
func (w *World) Remaining() int {
	return len(w.Collectibles) - w.Collected()
}

func (w *World) overlapsPlayer(e *sprite.Entity) bool {
	return sprite.Overlaps(w.Player, e)
}
