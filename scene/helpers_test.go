package scene_test

import (
	"errors"
	"image"
	"io"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/cookiedog/scene"
	"github.com/plus3/cookiedog/sprite"
	"github.com/plus3/cookiedog/texture"
)

type memDecoder map[string]image.Image

func (d memDecoder) Decode(path string) (image.Image, error) {
	if img, ok := d[path]; ok {
		return img, nil
	}
	return nil, errors.New("no such image")
}

type countingUploader struct {
	next     texture.Handle
	released []texture.Handle
}

func (u *countingUploader) Upload(image.Image) (texture.Handle, error) {
	u.next++
	return u.next, nil
}

func (u *countingUploader) Release(h texture.Handle) {
	u.released = append(u.released, h)
}

type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySoundEffect(path string) {
	r.played = append(r.played, path)
}

type recordingRenderer struct {
	draws    []scene.DrawCommand
	presents int
}

func (r *recordingRenderer) DrawSprite(cmd scene.DrawCommand) {
	r.draws = append(r.draws, cmd)
}

func (r *recordingRenderer) Present() {
	r.presents++
}

var quiet = log.New(io.Discard, "", 0)

func newLoadedCache() (*texture.Cache, *countingUploader) {
	decoder := memDecoder{
		"dog.png":        image.NewRGBA(image.Rect(0, 0, 100, 100)),
		"cookie.png":     image.NewRGBA(image.Rect(0, 0, 32, 32)),
		"background.png": image.NewRGBA(image.Rect(0, 0, 640, 480)),
	}
	uploader := &countingUploader{}
	cache := texture.NewCache(decoder, uploader, texture.WithLogger(quiet))
	cache.Load("dog.png", scene.PlayerTexture)
	cache.Load("cookie.png", scene.CollectibleTexture)
	cache.Load("background.png", scene.BackgroundTexture)
	return cache, uploader
}

// steppedClock advances by step every time it is read.
func steppedClock(step time.Duration) *scene.Clock {
	current := time.Unix(0, 0)
	return scene.NewClock(func() time.Time {
		t := current
		current = current.Add(step)
		return t
	})
}

// testWorld builds a world with a square player at the origin and one cookie
// per position.
func testWorld(cookies ...mgl32.Vec3) *scene.World {
	rec := texture.Record{Handle: 1, AspectRatio: 1}
	w := &scene.World{
		Background: sprite.New(mgl32.Vec3{0, 0, -5}, 10, texture.Record{Handle: 3, AspectRatio: 1}),
		Player:     sprite.New(mgl32.Vec3{}, 1.5, rec),
		MoveSpeed:  scene.DefaultMoveSpeed,
		EatSound:   "eat.wav",
	}
	for _, pos := range cookies {
		w.Collectibles = append(w.Collectibles, sprite.New(pos, 0.5, texture.Record{Handle: 2, AspectRatio: 1}))
	}
	return w
}
