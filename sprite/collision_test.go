package sprite_test

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/cookiedog/sprite"
	"github.com/plus3/cookiedog/texture"
	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	player := square(0, 0, 1.5)

	tests := []struct {
		name  string
		other *sprite.Entity
		want  bool
	}{
		{"cookie inside corner", square(0.5, 0.5, 0.5), true},
		{"far away", square(10, 10, 0.5), false},
		{"touching right edge", square(1.0, 0, 0.5), true},
		{"just past right edge", square(1.0001, 0, 0.5), false},
		{"aligned on x but far on y", square(0, 5, 0.5), false},
		{"aligned on y but far on x", square(-5, 0, 0.5), false},
		{"contains player", square(0, 0, 20), true},
		{"zero size on the edge", square(0.75, 0.75, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sprite.Overlaps(player, tt.other))
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	entities := []*sprite.Entity{
		square(0, 0, 1.5),
		square(0.5, 0.5, 0.5),
		square(10, 10, 0.5),
		square(-0.9, 0, 0.3),
		sprite.New(mgl32.Vec3{2, 0, 0}, 1, texture.Record{Handle: 1, AspectRatio: 3}),
	}

	for i, a := range entities {
		for j, b := range entities {
			t.Run(fmt.Sprintf("%d-%d", i, j), func(t *testing.T) {
				assert.Equal(t, sprite.Overlaps(a, b), sprite.Overlaps(b, a))
			})
		}
	}
}

func TestOverlapsSelf(t *testing.T) {
	e := square(3, -2, 0.5)
	assert.True(t, sprite.Overlaps(e, e))
}

func TestOverlapsSeparatedOnX(t *testing.T) {
	a := square(0, 0, 1)
	for _, y := range []float32{-10, -0.5, 0, 0.5, 10} {
		// half-widths sum to 1.0
		b := square(1.01, y, 1)
		assert.False(t, sprite.Overlaps(a, b), "y=%v", y)
	}
}

func TestOverlapsIgnoresVisibility(t *testing.T) {
	player := square(0, 0, 1.5)
	cookie := square(0.5, 0.5, 0.5)
	cookie.Collect()

	assert.True(t, sprite.Overlaps(player, cookie))
}
