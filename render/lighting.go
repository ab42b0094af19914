package render

import "github.com/go-gl/mathgl/mgl32"

var spriteNormal = mgl32.Vec3{0, 0, 1}

// Lighting is an ambient term plus one white point light.
type Lighting struct {
	Ambient  float32
	LightPos mgl32.Vec3
}

// DefaultLighting returns a bright ambient term and a light in front of the
// scene.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient:  0.8,
		LightPos: mgl32.Vec3{0, 0, 10},
	}
}

// Shade returns the light intensity on a sprite surface at worldPos, in [0,1].
func (l Lighting) Shade(worldPos mgl32.Vec3) float32 {
	toLight := l.LightPos.Sub(worldPos)
	diffuse := float32(0)
	if toLight.Len() > 0 {
		diffuse = max(spriteNormal.Dot(toLight.Normalize()), 0)
	}
	return min(l.Ambient+diffuse, 1)
}
