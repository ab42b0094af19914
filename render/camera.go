// Package render draws the scene's sprites with Ebiten, viewed through a
// perspective camera and lit by a single point light.
package render

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera looking at Center from Position.
type Camera struct {
	Position mgl32.Vec3
	Center   mgl32.Vec3
	Up       mgl32.Vec3

	// FovY is the vertical field of view in degrees.
	FovY      float32
	Near, Far float32
}

// DefaultCamera looks down the -Z axis from eight units in front of the origin.
func DefaultCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{0, 0, 8},
		Center:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     45,
		Near:     0.1,
		Far:      100,
	}
}

// View returns the world-to-camera transform.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Center, c.Up)
}

// Projection returns the camera-to-clip transform for a viewport with the
// given width/height ratio.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Project maps a point through mvp onto a width x height screen with the
// origin in the top-left corner. It reports false for points behind the camera.
func Project(mvp mgl32.Mat4, p mgl32.Vec3, width, height int) (mgl32.Vec2, bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl32.Vec2{
		(ndc.X() + 1) * 0.5 * float32(width),
		(1 - ndc.Y()) * 0.5 * float32(height),
	}, true
}
