// Package sprite defines the textured quads that make up the scene and the
// axis-aligned overlap test used to collect them.
package sprite

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/cookiedog/texture"
)

// Entity is a positioned, sized and textured sprite. The rendered quad spans
// Size*AspectRatio on x and Size on y, centered on Position. Position.Z only
// orders sprites in depth and plays no part in collision.
type Entity struct {
	Position    mgl32.Vec3
	Size        float32
	Texture     texture.Handle
	Visible     bool
	AspectRatio float32
}

// New creates a visible entity from a resolved texture record. The aspect
// ratio is copied out of the record and never recomputed, so later changes to
// the cache are not observed.
func New(position mgl32.Vec3, size float32, rec texture.Record) *Entity {
	return &Entity{
		Position:    position,
		Size:        size,
		Texture:     rec.Handle,
		Visible:     true,
		AspectRatio: rec.AspectRatio,
	}
}

// HalfExtents returns half the quad's width and height.
func (e *Entity) HalfExtents() mgl32.Vec2 {
	return mgl32.Vec2{e.Size * e.AspectRatio * 0.5, e.Size * 0.5}
}

// Min returns the lower-left corner of the entity's bounding box.
func (e *Entity) Min() mgl32.Vec2 {
	return e.Position.Vec2().Sub(e.HalfExtents())
}

// Max returns the upper-right corner of the entity's bounding box.
func (e *Entity) Max() mgl32.Vec2 {
	return e.Position.Vec2().Add(e.HalfExtents())
}

// Model returns the transform that maps the unit quad centered on the origin
// onto the entity.
func (e *Entity) Model() mgl32.Mat4 {
	translate := mgl32.Translate3D(e.Position.X(), e.Position.Y(), e.Position.Z())
	scale := mgl32.Scale3D(e.Size*e.AspectRatio, e.Size, 1)
	return translate.Mul4(scale)
}

// Collect hides the entity for the rest of the session. It reports whether the
// entity was visible before the call; hidden entities are never shown again.
func (e *Entity) Collect() bool {
	if !e.Visible {
		return false
	}
	e.Visible = false
	return true
}
