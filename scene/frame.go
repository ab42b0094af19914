package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/cookiedog/sprite"
	"github.com/plus3/cookiedog/texture"
)

// System is one step of a tick. Systems run in registration order against the
// same Frame, so later systems observe what earlier ones changed.
type System interface {
	Execute(frame *Frame)
}

// Frame carries the state of a single tick through the systems.
type Frame struct {
	DeltaTime float64
	Input     Input
	World     *World
	Effects   *Effects

	// Collected lists the entities hidden by this tick's collisions.
	Collected []*sprite.Entity

	// Draws is the frame's draw list in submission order.
	Draws []DrawCommand
}

// DrawCommand asks the renderer to draw one textured quad.
type DrawCommand struct {
	Texture  texture.Handle
	Model    mgl32.Mat4
	Position mgl32.Vec3
}

func drawCommandFor(e *sprite.Entity) DrawCommand {
	return DrawCommand{
		Texture:  e.Texture,
		Model:    e.Model(),
		Position: e.Position,
	}
}

func newFrame(dt float64, in Input, world *World) *Frame {
	return &Frame{
		DeltaTime: dt,
		Input:     in,
		World:     world,
		Effects:   newEffects(),
	}
}
