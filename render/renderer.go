package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cookiedog/scene"
	"github.com/plus3/cookiedog/texture"
)

var clearColor = color.RGBA{R: 26, G: 26, B: 26, A: 255}

// quad is the unit sprite quad centered on the origin, wound like the index
// list below.
var quad = [4]mgl32.Vec3{
	{0.5, 0.5, 0},
	{0.5, -0.5, 0},
	{-0.5, -0.5, 0},
	{-0.5, 0.5, 0},
}

// quadUV maps each quad corner to its position in the source image, as a
// fraction of its size.
var quadUV = [4]mgl32.Vec2{
	{1, 0},
	{1, 1},
	{0, 1},
	{0, 0},
}

var quadIndices = []uint16{0, 1, 3, 1, 2, 3}

// ImageSource resolves texture handles to uploaded images.
type ImageSource interface {
	Image(h texture.Handle) *ebiten.Image
}

// Renderer implements scene.Renderer for one Ebiten screen per frame.
type Renderer struct {
	Camera   Camera
	Lighting Lighting

	images   ImageSource
	screen   *ebiten.Image
	viewProj mgl32.Mat4
	vertices []ebiten.Vertex
	drawn    int
}

// NewRenderer creates a renderer with the default camera and lighting.
func NewRenderer(images ImageSource) *Renderer {
	return &Renderer{
		Camera:   DefaultCamera(),
		Lighting: DefaultLighting(),
		images:   images,
		vertices: make([]ebiten.Vertex, len(quad)),
	}
}

// Begin clears screen and prepares the camera for its size.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.drawn = 0
	screen.Fill(clearColor)

	bounds := screen.Bounds()
	aspect := float32(1)
	if bounds.Dy() > 0 {
		aspect = float32(bounds.Dx()) / float32(bounds.Dy())
	}
	r.viewProj = r.Camera.Projection(aspect).Mul4(r.Camera.View())
}

// DrawSprite draws one textured quad. Commands whose texture has no image,
// including the sentinel handle, draw nothing.
func (r *Renderer) DrawSprite(cmd scene.DrawCommand) {
	if r.screen == nil {
		return
	}
	img := r.images.Image(cmd.Texture)
	if img == nil {
		return
	}

	bounds := r.screen.Bounds()
	src := img.Bounds()
	mvp := r.viewProj.Mul4(cmd.Model)

	for i, corner := range quad {
		dst, ok := Project(mvp, corner, bounds.Dx(), bounds.Dy())
		if !ok {
			return
		}
		world := cmd.Model.Mul4x1(corner.Vec4(1)).Vec3()
		shade := r.Lighting.Shade(world)

		r.vertices[i] = ebiten.Vertex{
			DstX:   dst.X(),
			DstY:   dst.Y(),
			SrcX:   float32(src.Min.X) + quadUV[i].X()*float32(src.Dx()),
			SrcY:   float32(src.Min.Y) + quadUV[i].Y()*float32(src.Dy()),
			ColorR: shade,
			ColorG: shade,
			ColorB: shade,
			ColorA: 1,
		}
	}

	r.screen.DrawTriangles(r.vertices, quadIndices, img, &ebiten.DrawTrianglesOptions{
		Filter: ebiten.FilterLinear,
	})
	r.drawn++
}

// Present ends the frame. Ebiten shows the screen once Draw returns, so there
// is nothing left to flush.
func (r *Renderer) Present() {
	r.screen = nil
}

// Drawn returns how many sprites were drawn since Begin.
func (r *Renderer) Drawn() int {
	return r.drawn
}
