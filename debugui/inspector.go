package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cookiedog/render"
	"github.com/plus3/cookiedog/scene"
)

const (
	minPlayerSize = 0.5
	maxPlayerSize = 5.0
	minAmbient    = 0.1
	maxAmbient    = 1.0
	dragSpeed     = 0.1
)

// Inspector edits the player and the camera while the scene runs.
type Inspector struct {
	world    *scene.World
	renderer *render.Renderer
}

// NewInspector creates an inspector over world and renderer.
func NewInspector(world *scene.World, renderer *render.Renderer) *Inspector {
	return &Inspector{world: world, renderer: renderer}
}

func (i *Inspector) Render(dt float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	player := i.world.Player
	imgui.Text("Dog Control")
	imgui.DragFloat3V("Position", (*[3]float32)(&player.Position), dragSpeed, 0, 0, "%.3f", imgui.SliderFlagsNone)
	imgui.SliderFloat("Size", &player.Size, minPlayerSize, maxPlayerSize)

	imgui.Separator()
	imgui.Text("Scene Control")
	imgui.DragFloat3V("Cam Position", (*[3]float32)(&i.renderer.Camera.Position), dragSpeed, 0, 0, "%.3f", imgui.SliderFlagsNone)
	imgui.SliderFloat("Ambient", &i.renderer.Lighting.Ambient, minAmbient, maxAmbient)

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Cookies: %d / %d", i.world.Collected(), len(i.world.Collectibles)))

	imgui.End()
}
