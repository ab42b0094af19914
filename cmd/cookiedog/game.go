package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cookiedog/audio"
	"github.com/plus3/cookiedog/debugui"
	debugui_ebiten "github.com/plus3/cookiedog/debugui/ebiten"
	"github.com/plus3/cookiedog/render"
	"github.com/plus3/cookiedog/scene"
)

// Game implements ebiten.Game: Update builds the UI and ticks the scene, Draw
// renders the last tick's draw list under the UI overlay.
type Game struct {
	loop     *scene.Loop
	renderer *render.Renderer
	ui       *debugui.UI
	imgui    *debugui_ebiten.ImguiBackend
	sounds   *audio.Manager

	// timer measures the UI's frame time; the scene keeps its own clock.
	timer *scene.Clock
}

func (g *Game) Update() error {
	dt := float32(g.timer.Delta())
	g.imgui.Frame(func() {
		g.ui.Render(dt)
	})

	in := scene.Input{
		Up:        ebiten.IsKeyPressed(ebiten.KeyW),
		Down:      ebiten.IsKeyPressed(ebiten.KeyS),
		Left:      ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD),
		UICapture: g.ui.Input.WantCaptureKeyboard,
		Close:     ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape),
	}

	if g.loop.Tick(in) == scene.Terminating {
		return ebiten.Termination
	}

	g.sounds.Update(g.loop.Frame().DeltaTime)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.loop.Render(g.renderer)
	g.imgui.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
