package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cookiedog/audio"
	"github.com/plus3/cookiedog/config"
	"github.com/plus3/cookiedog/debugui"
	debugui_ebiten "github.com/plus3/cookiedog/debugui/ebiten"
	"github.com/plus3/cookiedog/render"
	"github.com/plus3/cookiedog/scene"
	"github.com/plus3/cookiedog/texture"
	texture_ebiten "github.com/plus3/cookiedog/texture/ebiten"
)

const statsHistoryFrames = 120

func main() {
	configPath := flag.String("config", "config.json", "Path to the game configuration file.")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Printf("cookiedog: %v", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	sounds := audio.NewManager(nil)
	if err := sounds.Init(); err != nil {
		return err
	}
	defer sounds.Close()
	sounds.PlayMusic(cfg.Assets.BackgroundMusic)

	imguiBackend := debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowClosingHandled(true)

	registry := texture_ebiten.NewRegistry()
	cache := texture.NewCache(texture.FileDecoder{}, registry)

	err = scene.LoadTextures(cache, scene.TexturePaths{
		Player:      cfg.Assets.DogTexture,
		Collectible: cfg.Assets.CookieTexture,
		Background:  cfg.Assets.BgTexture,
	})
	if err != nil {
		if !cfg.Scene.AllowMissingTextures {
			cache.ReleaseAll()
			return fmt.Errorf("load textures: %w", err)
		}
		log.Printf("continuing with blank sprites: %v", err)
	}

	world := scene.NewWorld(cache, cfg.Assets.EatSound)
	world.MoveSpeed = cfg.Scene.MoveSpeed

	renderer := render.NewRenderer(registry)
	loop := scene.NewLoop(world, cache, sounds)

	ui := debugui.New(
		debugui.NewInspector(world, renderer),
		debugui.NewPerformanceStats(loop, cache, statsHistoryFrames),
	)

	game := &Game{
		loop:     loop,
		renderer: renderer,
		ui:       ui,
		imgui:    imguiBackend,
		sounds:   sounds,
		timer:    scene.NewClock(nil),
	}
	game.timer.Start()

	log.Printf("scene running: %d cookies", len(world.Collectibles))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
