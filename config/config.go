// Package config loads the game's settings file. The file is JSON; it is read
// with a YAML decoder, which accepts JSON as-is.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full settings file.
type Config struct {
	Window Window `yaml:"window"`
	Assets Assets `yaml:"assets"`
	Scene  Scene  `yaml:"scene"`
}

// Window describes the game window.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Assets holds the file paths of every asset the game loads.
type Assets struct {
	BackgroundMusic string `yaml:"background_music"`
	DogTexture      string `yaml:"dog_texture"`
	CookieTexture   string `yaml:"cookie_texture"`
	BgTexture       string `yaml:"bg_texture"`
	EatSound        string `yaml:"eat_sound"`
}

// Scene holds optional gameplay tuning.
type Scene struct {
	MoveSpeed float32 `yaml:"move_speed"`

	// AllowMissingTextures lets the game start with blank sprites when a
	// texture fails to load.
	AllowMissingTextures bool `yaml:"allow_missing_textures"`
}

// Default returns the settings used for any field the file leaves out.
func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Cookie Dog",
		},
		Scene: Scene{
			MoveSpeed: 4.0,
		},
	}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a config document.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the window is usable and every asset path is set.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if c.Scene.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("%w: scene.move_speed must be positive, got %v", ErrInvalid, c.Scene.MoveSpeed))
	}

	required := []struct {
		key   string
		value string
	}{
		{"assets.background_music", c.Assets.BackgroundMusic},
		{"assets.dog_texture", c.Assets.DogTexture},
		{"assets.cookie_texture", c.Assets.CookieTexture},
		{"assets.bg_texture", c.Assets.BgTexture},
		{"assets.eat_sound", c.Assets.EatSound},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%w: %s is required", ErrInvalid, r.key))
		}
	}

	return errors.Join(errs...)
}
