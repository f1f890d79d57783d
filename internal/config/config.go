package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no config path is given
const EnvConfigPath = "CHUNKVIEW_CONFIG"

// Config is the chunk viewer configuration
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type TerrainConfig struct {
	Seed       int64   `yaml:"seed"`
	Scale      float64 `yaml:"scale"`
	BaseHeight int     `yaml:"base_height"`
	Amplitude  int     `yaml:"amplitude"`
	StoneDepth int     `yaml:"stone_depth"`
}

type RenderConfig struct {
	Wireframe bool `yaml:"wireframe"`
	FPSLimit  int  `yaml:"fps_limit"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 900, Height: 600, Title: "chunkview"},
		Terrain: TerrainConfig{
			Seed:       1,
			Scale:      0.08,
			BaseHeight: 6,
			Amplitude:  6,
			StoneDepth: 3,
		},
		Render: RenderConfig{FPSLimit: 120},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of the defaults. An empty path falls back to
// $CHUNKVIEW_CONFIG; if that is unset too the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the viewer cannot run with
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Terrain.Scale <= 0 {
		return fmt.Errorf("terrain scale must be positive, got %v", c.Terrain.Scale)
	}
	if c.Terrain.Amplitude < 0 || c.Terrain.StoneDepth < 0 {
		return fmt.Errorf("terrain amplitude and stone depth must not be negative")
	}
	if c.Render.FPSLimit < 0 {
		return fmt.Errorf("fps limit must not be negative, got %d", c.Render.FPSLimit)
	}
	return nil
}
