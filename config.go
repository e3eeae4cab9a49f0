package jigsaw

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the game's settings. Zero values are replaced by defaults.
type Config struct {
	Window        WindowConfig  `yaml:"window"`
	Board         BoardSettings `yaml:"board"`
	Theme         Theme         `yaml:"theme"`
	ScreenshotDir string        `yaml:"screenshot_dir"`
}

// WindowConfig sizes the game window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// BoardSettings holds the puzzle rules.
type BoardSettings struct {
	AreaSize          int        `yaml:"area_size"`
	SnapThreshold     float64    `yaml:"snap_threshold"`
	PlaceTolerance    float64    `yaml:"place_tolerance"`
	DefaultResolution Resolution `yaml:"default_resolution"`
}

// Theme holds the colors used by the view, as 0xRRGGBB values.
type Theme struct {
	Background uint32 `yaml:"background"`
	Area       uint32 `yaml:"area"`
	Grid       uint32 `yaml:"grid"`
	PickupTint uint32 `yaml:"pickup_tint"`
	Banner     uint32 `yaml:"banner"`
	Nav        uint32 `yaml:"nav"`
	Button     uint32 `yaml:"button"`
	Text       uint32 `yaml:"text"`
	Error      uint32 `yaml:"error"`
}

// DefaultTheme is the stock palette: light gray canvas, light
// green play area, white grid, green pickup tint.
var DefaultTheme = Theme{
	Background: 0xf0f0f0,
	Area:       0x90ee90,
	Grid:       0xffffff,
	PickupTint: 0x44ff44,
	Banner:     0xffffff,
	Nav:        0x2c3e50,
	Button:     0x3498db,
	Text:       0x333333,
	Error:      0xc0392b,
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.defaults()
	return cfg
}

func (c *Config) defaults() {
	if c.Window.Title == "" {
		c.Window.Title = "Jigsaw Puzzle Game"
	}
	if c.Window.Width <= 0 {
		c.Window.Width = 1024
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 720
	}
	if c.Board.AreaSize <= 0 {
		c.Board.AreaSize = DefaultAreaSize
	}
	if c.Board.SnapThreshold <= 0 {
		c.Board.SnapThreshold = DefaultSnapThreshold
	}
	if c.Board.PlaceTolerance <= 0 {
		c.Board.PlaceTolerance = DefaultPlaceTolerance
	}
	if c.Board.DefaultResolution == 0 {
		c.Board.DefaultResolution = DefaultResolution
	}
	if c.Theme == (Theme{}) {
		c.Theme = DefaultTheme
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
}

// Validate checks that the settings describe a playable game.
func (c *Config) Validate() error {
	if err := c.Board.DefaultResolution.Validate(); err != nil {
		return fmt.Errorf("config: default_resolution: %w", err)
	}
	if c.Board.AreaSize < MaxResolution {
		return fmt.Errorf("config: area_size %d is smaller than %d", c.Board.AreaSize, MaxResolution)
	}
	navSpace := c.Board.AreaSize + navHeight
	if c.Window.Width < c.Board.AreaSize || c.Window.Height < navSpace {
		return fmt.Errorf("config: window %dx%d cannot fit a %d play area below the nav bar",
			c.Window.Width, c.Window.Height, c.Board.AreaSize)
	}
	return nil
}

// LoadConfigFile reads a YAML config file over the defaults and validates
// the result. Keys missing from the file keep their default values.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.defaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
