package config

import (
	"fmt"
	"os"

	"github.com/san-kum/sortwiz/internal/layout"
	"github.com/san-kum/sortwiz/internal/logging"
	"github.com/san-kum/sortwiz/internal/stepper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCount     = 100
	DefaultMin       = 0
	DefaultMax       = 200
	DefaultWidth     = 1200
	DefaultHeight    = 1000
	DefaultFPS       = 60
	DefaultSpeed     = 1
	DefaultAlgorithm = "bubble"
	DefaultTheme     = "ocean"
)

type Config struct {
	Count      int     `yaml:"count"`
	Min        int64   `yaml:"min"`
	Max        int64   `yaml:"max"`
	Seed       int64   `yaml:"seed"`
	Algorithm  string  `yaml:"algorithm"`
	Descending bool    `yaml:"descending"`
	Canvas     Canvas  `yaml:"canvas"`
	Display    Display `yaml:"display"`

	Log logging.Options `yaml:"log"`
}

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Display struct {
	FPS   int    `yaml:"fps"`
	Speed int    `yaml:"speed"`
	Theme string `yaml:"theme"`
	Sound bool   `yaml:"sound"`
}

func DefaultConfig() *Config {
	return &Config{
		Count:     DefaultCount,
		Min:       DefaultMin,
		Max:       DefaultMax,
		Algorithm: DefaultAlgorithm,
		Canvas: Canvas{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Display: Display{
			FPS:   DefaultFPS,
			Speed: DefaultSpeed,
			Theme: DefaultTheme,
		},
		Log: logging.DefaultOptions(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings that cannot produce a drawable run.
func (c *Config) Validate() error {
	switch {
	case c.Count < 1:
		return fmt.Errorf("%w: count must be positive, got %d", stepper.ErrInvalidConfiguration, c.Count)
	case c.Min > c.Max:
		return fmt.Errorf("%w: min %d > max %d", stepper.ErrInvalidConfiguration, c.Min, c.Max)
	case c.Canvas.Width <= layout.SidePad || c.Canvas.Height <= layout.TopPad:
		return fmt.Errorf("%w: canvas %dx%d too small", stepper.ErrInvalidConfiguration, c.Canvas.Width, c.Canvas.Height)
	case c.Display.FPS < 1:
		return fmt.Errorf("%w: fps must be positive, got %d", stepper.ErrInvalidConfiguration, c.Display.FPS)
	case c.Display.Speed < 1:
		return fmt.Errorf("%w: speed must be positive, got %d", stepper.ErrInvalidConfiguration, c.Display.Speed)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %v", stepper.ErrInvalidConfiguration, err)
	}
	if _, err := stepper.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	return nil
}

func (c *Config) GetAlgorithm() stepper.Algorithm {
	a, err := stepper.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return stepper.BubbleSort
	}
	return a
}

func (c *Config) GetDirection() stepper.Direction {
	if c.Descending {
		return stepper.Descending
	}
	return stepper.Ascending
}
