// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the YAML configuration shared by the benchmark
// runner and the terminal viewer.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/starbench/engine"
	"github.com/gogpu/starbench/shape"
	"github.com/gogpu/starbench/star"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of a configuration file.
type Config struct {
	// Seed drives scene generation. Zero picks a random seed.
	Seed     uint64   `yaml:"seed"`
	Viewport Viewport `yaml:"viewport"`
	Scene    Scene    `yaml:"scene"`
	Render   Render   `yaml:"render"`
	Bench    Bench    `yaml:"bench"`
	View     View     `yaml:"view"`
}

// Viewport is the surface size in pixels.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Scene is the number of stars of each kind and their size.
type Scene struct {
	Circles     int     `yaml:"circles"`
	Triangles   int     `yaml:"triangles"`
	Squares     int     `yaml:"squares"`
	Pentagons   int     `yaml:"pentagons"`
	Hexagons    int     `yaml:"hexagons"`
	Radius      float64 `yaml:"radius"`
	Multipliers [2]bool `yaml:"multipliers,flow"`
}

// Render holds the drawing options.
type Render struct {
	Strategy    engine.Strategy `yaml:"strategy"`
	Trigger     engine.Trigger  `yaml:"trigger"`
	Trail       bool            `yaml:"trail"`
	ForceUnique bool            `yaml:"force_unique"`
}

// Bench configures the headless benchmark.
type Bench struct {
	// Strategies to run, in order. Empty runs every strategy.
	Strategies []engine.Strategy `yaml:"strategies,flow"`
	// Frames is the number of ticks per strategy.
	Frames int `yaml:"frames"`
	// FPS is the simulated tick rate.
	FPS int `yaml:"fps"`
	// DragRadius is the radius of the scripted circular drag, in pixels.
	DragRadius float64 `yaml:"drag_radius"`
	// SnapshotDir receives one PNG per strategy when non-empty.
	SnapshotDir string `yaml:"snapshot_dir"`
}

// View configures the terminal viewer.
type View struct {
	FPS   int  `yaml:"fps"`
	Sound bool `yaml:"sound"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 800, Height: 600},
		Scene: Scene{
			Circles: engine.DefaultCircles,
			Radius:  engine.DefaultRadius,
		},
		Render: Render{
			Strategy: engine.Immediate,
			Trigger:  engine.Continuous,
			Trail:    true,
		},
		Bench: Bench{
			Frames:     120,
			FPS:        60,
			DragRadius: 40,
		},
		View: View{FPS: 30},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config YAML: %w", err)
	}
	return data, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d must have positive size", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	case c.Scene.Radius <= 0:
		return fmt.Errorf("%w: scene radius %v must be positive", ErrInvalid, c.Scene.Radius)
	case c.Bench.Frames <= 0:
		return fmt.Errorf("%w: bench frames %d must be positive", ErrInvalid, c.Bench.Frames)
	case c.Bench.FPS <= 0:
		return fmt.Errorf("%w: bench fps %d must be positive", ErrInvalid, c.Bench.FPS)
	case c.Bench.DragRadius < 0:
		return fmt.Errorf("%w: bench drag radius %v must not be negative", ErrInvalid, c.Bench.DragRadius)
	case c.View.FPS <= 0 || c.View.FPS > 240:
		return fmt.Errorf("%w: view fps %d must be in 1..240", ErrInvalid, c.View.FPS)
	}
	for i, n := range c.Scene.Counts() {
		if n < 0 {
			return fmt.Errorf("%w: %s count %d must not be negative", ErrInvalid, shape.Kind(i), n)
		}
	}
	return nil
}

// Counts returns the scene counts indexed by kind.
func (s Scene) Counts() star.Counts {
	var c star.Counts
	c[shape.Circle] = s.Circles
	c[shape.Triangle] = s.Triangles
	c[shape.Square] = s.Squares
	c[shape.Pentagon] = s.Pentagons
	c[shape.Hexagon] = s.Hexagons
	return c
}

// Settings returns the engine scene settings.
func (s Scene) Settings() engine.Settings {
	return engine.Settings{
		Counts:      s.Counts(),
		Radius:      s.Radius,
		Multipliers: s.Multipliers,
	}
}

// StrategyList returns the bench strategies, or every strategy when none
// are listed.
func (b Bench) StrategyList() []engine.Strategy {
	if len(b.Strategies) == 0 {
		return slices.Clone(engine.Strategies[:])
	}
	return b.Strategies
}

// EngineOptions returns the engine options described by c.
func (c Config) EngineOptions() []engine.Option {
	opts := []engine.Option{
		engine.WithSettings(c.Scene.Settings()),
		engine.WithStrategy(c.Render.Strategy),
		engine.WithTrigger(c.Render.Trigger),
		engine.WithTrail(c.Render.Trail),
		engine.WithForceUnique(c.Render.ForceUnique),
	}
	if c.Seed != 0 {
		opts = append(opts, engine.WithSeed(c.Seed))
	}
	return opts
}
