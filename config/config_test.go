// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/starbench/engine"
	"github.com/gogpu/starbench/shape"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	s := cfg.Scene.Settings()
	if s.Counts.Total() != engine.DefaultCircles || s.FinalRadius() != engine.DefaultRadius {
		t.Errorf("default scene = %+v", s)
	}
	if got := cfg.Bench.StrategyList(); !slices.Equal(got, engine.Strategies[:]) {
		t.Errorf("StrategyList = %v, want all", got)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/drag.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.Viewport != (Viewport{Width: 640, Height: 480}) {
		t.Errorf("viewport = %+v", cfg.Viewport)
	}
	counts := cfg.Scene.Counts()
	if counts[shape.Circle] != 1000 || counts[shape.Hexagon] != 250 || counts[shape.Square] != 0 {
		t.Errorf("counts = %v", counts)
	}
	if got := cfg.Scene.Settings().FinalRadius(); got != 40 {
		t.Errorf("final radius = %v, want 40", got)
	}
	if cfg.Render.Strategy != engine.PathTranslate {
		t.Errorf("strategy = %v, want path-translate", cfg.Render.Strategy)
	}
	if cfg.Render.Trigger != engine.EventDriven {
		t.Errorf("trigger = %v, want event", cfg.Render.Trigger)
	}
	if cfg.Render.Trail || !cfg.Render.ForceUnique {
		t.Errorf("render = %+v", cfg.Render)
	}
	if got := cfg.Bench.StrategyList(); !slices.Equal(got, []engine.Strategy{engine.Immediate, engine.Composited}) {
		t.Errorf("bench strategies = %v", got)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Bench.FPS != 60 {
		t.Errorf("bench fps = %d, want default 60", cfg.Bench.FPS)
	}
	if cfg.View != (View{FPS: 20, Sound: true}) {
		t.Errorf("view = %+v", cfg.View)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) err = %v, want os.ErrNotExist", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool
		want    error
	}{
		{"unknown strategy", "render:\n  strategy: naive\n", false, engine.ErrUnknownStrategy},
		{"unknown trigger", "render:\n  trigger: raf\n", false, engine.ErrUnknownTrigger},
		{"zero width", "viewport:\n  width: 0\n", true, nil},
		{"negative count", "scene:\n  triangles: -1\n", true, nil},
		{"zero radius", "scene:\n  radius: 0\n", true, nil},
		{"view fps too high", "view:\n  fps: 1000\n", true, nil},
		{"bench frames", "bench:\n  frames: 0\n", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
			if tt.want != nil && !strings.Contains(err.Error(), tt.want.Error()) {
				t.Errorf("err = %v, want mention of %v", err, tt.want)
			}
		})
	}
}

func TestMarshalUsesNames(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, want := range []string{"strategy: immediate", "trigger: continuous", "circles: 5000"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q:\n%s", want, data)
		}
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())) failed: %v", err)
	}
	if back.Render != Default().Render || back.Scene != Default().Scene {
		t.Errorf("decoded %+v, want defaults", back)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	cfg.Scene.Circles = 12
	cfg.Render.Strategy = engine.Composited

	e := engine.New(cfg.EngineOptions()...)
	s := e.Snapshot()
	if s.Strategy != engine.Composited {
		t.Errorf("strategy = %v", s.Strategy)
	}
	if s.Committed.Counts[shape.Circle] != 12 {
		t.Errorf("committed circles = %d, want 12", s.Committed.Counts[shape.Circle])
	}
}
