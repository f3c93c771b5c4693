// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package bench runs a scripted drag through each drawing strategy and
// reports what every repaint cost.
package bench

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/starbench"
	"github.com/gogpu/starbench/config"
	"github.com/gogpu/starbench/engine"
	"github.com/gogpu/starbench/frame"
	"github.com/gogpu/starbench/internal/hud"
	"github.com/gogpu/starbench/metrics"
	"github.com/gogpu/starbench/render"
)

// Result is the outcome of one strategy run.
type Result struct {
	Strategy engine.Strategy
	Entities int
	Ticks    int
	Repaints int

	// Total is the summed repaint time; Mean and Max summarize it.
	Total time.Duration
	Mean  time.Duration
	Max   time.Duration

	// PerEntity is the mean repaint time per star, in microseconds.
	PerEntity float64

	Metrics metrics.Snapshot
	Cache   render.Stats

	// Snapshot is the PNG written for this run, if any.
	Snapshot string
}

// Runner executes benchmark runs.
type Runner struct {
	cfg   config.Config
	clock metrics.Clock
	hud   *hud.HUD
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces the clock used to time repaints.
func WithClock(c metrics.Clock) Option {
	return func(r *Runner) {
		r.clock = c
	}
}

// WithHUD draws a metrics panel onto saved snapshots.
func WithHUD(h *hud.HUD) Option {
	return func(r *Runner) {
		r.hud = h
	}
}

// NewRunner creates a runner for cfg.
func NewRunner(cfg config.Config, opts ...Option) *Runner {
	r := &Runner{cfg: cfg, clock: metrics.SystemClock{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run benchmarks every configured strategy in order. It stops early with
// ctx.Err() when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	var results []Result
	for _, s := range r.cfg.Bench.StrategyList() {
		res, err := r.RunStrategy(ctx, s)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RunStrategy commits the configured scene, grabs the top-most star and
// drags it once around a circle, one tick per step.
func (r *Runner) RunStrategy(ctx context.Context, s engine.Strategy) (Result, error) {
	cfg := r.cfg
	q := frame.NewQueue()
	opts := append(cfg.EngineOptions(),
		engine.WithScheduler(q),
		engine.WithClock(r.clock),
		engine.WithStrategy(s),
	)
	e := engine.New(opts...)

	res := Result{Strategy: s}
	unsubscribe := e.Subscribe(func(ev engine.Event) {
		if ev.Kind != engine.EventFrame {
			return
		}
		res.Repaints++
		res.Total += ev.Duration
		res.Max = max(res.Max, ev.Duration)
	})
	defer unsubscribe()

	dc := gg.NewContext(cfg.Viewport.Width, cfg.Viewport.Height)
	e.Attach(dc)
	e.Start()
	defer e.Stop()

	interval := time.Second / time.Duration(cfg.Bench.FPS)
	now := time.Unix(0, 0)
	fire := func() {
		now = now.Add(interval)
		q.Fire(now)
		res.Ticks++
	}

	fire()
	stars := e.Stars()
	res.Entities = len(stars)
	if len(stars) > 0 {
		target := stars[len(stars)-1]
		e.PointerMove(target.X, target.Y)
		e.PointerDown(target.X, target.Y)
		for i := range cfg.Bench.Frames {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			angle := 2 * math.Pi * float64(i+1) / float64(cfg.Bench.Frames)
			e.PointerMove(
				target.X+cfg.Bench.DragRadius*(math.Cos(angle)-1),
				target.Y+cfg.Bench.DragRadius*math.Sin(angle),
			)
			fire()
		}
		e.PointerUp()
		fire()
	}

	snap := e.Snapshot()
	res.Metrics = snap.Metrics
	res.Cache = snap.Cache
	if res.Repaints > 0 {
		res.Mean = res.Total / time.Duration(res.Repaints)
	}
	if res.Entities > 0 {
		res.PerEntity = float64(res.Mean) / float64(time.Microsecond) / float64(res.Entities)
	}

	if dir := cfg.Bench.SnapshotDir; dir != "" {
		path, err := r.saveSnapshot(dc, dir, snap)
		if err != nil {
			return res, err
		}
		res.Snapshot = path
	}

	starbench.Logger().Info("bench: strategy done",
		"strategy", s.String(), "repaints", res.Repaints, "mean", res.Mean)
	return res, nil
}

func (r *Runner) saveSnapshot(dc *gg.Context, dir string, snap engine.Snapshot) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("bench: create snapshot dir: %w", err)
	}
	if r.hud != nil {
		r.hud.Draw(dc, 8, 8, hud.Lines(snap))
	}
	path := filepath.Join(dir, snap.Strategy.String()+".png")
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("bench: save snapshot: %w", err)
	}
	return path, nil
}
