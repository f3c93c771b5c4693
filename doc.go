// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package starbench is a benchmarking sandbox for 2D drawing strategies.
//
// # Overview
//
// starbench renders thousands of independently movable shapes ("stars") with
// gg and lets an operator compare how different drawing strategies behave
// while the scene is being dragged around:
//
//   - immediate: every star is traced and filled from entity data each frame
//   - path-absolute: retained path per star, in surface coordinates
//   - path-translate: one retained path per (kind, radius), drawn translated
//   - composited: stars pre-rendered into a background bitmap, with sprite
//     overlays for the hovered and dragged star
//
// # Packages
//
//   - shape: shape kinds and regular polygon outlines
//   - star: the entity model and seeded scene generator
//   - cache: keyed store with hit/miss statistics
//   - render: sprite, path and background caches
//   - metrics: FPS, draws per second, frame time and per-star cost
//   - interact: hover/drag state machine and pointer trail
//   - frame: next-tick scheduler port
//   - engine: the draw loop that ties everything together
//   - config: YAML configuration
//   - bench: headless scripted-drag benchmark and report
//
// The starbench command (cmd/starbench) runs the benchmark or shows the
// scene in a terminal.
//
// # Quick Start
//
//	q := frame.NewQueue()
//	e := engine.New(engine.WithScheduler(q))
//	e.Attach(gg.NewContext(800, 600))
//	e.SetCount(shape.Circle, 5000)
//	e.Commit()
//	e.Start()
//	q.Fire(time.Now()) // one tick
//
// # Logging
//
// Nothing is logged by default. Call SetLogger to enable output.
package starbench
