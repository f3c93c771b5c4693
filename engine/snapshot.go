// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"github.com/gogpu/starbench/interact"
	"github.com/gogpu/starbench/metrics"
	"github.com/gogpu/starbench/render"
)

// Snapshot is a copy of the engine's observable state.
type Snapshot struct {
	// Entities is the number of stars in the scene.
	Entities int
	// FinalRadius is the radius of the generated stars.
	FinalRadius float64

	// Live holds the settings being edited; Committed the settings the
	// scene was generated from.
	Live      Settings
	Committed Settings
	// Pending is true while a commit waits for a non-empty surface.
	Pending bool

	Strategy    Strategy
	Trigger     Trigger
	Trail       bool
	ForceUnique bool
	TrailLen    int

	Running       bool
	Attached      bool
	Width, Height int

	State interact.State
	// Hovered and Dragged are star ids, or -1.
	Hovered int
	Dragged int

	Metrics metrics.Snapshot
	Cache   render.Stats
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Entities:    len(e.stars),
		FinalRadius: e.committed.FinalRadius(),
		Live:        e.live,
		Committed:   e.committed,
		Pending:     e.pending,
		Strategy:    e.strategy,
		Trigger:     e.trigger,
		Trail:       e.trailOn,
		ForceUnique: e.forceUnique,
		TrailLen:    e.trail.Len(),
		Running:     e.running,
		Attached:    e.dc != nil,
		Width:       e.width,
		Height:      e.height,
		State:       e.machine.State(),
		Hovered:     -1,
		Dragged:     -1,
		Metrics:     e.agg.Snapshot(),
		Cache:       e.layer.Stats(),
	}
	if h := e.machine.Hovered(); h != nil {
		s.Hovered = h.ID
	}
	if d := e.machine.Dragged(); d != nil {
		s.Dragged = d.ID
	}
	return s
}
