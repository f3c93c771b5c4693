// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package engine owns the star scene and draws it with one of several
// strategies, repainting only when something visible changed.
//
// An Engine is single-threaded: the host delivers pointer events, setter
// calls and scheduler ticks from one goroutine. Nothing in the engine
// locks.
//
// Typical host loop:
//
//	q := frame.NewQueue()
//	e := engine.New(engine.WithScheduler(q))
//	e.Attach(gg.NewContext(800, 600))
//	e.Start()
//	for now := range ticker.C {
//	    q.Fire(now)
//	    present(e.Surface())
//	}
package engine

import (
	"math/rand/v2"
	"time"

	"github.com/gogpu/gg"
	"github.com/jbeda/geom"

	"github.com/gogpu/starbench"
	"github.com/gogpu/starbench/frame"
	"github.com/gogpu/starbench/interact"
	"github.com/gogpu/starbench/metrics"
	"github.com/gogpu/starbench/render"
	"github.com/gogpu/starbench/shape"
	"github.com/gogpu/starbench/star"
)

// Engine is the draw loop and the state it draws.
type Engine struct {
	sched frame.Scheduler
	queue *frame.Queue // non-nil when the engine created its own scheduler
	clock metrics.Clock
	rng   *rand.Rand

	live      Settings
	committed Settings
	pending   bool // committed settings not yet generated

	stars       []*star.Star
	strategy    Strategy
	trigger     Trigger
	trailOn     bool
	forceUnique bool

	dc            *gg.Context
	width, height int

	layer   *render.Layer
	machine *interact.Machine
	trail   *interact.Trail
	agg     *metrics.Aggregator
	subs    listeners

	dirty   bool
	running bool
	tickID  frame.ID
}

// New creates an engine. The initial scene is generated when a non-empty
// surface is attached.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		sched:       o.scheduler,
		clock:       o.clock,
		rng:         o.rng,
		live:        o.settings,
		committed:   o.settings,
		pending:     true,
		strategy:    o.strategy,
		trigger:     o.trigger,
		trailOn:     o.trail,
		forceUnique: o.forceUnique,
		layer:       render.NewLayer(),
		machine:     interact.NewMachine(),
		trail:       interact.NewTrail(interact.TrailLength),
		agg:         metrics.NewAggregator(),
	}
	if e.sched == nil {
		e.queue = frame.NewQueue()
		e.sched = e.queue
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if !e.strategy.Valid() {
		e.strategy = Immediate
	}
	if !e.trigger.Valid() {
		e.trigger = Continuous
	}
	e.layer.SetForceUnique(o.forceUnique)
	return e
}

// Scheduler returns the frame queue the engine created when no scheduler
// was given, or nil.
func (e *Engine) Scheduler() *frame.Queue {
	return e.queue
}

// Attach binds the engine to a drawing surface. A pending commit is
// generated now if the surface has an area.
func (e *Engine) Attach(dc *gg.Context) {
	if dc == nil {
		e.Detach()
		return
	}
	e.dc = dc
	e.width, e.height = dc.Width(), dc.Height()
	e.layer.Attach(e.width, e.height)
	e.dirty = true
	starbench.Logger().Info("engine: surface attached", "width", e.width, "height", e.height)
	e.regenerate()
}

// Detach unbinds the surface. Drawing and cache building stop until the
// next Attach; cached artifacts are kept.
func (e *Engine) Detach() {
	if e.dc == nil {
		return
	}
	e.dc = nil
	e.layer.Detach()
	starbench.Logger().Info("engine: surface detached")
}

// Surface returns the attached surface, or nil.
func (e *Engine) Surface() *gg.Context {
	return e.dc
}

// Resize changes the viewport. Existing stars keep their positions; a
// commit that was deferred for lack of area is generated now.
func (e *Engine) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == e.width && height == e.height {
		return
	}
	e.width, e.height = width, height
	if e.dc != nil && width > 0 && height > 0 {
		if err := e.dc.Resize(width, height); err != nil {
			starbench.Logger().Warn("engine: surface resize failed", "err", err)
		}
	}
	e.layer.Resize(width, height)
	e.dirty = true
	e.regenerate()
}

// SetCount sets the live count of one kind. Negative counts become 0.
func (e *Engine) SetCount(kind shape.Kind, n int) {
	if int(kind) >= shape.NumKinds {
		return
	}
	e.live.Counts[kind] = max(n, 0)
}

// SetCounts sets every live count.
func (e *Engine) SetCounts(c star.Counts) {
	for i := range c {
		c[i] = max(c[i], 0)
	}
	e.live.Counts = c
}

// SetRadius sets the live base radius. Non-positive values are ignored.
func (e *Engine) SetRadius(r float64) {
	if r <= 0 {
		return
	}
	e.live.Radius = r
}

// SetMultiplier enables or disables radius multiplier i (0 or 1).
func (e *Engine) SetMultiplier(i int, on bool) {
	if i < 0 || i >= len(e.live.Multipliers) {
		return
	}
	e.live.Multipliers[i] = on
}

// Commit promotes the live settings and regenerates the scene. Without a
// non-empty surface the regeneration waits for the next Attach or Resize.
func (e *Engine) Commit() {
	e.committed = e.live
	e.pending = true
	e.regenerate()
}

func (e *Engine) regenerate() {
	if !e.pending {
		return
	}
	if e.dc == nil {
		starbench.Logger().Debug("engine: commit deferred until attach")
		return
	}
	if e.width <= 0 || e.height <= 0 {
		starbench.Logger().Warn("engine: commit deferred, viewport has no area",
			"width", e.width, "height", e.height)
		return
	}
	e.pending = false
	e.stars = star.Generate(e.committed.Counts, float64(e.width), float64(e.height),
		e.committed.FinalRadius(), e.rng)
	e.machine.SetStars(e.stars)
	e.layer.Reset(e.stars)
	e.dirty = true
	starbench.Logger().Info("engine: scene generated",
		"stars", len(e.stars), "radius", e.committed.FinalRadius())
	e.subs.publish(Event{Kind: EventCommit, Entities: len(e.stars), StarID: -1})
}

// SetStrategy switches the drawing strategy. Every strategy cache is
// dropped; stars are untouched.
func (e *Engine) SetStrategy(s Strategy) {
	if s == e.strategy || !s.Valid() {
		return
	}
	e.strategy = s
	e.layer.InvalidateAll()
	e.dirty = true
	starbench.Logger().Info("engine: strategy changed", "strategy", s.String())
}

// SetTrigger switches what samples the trail. Invalid triggers are
// ignored.
func (e *Engine) SetTrigger(t Trigger) {
	if !t.Valid() {
		return
	}
	e.trigger = t
}

// SetTrail shows or hides the pointer trail. A hidden trail is emptied
// on the next tick.
func (e *Engine) SetTrail(on bool) {
	e.trailOn = on
}

// SetForceUnique gives every star its own sprite instead of sharing one
// per colour, radius and kind.
func (e *Engine) SetForceUnique(on bool) {
	if on == e.forceUnique {
		return
	}
	e.forceUnique = on
	e.layer.SetForceUnique(on)
	e.dirty = true
}

// Start begins scheduling ticks. Starting a running engine does nothing.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.dirty = true
	e.tickID = e.sched.RequestFrame(e.tick)
}

// Stop cancels the pending tick. No tick runs after Stop returns.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	if e.tickID != 0 {
		e.sched.CancelFrame(e.tickID)
		e.tickID = 0
	}
}

// Running reports whether ticks are scheduled.
func (e *Engine) Running() bool {
	return e.running
}

func (e *Engine) tick(now time.Time) {
	e.tickID = 0
	if !e.running {
		return
	}
	e.agg.Tick(now)

	if e.trigger == Continuous && e.trailOn {
		if p, inside := e.machine.Pointer(); inside {
			e.trail.Push(p)
			e.dirty = true
		}
	}
	if !e.trailOn && e.trail.Clear() {
		e.dirty = true
	}

	if e.dirty && e.dc != nil && e.width > 0 && e.height > 0 {
		e.repaint()
	}
	// A listener may have stopped or restarted the engine during repaint.
	if e.running && e.tickID == 0 {
		e.tickID = e.sched.RequestFrame(e.tick)
	}
}

func (e *Engine) repaint() {
	start := e.clock.Now()
	e.dispatch()
	d := e.clock.Now().Sub(start)
	e.agg.Rendered(d, len(e.stars))
	e.dirty = false
	e.subs.publish(Event{Kind: EventFrame, Duration: d, Strategy: e.strategy, StarID: -1})
}

// PointerDown starts a drag when (x, y) is over a star.
func (e *Engine) PointerDown(x, y float64) {
	e.apply(e.machine.Down(geom.Coord{X: x, Y: y}))
}

// PointerMove moves the dragged star, or updates the hovered one.
func (e *Engine) PointerMove(x, y float64) {
	p := geom.Coord{X: x, Y: y}
	tr := e.machine.Move(p)
	if e.trigger == EventDriven && e.trailOn {
		e.trail.Push(p)
		e.dirty = true
	}
	e.apply(tr)
}

// PointerUp ends a drag.
func (e *Engine) PointerUp() {
	e.apply(e.machine.Up())
}

// PointerLeave clears the trail and hover and ends any drag.
func (e *Engine) PointerLeave() {
	if e.trail.Clear() {
		e.dirty = true
	}
	e.apply(e.machine.Leave())
}

func (e *Engine) apply(tr interact.Transition) {
	if !tr.Redraw() {
		return
	}
	id := -1
	if tr.Star != nil {
		id = tr.Star.ID
	}
	switch tr.Change {
	case interact.DragMoved, interact.DragReleased:
		e.layer.EvictPath(id)
	}
	e.dirty = true
	e.subs.publish(Event{Kind: EventInteraction, Change: tr.Change, StarID: id})
}

// Subscribe registers l for engine events and returns a function that
// removes it.
func (e *Engine) Subscribe(l Listener) (unsubscribe func()) {
	return e.subs.add(l)
}

// Stars returns a copy of the scene in draw order.
func (e *Engine) Stars() []star.Star {
	out := make([]star.Star, len(e.stars))
	for i, s := range e.stars {
		out[i] = *s
	}
	return out
}

// Star returns a copy of the star with the given id.
func (e *Engine) Star(id int) (star.Star, bool) {
	for _, s := range e.stars {
		if s.ID == id {
			return *s, true
		}
	}
	return star.Star{}, false
}

// ResetMetrics clears the metric series.
func (e *Engine) ResetMetrics() {
	e.agg.Reset()
}
