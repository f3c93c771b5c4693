// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package metrics

import "time"

// Window is the length of the rolling counter window.
const Window = time.Second

// Aggregator collects the four benchmark series:
//
//   - FPS: ticks per window, the host's true refresh cadence
//   - Draws: repaints per window
//   - FrameTime: the last repaint's duration in milliseconds
//   - PerEntity: that duration divided by the star count, in microseconds
type Aggregator struct {
	fps       *Series
	draws     *Series
	frameTime *Series
	perEntity *Series

	started     bool
	windowStart time.Time
	frames      int
	drawCalls   int
	last        time.Duration
}

// NewAggregator creates an aggregator with empty series.
func NewAggregator() *Aggregator {
	return &Aggregator{
		fps:       NewSeries(Exact),
		draws:     NewSeries(Exact),
		frameTime: NewSeries(Hundredths),
		perEntity: NewSeries(Hundredths),
	}
}

// Tick counts one scheduler tick at now. When a full window has passed
// since the window opened, FPS and Draws are published and both counters
// restart.
func (a *Aggregator) Tick(now time.Time) {
	if !a.started {
		a.started = true
		a.windowStart = now
	}
	a.frames++
	if now.Sub(a.windowStart) >= Window {
		a.fps.Record(float64(a.frames))
		a.draws.Record(float64(a.drawCalls))
		a.frames = 0
		a.drawCalls = 0
		a.windowStart = now
	}
}

// Rendered records one repaint that took d and covered entities stars.
func (a *Aggregator) Rendered(d time.Duration, entities int) {
	a.drawCalls++
	a.last = d
	a.frameTime.Record(float64(d) / float64(time.Millisecond))
	if entities > 0 {
		a.perEntity.Record(float64(d) / float64(time.Microsecond) / float64(entities))
	}
}

// Reset clears every counter and series.
func (a *Aggregator) Reset() {
	a.started = false
	a.frames, a.drawCalls, a.last = 0, 0, 0
	a.fps.Reset()
	a.draws.Reset()
	a.frameTime.Reset()
	a.perEntity.Reset()
}

// Snapshot is a copy of the aggregator state.
type Snapshot struct {
	FPS       SeriesSnapshot
	Draws     SeriesSnapshot
	FrameTime SeriesSnapshot // milliseconds
	PerEntity SeriesSnapshot // microseconds per star

	// FramesInWindow and DrawsInWindow are the counters of the window
	// still in progress.
	FramesInWindow int
	DrawsInWindow  int

	// LastRender is the duration of the most recent repaint.
	LastRender time.Duration
}

// Snapshot returns the current values and histories.
func (a *Aggregator) Snapshot() Snapshot {
	return Snapshot{
		FPS:            a.fps.snapshot(),
		Draws:          a.draws.snapshot(),
		FrameTime:      a.frameTime.snapshot(),
		PerEntity:      a.perEntity.snapshot(),
		FramesInWindow: a.frames,
		DrawsInWindow:  a.drawCalls,
		LastRender:     a.last,
	}
}
