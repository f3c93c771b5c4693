// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"math/rand/v2"

	"github.com/gogpu/starbench/frame"
	"github.com/gogpu/starbench/metrics"
	"github.com/gogpu/starbench/star"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	scheduler   frame.Scheduler
	clock       metrics.Clock
	rng         *rand.Rand
	settings    Settings
	strategy    Strategy
	trigger     Trigger
	trail       bool
	forceUnique bool
}

func defaultOptions() options {
	return options{
		clock:    metrics.SystemClock{},
		settings: DefaultSettings(),
		strategy: Immediate,
		trigger:  Continuous,
		trail:    true,
	}
}

// WithScheduler sets the tick source. The default is a frame.Queue
// reachable through Engine.Scheduler, which the host must fire.
func WithScheduler(s frame.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithClock sets the clock used to time repaints.
func WithClock(c metrics.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithRand sets the random source for scene generation.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed seeds scene generation deterministically.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = star.NewRand(seed)
	}
}

// WithSettings sets the initial scene. It is generated on the first
// attach to a non-empty surface.
func WithSettings(s Settings) Option {
	return func(o *options) {
		o.settings = s
	}
}

// WithStrategy sets the initial strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithTrigger sets the initial trigger.
func WithTrigger(t Trigger) Option {
	return func(o *options) {
		o.trigger = t
	}
}

// WithTrail sets whether the pointer trail is shown.
func WithTrail(on bool) Option {
	return func(o *options) {
		o.trail = on
	}
}

// WithForceUnique sets whether every star gets its own sprite.
func WithForceUnique(on bool) Option {
	return func(o *options) {
		o.forceUnique = on
	}
}
