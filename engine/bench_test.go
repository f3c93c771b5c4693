// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"testing"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/starbench/frame"
	"github.com/gogpu/starbench/shape"
	"github.com/gogpu/starbench/star"
)

func benchmarkStrategy(b *testing.B, s Strategy, dragging bool) {
	q := frame.NewQueue()
	e := New(
		WithScheduler(q),
		WithSeed(1),
		WithStrategy(s),
		WithTrail(false),
		WithSettings(Settings{Counts: star.Counts{1000, 250, 250, 250, 250}, Radius: 3}),
	)
	e.Attach(gg.NewContext(640, 480))
	e.Start()
	defer e.Stop()

	stars := e.Stars()
	target := stars[len(stars)-1]
	if dragging {
		e.PointerDown(target.X, target.Y)
	}
	now := time.Now()
	q.Fire(now)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if dragging {
			e.PointerMove(target.X+float64(i%40), target.Y)
		} else {
			e.dirty = true
		}
		now = now.Add(16 * time.Millisecond)
		q.Fire(now)
	}
}

func BenchmarkRepaint(b *testing.B) {
	for _, s := range Strategies {
		b.Run(s.String(), func(b *testing.B) {
			benchmarkStrategy(b, s, false)
		})
	}
}

func BenchmarkDrag(b *testing.B) {
	for _, s := range Strategies {
		b.Run(s.String(), func(b *testing.B) {
			benchmarkStrategy(b, s, true)
		})
	}
}

func BenchmarkOutlineImmediate(b *testing.B) {
	dc := gg.NewContext(64, 64)
	for i := 0; i < b.N; i++ {
		shape.Outline(dc, shape.Kind(i%shape.NumKinds), 32, 32, 10)
		_ = dc.Fill()
	}
}
