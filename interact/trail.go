// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interact

import (
	"slices"

	"github.com/jbeda/geom"
)

// TrailLength is the default number of remembered pointer positions.
const TrailLength = 20

// Trail is a bounded, most-recent-first list of pointer positions.
type Trail struct {
	points   []geom.Coord
	capacity int
}

// NewTrail creates a trail holding at most capacity points. A capacity
// below 1 uses TrailLength.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = TrailLength
	}
	return &Trail{points: make([]geom.Coord, 0, capacity), capacity: capacity}
}

// Push adds p as the most recent point, dropping the oldest when full.
func (t *Trail) Push(p geom.Coord) {
	if len(t.points) < t.capacity {
		t.points = append(t.points, geom.Coord{})
	}
	copy(t.points[1:], t.points)
	t.points[0] = p
}

// Clear empties the trail and reports whether it held anything.
func (t *Trail) Clear() bool {
	had := len(t.points) > 0
	t.points = t.points[:0]
	return had
}

// Len returns the number of points.
func (t *Trail) Len() int { return len(t.points) }

// Cap returns the maximum number of points.
func (t *Trail) Cap() int { return t.capacity }

// Points returns a copy of the points, most recent first.
func (t *Trail) Points() []geom.Coord { return slices.Clone(t.points) }

// Range calls fn for every point, most recent first, with an opacity that
// falls linearly from 1 at the head towards 0 at the tail.
func (t *Trail) Range(fn func(p geom.Coord, opacity float64)) {
	n := float64(len(t.points))
	for i, p := range t.points {
		fn(p, 1-float64(i)/n)
	}
}
