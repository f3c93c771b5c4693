// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"math"

	"github.com/gogpu/gg"
)

// Tracer receives outline segments. Both *gg.Context and *Path implement
// it, so the same vertex math feeds immediate drawing and retained paths.
type Tracer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
}

var (
	_ Tracer = (*gg.Context)(nil)
	_ Tracer = (*Path)(nil)
)

// circleK places cubic control points for a quarter circle.
const circleK = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Polygon traces a regular polygon with the given circumscribed radius.
// The first vertex sits at angle 0 and angles increase from there; the
// final LineTo lands back on the first vertex. Fewer than 3 sides traces
// nothing.
func Polygon(t Tracer, cx, cy, radius float64, sides int) {
	if sides < 3 {
		return
	}
	t.MoveTo(cx+radius, cy)
	for i := 1; i <= sides; i++ {
		angle := float64(i) * 2 * math.Pi / float64(sides)
		t.LineTo(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
	}
}

// Vertices returns the polygon vertices Polygon would visit, including
// the closing vertex. It returns nil for fewer than 3 sides.
func Vertices(cx, cy, radius float64, sides int) []gg.Point {
	if sides < 3 {
		return nil
	}
	pts := make([]gg.Point, 0, sides+1)
	pts = append(pts, gg.Pt(cx+radius, cy))
	for i := 1; i <= sides; i++ {
		angle := float64(i) * 2 * math.Pi / float64(sides)
		pts = append(pts, gg.Pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle)))
	}
	return pts
}

// TraceCircle traces a circle as four cubic arcs starting at angle 0.
func TraceCircle(t Tracer, cx, cy, r float64) {
	offset := r * circleK
	t.MoveTo(cx+r, cy)
	t.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	t.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	t.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	t.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
}

// Outline traces the outline of kind centred on (cx, cy).
func Outline(t Tracer, kind Kind, cx, cy, r float64) {
	if kind == Circle {
		TraceCircle(t, cx, cy, r)
		return
	}
	Polygon(t, cx, cy, r, kind.Sides())
}

// NewPath returns a retained path holding the outline of kind.
func NewPath(kind Kind, cx, cy, r float64) *Path {
	p := &Path{}
	Outline(p, kind, cx, cy, r)
	return p
}
