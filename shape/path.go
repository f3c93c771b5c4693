// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

// Verb is a retained path command.
type Verb uint8

// Path verbs. VerbMove and VerbLine take one point, VerbCubic three.
const (
	VerbMove Verb = iota
	VerbLine
	VerbCubic
)

// coordCount is the number of coordinates each verb consumes.
var coordCount = [...]int{VerbMove: 2, VerbLine: 2, VerbCubic: 6}

// Path is a retained outline stored as verbs plus a flat coordinate
// slice. It is built once and replayed onto any Tracer.
type Path struct {
	verbs  []Verb
	coords []float64
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMove)
	p.coords = append(p.coords, x, y)
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.verbs = append(p.verbs, VerbLine)
	p.coords = append(p.coords, x, y)
}

// CubicTo adds a cubic Bézier curve ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, VerbCubic)
	p.coords = append(p.coords, c1x, c1y, c2x, c2y, x, y)
}

// Len returns the number of verbs.
func (p *Path) Len() int {
	return len(p.verbs)
}

// Verbs returns the path commands. The slice must not be modified.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Coords returns the coordinates of every verb in order. The slice must
// not be modified.
func (p *Path) Coords() []float64 {
	return p.coords
}

// Start returns the point of the first VerbMove. ok is false for an empty
// path.
func (p *Path) Start() (x, y float64, ok bool) {
	if len(p.verbs) == 0 {
		return 0, 0, false
	}
	return p.coords[0], p.coords[1], true
}

// Replay sends the path to t.
func (p *Path) Replay(t Tracer) {
	c := p.coords
	for _, v := range p.verbs {
		switch v {
		case VerbMove:
			t.MoveTo(c[0], c[1])
		case VerbLine:
			t.LineTo(c[0], c[1])
		case VerbCubic:
			t.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		}
		c = c[coordCount[v]:]
	}
}
