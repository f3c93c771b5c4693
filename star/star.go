// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package star holds the movable shape record and its scene generator.
package star

import (
	"github.com/jbeda/geom"

	"github.com/gogpu/starbench/shape"
)

// Palette is the set of colours a generated star may take.
var Palette = []string{
	"#FFFFFF",
	"#87CEEB",
	"#FFA07A",
	"#FFD700",
	"#DA70D6",
	"#00FFFF",
	"#F08080",
	"#ADD8E6",
}

// Star is one drawable shape. Only X and Y change after generation.
type Star struct {
	ID     int
	X, Y   float64
	Radius float64
	Color  string
	Kind   shape.Kind
}

// Pos returns the star's centre.
func (s *Star) Pos() geom.Coord {
	return geom.Coord{X: s.X, Y: s.Y}
}

// MoveTo repositions the star.
func (s *Star) MoveTo(p geom.Coord) {
	s.X, s.Y = p.X, p.Y
}

// Counts holds the number of stars requested per kind, indexed by
// shape.Kind.
type Counts [shape.NumKinds]int

// Total returns the sum of all non-negative counts.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		if v > 0 {
			n += v
		}
	}
	return n
}

// Only returns counts with n stars of kind and none of the others.
func Only(kind shape.Kind, n int) Counts {
	var c Counts
	c[kind] = n
	return c
}
