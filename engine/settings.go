// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"github.com/gogpu/starbench/shape"
	"github.com/gogpu/starbench/star"
)

// Default scene values.
const (
	DefaultCircles = 5000
	DefaultRadius  = 3
)

// MultiplierFactor is the radius factor of each enabled multiplier.
const MultiplierFactor = 10

// Settings describes the scene to generate.
type Settings struct {
	Counts      star.Counts
	Radius      float64
	Multipliers [2]bool
}

// DefaultSettings returns DefaultCircles circles of DefaultRadius.
func DefaultSettings() Settings {
	return Settings{
		Counts: star.Only(shape.Circle, DefaultCircles),
		Radius: DefaultRadius,
	}
}

// FinalRadius is the base radius scaled by every enabled multiplier.
func (s Settings) FinalRadius() float64 {
	r := s.Radius
	for _, on := range s.Multipliers {
		if on {
			r *= MultiplierFactor
		}
	}
	return r
}
