// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package star

import (
	"math/rand/v2"

	"github.com/gogpu/starbench/shape"
)

// NewRand returns a deterministic random source for Generate.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate creates counts.Total() stars of the given radius. Positions are
// uniform in [0,width) x [0,height), colours uniform over Palette and ids
// sequential from 0 in kind order. The result is shuffled so draw order
// does not follow kind.
//
// Generate has no side effects besides advancing rng.
func Generate(counts Counts, width, height, radius float64, rng *rand.Rand) []*Star {
	stars := make([]*Star, 0, counts.Total())
	id := 0
	for _, kind := range shape.Kinds {
		for i := 0; i < counts[kind]; i++ {
			stars = append(stars, &Star{
				ID:     id,
				X:      rng.Float64() * width,
				Y:      rng.Float64() * height,
				Radius: radius,
				Color:  Palette[rng.IntN(len(Palette))],
				Kind:   kind,
			})
			id++
		}
	}
	rng.Shuffle(len(stars), func(i, j int) {
		stars[i], stars[j] = stars[j], stars[i]
	})
	return stars
}
