// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"strconv"

	"github.com/gogpu/starbench/shape"
)

func formatRadius(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}

// SharedSpriteKey is the cache key of a sprite reused by every star with
// the same colour, radius and kind.
func SharedSpriteKey(color string, radius float64, kind shape.Kind) string {
	return "shared:" + color + ":" + formatRadius(radius) + ":" + kind.String()
}

// UniqueSpriteKey is the cache key of a sprite owned by a single star.
func UniqueSpriteKey(id int) string {
	return "unique:" + strconv.Itoa(id)
}

// RelativePathKey is the cache key of an origin-centred outline.
func RelativePathKey(kind shape.Kind, radius float64) string {
	return kind.String() + ":" + formatRadius(radius)
}
