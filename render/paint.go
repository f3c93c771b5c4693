// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/jbeda/geom"

	"github.com/gogpu/starbench"
	"github.com/gogpu/starbench/interact"
	"github.com/gogpu/starbench/shape"
)

// Highlight styling.
const (
	HoverColor     = "#fffd85"
	DragColor      = "#ff9d6e"
	HighlightScale = 2.5
)

// spritePad is the transparent border around a sprite's shape.
const spritePad = 2

// Backdrop is the colour the surface is cleared to before each repaint.
var Backdrop = gg.Hex("#0b1020")

var trailColor = gg.RGBA{R: 103.0 / 255, G: 232.0 / 255, B: 249.0 / 255}

// Colors memoizes hex colour parsing.
type Colors map[string]gg.RGBA

// Get returns the parsed colour for hex.
func (c Colors) Get(hex string) gg.RGBA {
	if v, ok := c[hex]; ok {
		return v
	}
	v := gg.Hex(hex)
	c[hex] = v
	return v
}

// FillPath fills p on dc in colour col.
func FillPath(dc *gg.Context, p *shape.Path, col gg.RGBA) {
	if p == nil {
		return
	}
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	p.Replay(dc)
	fill(dc)
}

// DrawSprite draws sp centred on (x, y). Sprites are placed on whole
// pixels so a cached bitmap lands exactly where it was rendered.
func DrawSprite(dc *gg.Context, sp *Sprite, x, y float64) {
	if sp == nil {
		return
	}
	dc.DrawImage(sp.Image, math.Round(x-sp.Offset), math.Round(y-sp.Offset))
}

// DrawTrail draws the trail as fading dots, head first.
func DrawTrail(dc *gg.Context, t *interact.Trail) {
	t.Range(func(p geom.Coord, o float64) {
		dc.SetRGBA(trailColor.R, trailColor.G, trailColor.B, 0.7*o)
		dc.DrawCircle(p.X, p.Y, 3*o)
		fill(dc)
	})
}

func fill(dc *gg.Context) {
	if err := dc.Fill(); err != nil {
		starbench.Logger().Debug("render: fill failed", "err", err)
	}
}
