// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"github.com/gogpu/starbench"
	"github.com/gogpu/starbench/render"
	"github.com/gogpu/starbench/shape"
	"github.com/gogpu/starbench/star"
)

// dispatch paints one frame with the current strategy.
func (e *Engine) dispatch() {
	e.dc.ClearWithColor(render.Backdrop)

	switch e.strategy {
	case Immediate:
		e.drawImmediate()
	case PathAbsolute:
		e.drawPaths(false)
	case PathTranslate:
		e.drawPaths(true)
	case Composited:
		e.drawComposited()
	}

	if e.trailOn {
		render.DrawTrail(e.dc, e.trail)
	}
}

func (e *Engine) drawImmediate() {
	hovered, dragged := e.machine.Hovered(), e.machine.Dragged()
	for _, s := range e.stars {
		switch s {
		case dragged:
			continue
		case hovered:
			e.traceAndFill(s, render.HoverColor, render.HighlightScale)
		default:
			e.traceAndFill(s, s.Color, 1)
		}
	}
	if dragged != nil {
		e.traceAndFill(dragged, render.DragColor, render.HighlightScale)
	}
}

func (e *Engine) traceAndFill(s *star.Star, color string, scale float64) {
	col := e.layer.Color(color)
	e.dc.SetRGBA(col.R, col.G, col.B, col.A)
	shape.Outline(e.dc, s.Kind, s.X, s.Y, s.Radius*scale)
	if err := e.dc.Fill(); err != nil {
		starbench.Logger().Debug("engine: fill failed", "star", s.ID, "err", err)
	}
}

func (e *Engine) drawPaths(relative bool) {
	hovered, dragged := e.machine.Hovered(), e.machine.Dragged()
	for _, s := range e.stars {
		switch s {
		case dragged:
			continue
		case hovered:
			e.fillCached(s, relative, render.HoverColor, render.HighlightScale)
		default:
			e.fillCached(s, relative, s.Color, 1)
		}
	}
	if dragged != nil {
		e.fillCached(dragged, relative, render.DragColor, render.HighlightScale)
	}
}

// fillCached fills the cached outline of s. Highlights reuse the base
// outline scaled about the star's centre.
func (e *Engine) fillCached(s *star.Star, relative bool, color string, scale float64) {
	p := e.layer.Path(s, relative)
	col := e.layer.Color(color)
	if relative {
		e.dc.Push()
		e.dc.Translate(s.X, s.Y)
		if scale != 1 {
			e.dc.Scale(scale, scale)
		}
		render.FillPath(e.dc, p, col)
		e.dc.Pop()
		return
	}
	if scale == 1 {
		render.FillPath(e.dc, p, col)
		return
	}
	e.dc.Push()
	e.dc.Translate(s.X, s.Y)
	e.dc.Scale(scale, scale)
	e.dc.Translate(-s.X, -s.Y)
	render.FillPath(e.dc, p, col)
	e.dc.Pop()
}

func (e *Engine) drawComposited() {
	hovered, dragged := e.machine.Hovered(), e.machine.Dragged()

	excluding := render.NoExclusion
	if dragged != nil {
		excluding = dragged.ID
	}
	if _, excl, ok := e.layer.Background(); !ok || excl != excluding {
		e.layer.RebuildBackground(e.stars, excluding)
	}
	if bg, _, ok := e.layer.Background(); ok {
		e.dc.DrawImage(bg, 0, 0)
	}

	if hovered != nil && hovered != dragged {
		sp := e.layer.Overlay(render.HoverColor, hovered.Radius*render.HighlightScale, hovered.Kind)
		render.DrawSprite(e.dc, sp, hovered.X, hovered.Y)
	}
	if dragged != nil {
		sp := e.layer.Overlay(render.DragColor, dragged.Radius*render.HighlightScale, dragged.Kind)
		render.DrawSprite(e.dc, sp, dragged.X, dragged.Y)
	}
}
