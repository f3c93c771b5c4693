// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/starbench"
	"github.com/gogpu/starbench/cache"
	"github.com/gogpu/starbench/shape"
	"github.com/gogpu/starbench/star"
)

// NoExclusion is the excluded id of a background that contains every star.
const NoExclusion = -1

// Sprite is a pre-rendered shape. The shape is centred in the bitmap;
// Offset is the distance from the bitmap origin to that centre.
type Sprite struct {
	Image  *gg.ImageBuf
	Offset float64
}

// Stats describes the state of a Layer's caches.
type Stats struct {
	Sprites  cache.Stats
	Absolute cache.Stats
	Relative cache.Stats

	// Background reports whether a background bitmap is cached.
	Background bool
	// BackgroundExcluding is the id left out of the cached background.
	BackgroundExcluding int
	// BackgroundBuilds counts background repaints.
	BackgroundBuilds uint64
}

// Layer owns the cached artifacts of the drawing strategies.
// It is not safe for concurrent use.
type Layer struct {
	width, height int
	attached      bool
	forceUnique   bool

	sprites  *cache.Store[string, *Sprite]
	absolute *cache.Store[int, *shape.Path]
	relative *cache.Store[string, *shape.Path]

	canvas     *gg.Context
	background *gg.ImageBuf
	excluding  int
	bgBuilds   uint64
	colors     Colors
}

// NewLayer creates an empty, unattached layer.
func NewLayer() *Layer {
	return &Layer{
		sprites:   cache.New[string, *Sprite](),
		absolute:  cache.New[int, *shape.Path](),
		relative:  cache.New[string, *shape.Path](),
		excluding: NoExclusion,
		colors:    make(Colors),
	}
}

// Attach binds the layer to a surface of the given size.
func (l *Layer) Attach(width, height int) {
	l.attached = true
	l.Resize(width, height)
}

// Detach unbinds the layer. Cached entries are kept.
func (l *Layer) Detach() {
	l.attached = false
}

// Attached reports whether a surface is bound.
func (l *Layer) Attached() bool {
	return l.attached
}

// Size returns the viewport size.
func (l *Layer) Size() (width, height int) {
	return l.width, l.height
}

// Resize updates the viewport size. A change in size drops the
// background; paths and sprites do not depend on it.
func (l *Layer) Resize(width, height int) {
	if width == l.width && height == l.height {
		return
	}
	l.width, l.height = width, height
	l.InvalidateBackground()
}

// InvalidateAll drops every cached artifact. Calling it twice in a row is
// the same as calling it once.
func (l *Layer) InvalidateAll() {
	l.sprites.Clear()
	l.absolute.Clear()
	l.relative.Clear()
	l.InvalidateBackground()
}

// Reset drops what was built for a previous star set. Relative outlines
// still used by stars are kept, since they do not depend on ids or
// positions.
func (l *Layer) Reset(stars []*star.Star) {
	l.sprites.Clear()
	l.absolute.Clear()
	l.InvalidateBackground()
	l.PruneRelative(stars)
}

// InvalidateBackground drops the background bitmap.
func (l *Layer) InvalidateBackground() {
	l.background = nil
	l.excluding = NoExclusion
}

// SetForceUnique switches between shared and per-star sprite keys.
// Switching drops every sprite and the background built from them.
func (l *Layer) SetForceUnique(on bool) {
	if on == l.forceUnique {
		return
	}
	l.forceUnique = on
	l.sprites.Clear()
	l.InvalidateBackground()
}

// ForceUnique reports whether sprites are keyed per star.
func (l *Layer) ForceUnique() bool {
	return l.forceUnique
}

// Color returns the parsed colour for hex.
func (l *Layer) Color(hex string) gg.RGBA {
	return l.colors.Get(hex)
}

// Sprite returns the base sprite for a star's colour, radius and kind,
// building it on a miss. In force-unique mode the sprite is keyed by id.
// It returns nil on a miss while unattached.
func (l *Layer) Sprite(color string, radius float64, kind shape.Kind, id int) *Sprite {
	key := SharedSpriteKey(color, radius, kind)
	if l.forceUnique {
		key = UniqueSpriteKey(id)
	}
	return l.sprite(key, color, radius, kind)
}

// Overlay returns a highlight sprite. Overlays always use the shared key
// so they never collide with a star's own unique sprite.
func (l *Layer) Overlay(color string, radius float64, kind shape.Kind) *Sprite {
	return l.sprite(SharedSpriteKey(color, radius, kind), color, radius, kind)
}

func (l *Layer) sprite(key, color string, radius float64, kind shape.Kind) *Sprite {
	if sp, ok := l.sprites.Get(key); ok {
		return sp
	}
	if !l.attached {
		return nil
	}
	sp := l.buildSprite(color, radius, kind)
	l.sprites.Set(key, sp)
	return sp
}

func (l *Layer) buildSprite(color string, radius float64, kind shape.Kind) *Sprite {
	size := int(math.Ceil(2*radius)) + 2*spritePad
	c := float64(size) / 2
	dc := gg.NewContext(size, size)
	shape.Outline(dc, kind, c, c, radius)
	col := l.Color(color)
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	fill(dc)
	return &Sprite{Image: gg.ImageBufFromImage(dc.Image()), Offset: c}
}

// Path returns the cached outline of s. An absolute outline is built at
// the star's position and keyed by id; a relative one is built around the
// origin and keyed by kind and radius. It returns nil on a miss while
// unattached.
func (l *Layer) Path(s *star.Star, relative bool) *shape.Path {
	if relative {
		key := RelativePathKey(s.Kind, s.Radius)
		if p, ok := l.relative.Get(key); ok {
			return p
		}
		if !l.attached {
			return nil
		}
		p := shape.NewPath(s.Kind, 0, 0, s.Radius)
		l.relative.Set(key, p)
		return p
	}
	if p, ok := l.absolute.Get(s.ID); ok {
		return p
	}
	if !l.attached {
		return nil
	}
	p := shape.NewPath(s.Kind, s.X, s.Y, s.Radius)
	l.absolute.Set(s.ID, p)
	return p
}

// EvictPath drops the absolute outline of one star.
func (l *Layer) EvictPath(id int) bool {
	return l.absolute.Delete(id)
}

// PruneRelative drops relative outlines that no star in stars uses and
// returns how many were dropped.
func (l *Layer) PruneRelative(stars []*star.Star) int {
	live := make(map[string]struct{})
	for _, s := range stars {
		live[RelativePathKey(s.Kind, s.Radius)] = struct{}{}
	}
	return l.relative.DeleteFunc(func(key string, _ *shape.Path) bool {
		_, ok := live[key]
		return !ok
	})
}

// RebuildBackground repaints the background bitmap from the sprite of
// every star except the one with id excluding. It does nothing while
// unattached or with an empty viewport.
func (l *Layer) RebuildBackground(stars []*star.Star, excluding int) {
	if !l.attached || l.width <= 0 || l.height <= 0 {
		return
	}
	if l.canvas == nil {
		l.canvas = gg.NewContext(l.width, l.height)
	} else if err := l.canvas.Resize(l.width, l.height); err != nil {
		starbench.Logger().Debug("render: background resize failed", "err", err)
		return
	}
	l.canvas.Clear()
	for _, s := range stars {
		if s.ID == excluding {
			continue
		}
		DrawSprite(l.canvas, l.Sprite(s.Color, s.Radius, s.Kind, s.ID), s.X, s.Y)
	}
	l.background = gg.ImageBufFromImage(l.canvas.Image())
	l.excluding = excluding
	l.bgBuilds++
	starbench.Logger().Debug("render: background rebuilt",
		"stars", len(stars), "excluding", excluding, "sprites", l.sprites.Len())
}

// Background returns the cached background bitmap and the id it leaves
// out. ok is false when no background is cached.
func (l *Layer) Background() (img *gg.ImageBuf, excluding int, ok bool) {
	return l.background, l.excluding, l.background != nil
}

// Stats returns the state of every cache.
func (l *Layer) Stats() Stats {
	return Stats{
		Sprites:             l.sprites.Stats(),
		Absolute:            l.absolute.Stats(),
		Relative:            l.relative.Stats(),
		Background:          l.background != nil,
		BackgroundExcluding: l.excluding,
		BackgroundBuilds:    l.bgBuilds,
	}
}

// SpriteKeys returns the cached sprite keys in ascending order.
func (l *Layer) SpriteKeys() []string { return l.sprites.Keys() }

// AbsoluteKeys returns the ids with a cached absolute outline.
func (l *Layer) AbsoluteKeys() []int { return l.absolute.Keys() }

// RelativeKeys returns the cached relative outline keys.
func (l *Layer) RelativeKeys() []string { return l.relative.Keys() }

// PeekAbsolute returns the cached absolute outline of id without building
// it or touching statistics.
func (l *Layer) PeekAbsolute(id int) (*shape.Path, bool) {
	return l.absolute.Peek(id)
}

// PeekRelative returns the cached relative outline for key without
// building it or touching statistics.
func (l *Layer) PeekRelative(key string) (*shape.Path, bool) {
	return l.relative.Peek(key)
}
