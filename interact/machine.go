// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package interact tracks which star the pointer hovers or drags, and the
// trail of recent pointer positions.
package interact

import (
	"github.com/jbeda/geom"

	"github.com/gogpu/starbench/star"
)

// HitMargin is added to a star's radius when hit testing.
const HitMargin = 5

// State is the pointer interaction state.
type State uint8

// Interaction states.
const (
	Idle State = iota
	Hovering
	Dragging
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Change describes what a pointer event did.
type Change uint8

// Changes reported by Machine.
const (
	NoChange Change = iota
	HoverChanged
	DragStarted
	DragMoved
	DragReleased
)

// Transition is the result of feeding one pointer event to a Machine.
type Transition struct {
	Change Change
	// Star is the star the change is about: the new hover target (nil
	// when hover cleared), or the dragged star.
	Star *star.Star
	// From is the dragged star's position before a DragMoved.
	From geom.Coord
}

// Redraw reports whether the transition changed anything visible.
func (t Transition) Redraw() bool {
	return t.Change != NoChange
}

// HitTest returns the top-most star (last in draw order) whose centre is
// closer to p than its radius plus HitMargin, or nil.
func HitTest(stars []*star.Star, p geom.Coord) *star.Star {
	for i := len(stars) - 1; i >= 0; i-- {
		s := stars[i]
		if s.Pos().DistanceFrom(p) < s.Radius+HitMargin {
			return s
		}
	}
	return nil
}

// Machine is the hover/drag state machine. It moves the dragged star but
// never owns the star slice; the caller replaces it with SetStars.
type Machine struct {
	stars   []*star.Star
	hovered *star.Star
	dragged *star.Star
	pointer geom.Coord
	inside  bool
}

// NewMachine creates an idle machine with no stars.
func NewMachine() *Machine {
	return &Machine{}
}

// SetStars replaces the hit-test set and drops hover and drag, since the
// old targets no longer exist.
func (m *Machine) SetStars(stars []*star.Star) {
	m.stars = stars
	m.hovered = nil
	m.dragged = nil
}

// State returns the current state. Dragging wins over Hovering.
func (m *Machine) State() State {
	switch {
	case m.dragged != nil:
		return Dragging
	case m.hovered != nil:
		return Hovering
	default:
		return Idle
	}
}

// Hovered returns the hovered star, or nil.
func (m *Machine) Hovered() *star.Star { return m.hovered }

// Dragged returns the dragged star, or nil.
func (m *Machine) Dragged() *star.Star { return m.dragged }

// Pointer returns the last pointer position and whether the pointer is
// over the surface.
func (m *Machine) Pointer() (geom.Coord, bool) { return m.pointer, m.inside }

// Down handles a pointer press at p.
func (m *Machine) Down(p geom.Coord) Transition {
	m.pointer, m.inside = p, true
	if m.dragged != nil {
		return Transition{}
	}
	s := HitTest(m.stars, p)
	if s == nil {
		return Transition{}
	}
	m.dragged = s
	return Transition{Change: DragStarted, Star: s, From: s.Pos()}
}

// Move handles pointer motion to p.
func (m *Machine) Move(p geom.Coord) Transition {
	m.pointer, m.inside = p, true
	if s := m.dragged; s != nil {
		from := s.Pos()
		s.MoveTo(p)
		return Transition{Change: DragMoved, Star: s, From: from}
	}
	h := HitTest(m.stars, p)
	if h == m.hovered {
		return Transition{}
	}
	m.hovered = h
	return Transition{Change: HoverChanged, Star: h}
}

// Up handles a pointer release. Hover is recomputed at the pointer.
func (m *Machine) Up() Transition {
	s := m.dragged
	if s == nil {
		return Transition{}
	}
	m.dragged = nil
	if m.inside {
		m.hovered = HitTest(m.stars, m.pointer)
	}
	return Transition{Change: DragReleased, Star: s, From: s.Pos()}
}

// Leave handles the pointer leaving the surface: hover is cleared and any
// drag is released.
func (m *Machine) Leave() Transition {
	m.inside = false
	hadHover := m.hovered != nil
	m.hovered = nil
	if s := m.dragged; s != nil {
		m.dragged = nil
		return Transition{Change: DragReleased, Star: s, From: s.Pos()}
	}
	if hadHover {
		return Transition{Change: HoverChanged}
	}
	return Transition{}
}
