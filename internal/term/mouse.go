// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package term

import "github.com/gdamore/tcell/v2"

// PointerAction is one pointer call on the engine.
type PointerAction uint8

// Pointer actions, in the order Mouse emits them for one event.
const (
	PointerMove PointerAction = iota
	PointerDown
	PointerUp
	PointerLeave
)

// Pointer is a pointer action at a surface position.
type Pointer struct {
	Action PointerAction
	X, Y   float64
}

// Mouse turns terminal mouse reports, which carry the button state
// rather than press and release edges, into pointer actions.
type Mouse struct {
	cols, rows int
	pressed    bool
	inside     bool
}

// Resize sets the terminal size.
func (m *Mouse) Resize(cols, rows int) {
	m.cols, m.rows = cols, rows
}

// Translate returns the pointer actions for ev. Leaving the surface area
// (onto the status line or off screen) produces a single PointerLeave.
func (m *Mouse) Translate(ev *tcell.EventMouse) []Pointer {
	col, row := ev.Position()
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows-statusRows {
		if !m.inside {
			return nil
		}
		m.inside, m.pressed = false, false
		return []Pointer{{Action: PointerLeave}}
	}
	m.inside = true

	x, y := CellToSurface(col, row)
	out := []Pointer{{Action: PointerMove, X: x, Y: y}}
	left := ev.Buttons()&tcell.Button1 != 0
	switch {
	case left && !m.pressed:
		m.pressed = true
		out = append(out, Pointer{Action: PointerDown, X: x, Y: y})
	case !left && m.pressed:
		m.pressed = false
		out = append(out, Pointer{Action: PointerUp, X: x, Y: y})
	}
	return out
}
