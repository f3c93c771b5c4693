// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interact

import (
	"testing"

	"github.com/jbeda/geom"

	"github.com/gogpu/starbench/star"
)

func testStars() []*star.Star {
	return []*star.Star{
		{ID: 0, X: 10, Y: 10, Radius: 3},
		{ID: 1, X: 100, Y: 100, Radius: 3},
		{ID: 2, X: 102, Y: 100, Radius: 3}, // overlaps 1, drawn on top
	}
}

func TestHitTest(t *testing.T) {
	stars := testStars()
	tests := []struct {
		name string
		p    geom.Coord
		want int // -1 for no hit
	}{
		{"centre", geom.Coord{X: 10, Y: 10}, 0},
		{"inside margin", geom.Coord{X: 17.9, Y: 10}, 0},
		{"on boundary", geom.Coord{X: 18, Y: 10}, -1},
		{"miss", geom.Coord{X: 50, Y: 50}, -1},
		{"top-most wins", geom.Coord{X: 101, Y: 100}, 2},
		{"only lower", geom.Coord{X: 93, Y: 100}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitTest(stars, tt.p)
			switch {
			case tt.want < 0 && got != nil:
				t.Errorf("hit star %d, want none", got.ID)
			case tt.want >= 0 && (got == nil || got.ID != tt.want):
				t.Errorf("hit %v, want star %d", got, tt.want)
			}
		})
	}
}

func TestHitTestEmpty(t *testing.T) {
	if got := HitTest(nil, geom.Coord{}); got != nil {
		t.Errorf("HitTest(nil) = %v", got)
	}
}

func TestMachineHover(t *testing.T) {
	m := NewMachine()
	m.SetStars(testStars())

	tr := m.Move(geom.Coord{X: 11, Y: 10})
	if tr.Change != HoverChanged || tr.Star == nil || tr.Star.ID != 0 {
		t.Fatalf("first move = %+v, want hover on 0", tr)
	}
	if m.State() != Hovering {
		t.Errorf("State = %v, want hovering", m.State())
	}

	// Moving within the same star is a no-op.
	if tr := m.Move(geom.Coord{X: 12, Y: 11}); tr.Redraw() {
		t.Errorf("move within hovered star = %+v, want no change", tr)
	}

	tr = m.Move(geom.Coord{X: 50, Y: 50})
	if tr.Change != HoverChanged || tr.Star != nil {
		t.Fatalf("move off = %+v, want hover cleared", tr)
	}
	if m.State() != Idle {
		t.Errorf("State = %v, want idle", m.State())
	}
	if tr := m.Move(geom.Coord{X: 60, Y: 60}); tr.Redraw() {
		t.Errorf("move over empty space = %+v, want no change", tr)
	}
}

func TestMachineDrag(t *testing.T) {
	stars := testStars()
	m := NewMachine()
	m.SetStars(stars)

	if tr := m.Down(geom.Coord{X: 50, Y: 50}); tr.Redraw() || m.Dragged() != nil {
		t.Fatalf("down on empty space started a drag: %+v", tr)
	}

	tr := m.Down(geom.Coord{X: 10, Y: 10})
	if tr.Change != DragStarted || tr.Star != stars[0] {
		t.Fatalf("down = %+v, want drag on 0", tr)
	}
	if m.State() != Dragging {
		t.Errorf("State = %v, want dragging", m.State())
	}

	tr = m.Move(geom.Coord{X: 40, Y: 30})
	if tr.Change != DragMoved || tr.Star != stars[0] {
		t.Fatalf("move = %+v, want drag move", tr)
	}
	if tr.From != (geom.Coord{X: 10, Y: 10}) {
		t.Errorf("From = %v, want (10,10)", tr.From)
	}
	if stars[0].X != 40 || stars[0].Y != 30 {
		t.Errorf("star at (%v,%v), want (40,30)", stars[0].X, stars[0].Y)
	}

	// A drag ignores other stars under the pointer.
	m.Move(geom.Coord{X: 100, Y: 100})
	if stars[1].X != 100 || stars[0].X != 100 {
		t.Errorf("drag moved the wrong star")
	}

	tr = m.Up()
	if tr.Change != DragReleased || tr.Star != stars[0] {
		t.Fatalf("up = %+v, want release of 0", tr)
	}
	// Released on top of stars; star 0 is first in draw order so 2 is top-most.
	if h := m.Hovered(); h == nil || h.ID != 2 {
		t.Errorf("Hovered after release = %v, want star 2", h)
	}
	if tr := m.Up(); tr.Redraw() {
		t.Errorf("second up = %+v, want no change", tr)
	}
}

func TestMachineLeave(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *Machine)
		want  Change
	}{
		{"idle", func(m *Machine) {}, NoChange},
		{"hovering", func(m *Machine) { m.Move(geom.Coord{X: 10, Y: 10}) }, HoverChanged},
		{"dragging", func(m *Machine) { m.Down(geom.Coord{X: 10, Y: 10}) }, DragReleased},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			m.SetStars(testStars())
			tt.setup(m)

			if tr := m.Leave(); tr.Change != tt.want {
				t.Errorf("Leave = %v, want %v", tr.Change, tt.want)
			}
			if m.State() != Idle {
				t.Errorf("State = %v, want idle", m.State())
			}
			if _, inside := m.Pointer(); inside {
				t.Error("pointer still inside after leave")
			}
		})
	}
}

func TestSetStarsResets(t *testing.T) {
	m := NewMachine()
	m.SetStars(testStars())
	m.Down(geom.Coord{X: 10, Y: 10})
	m.SetStars(testStars())
	if m.State() != Idle {
		t.Errorf("State = %v after SetStars, want idle", m.State())
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Idle: "idle", Hovering: "hovering", Dragging: "dragging"} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
