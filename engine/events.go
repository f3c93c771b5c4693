// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"slices"
	"time"

	"github.com/gogpu/starbench/interact"
)

// EventKind identifies what an Event reports.
type EventKind uint8

const (
	// EventFrame follows every repaint.
	EventFrame EventKind = iota
	// EventInteraction follows a hover or drag change.
	EventInteraction
	// EventCommit follows a scene regeneration.
	EventCommit
)

func (k EventKind) String() string {
	switch k {
	case EventFrame:
		return "frame"
	case EventInteraction:
		return "interaction"
	case EventCommit:
		return "commit"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners synchronously on the engine goroutine.
type Event struct {
	Kind EventKind

	// Duration is the repaint time of an EventFrame.
	Duration time.Duration
	// Strategy is the strategy that painted an EventFrame.
	Strategy Strategy

	// Change and StarID describe an EventInteraction. StarID is -1 when
	// no star is involved.
	Change interact.Change
	StarID int

	// Entities is the star count after an EventCommit.
	Entities int
}

// Listener receives engine events. It must not block.
type Listener func(Event)

type subscription struct {
	id uint64
	fn Listener
}

type listeners struct {
	next uint64
	subs []subscription
}

func (l *listeners) add(fn Listener) func() {
	l.next++
	id := l.next
	l.subs = append(l.subs, subscription{id: id, fn: fn})
	return func() {
		l.subs = slices.DeleteFunc(l.subs, func(s subscription) bool { return s.id == id })
	}
}

func (l *listeners) publish(ev Event) {
	if len(l.subs) == 0 {
		return
	}
	for _, s := range slices.Clone(l.subs) {
		s.fn(ev)
	}
}
