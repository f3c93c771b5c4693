// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package frame provides the next-tick port the draw loop schedules
// itself through.
//
// A host owns the clock: it calls Queue.Fire once per display refresh
// (from a time.Ticker, a vsync callback, or a test loop). Callbacks
// requested during a Fire run on the next Fire, never the current one.
package frame

import "time"

// Callback runs on a tick.
type Callback func(now time.Time)

// ID identifies a pending request. The zero ID is never issued.
type ID uint64

// Scheduler requests a callback on the next tick.
type Scheduler interface {
	// RequestFrame schedules cb for the next tick.
	RequestFrame(cb Callback) ID
	// CancelFrame drops a pending request. Unknown or already fired
	// ids are ignored.
	CancelFrame(id ID)
}

// Queue is a Scheduler fired explicitly by its owner.
// Queue is not safe for concurrent use.
type Queue struct {
	next    ID
	order   []ID
	pending map[ID]Callback
}

var _ Scheduler = (*Queue)(nil)

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{pending: make(map[ID]Callback)}
}

// RequestFrame implements Scheduler.
func (q *Queue) RequestFrame(cb Callback) ID {
	q.next++
	q.order = append(q.order, q.next)
	q.pending[q.next] = cb
	return q.next
}

// CancelFrame implements Scheduler.
func (q *Queue) CancelFrame(id ID) {
	delete(q.pending, id)
}

// Fire runs every callback requested before this call and reports how
// many ran. Callbacks cancelled while Fire is running are skipped.
func (q *Queue) Fire(now time.Time) int {
	batch := q.order
	q.order = nil
	ran := 0
	for _, id := range batch {
		cb, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		cb(now)
		ran++
	}
	return ran
}

// Pending returns the number of callbacks waiting for the next Fire.
func (q *Queue) Pending() int {
	return len(q.pending)
}
