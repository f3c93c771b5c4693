// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package metrics measures frame cadence, draw-call cadence and repaint
// cost, and keeps a short deduplicated history of each series.
package metrics

import (
	"math"
	"slices"
)

// HistoryLen is the maximum number of values a Series remembers.
const HistoryLen = 4

// Precision selects how a Series decides two values are the same.
type Precision uint8

const (
	// Exact compares integer counters as-is.
	Exact Precision = iota
	// Hundredths rounds continuous values to two decimals.
	Hundredths
)

func (p Precision) round(v float64) float64 {
	if p == Hundredths {
		return math.Round(v*100) / 100
	}
	return math.Round(v)
}

// Series is one measured quantity: its latest value plus up to
// HistoryLen distinct earlier values.
type Series struct {
	precision Precision
	value     float64
	history   []float64 // insertion order, oldest first
}

// NewSeries creates an empty series.
func NewSeries(p Precision) *Series {
	return &Series{precision: p, history: make([]float64, 0, HistoryLen)}
}

// Record sets the current value and adds it to the history unless an
// equal value (after rounding) is already there. The oldest entry is
// dropped once the history is full.
func (s *Series) Record(v float64) {
	s.value = v
	key := s.precision.round(v)
	if slices.Contains(s.history, key) {
		return
	}
	if len(s.history) == HistoryLen {
		copy(s.history, s.history[1:])
		s.history = s.history[:HistoryLen-1]
	}
	s.history = append(s.history, key)
}

// Value returns the most recently recorded value.
func (s *Series) Value() float64 { return s.value }

// History returns the remembered values in ascending order.
func (s *Series) History() []float64 {
	h := slices.Clone(s.history)
	slices.Sort(h)
	return h
}

// Reset forgets the value and history.
func (s *Series) Reset() {
	s.value = 0
	s.history = s.history[:0]
}

// SeriesSnapshot is a copy of a Series.
type SeriesSnapshot struct {
	Value   float64
	History []float64
}

func (s *Series) snapshot() SeriesSnapshot {
	return SeriesSnapshot{Value: s.value, History: s.History()}
}
