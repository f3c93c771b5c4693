// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
	ErrUnknownStrategy = errors.New("engine: unknown strategy")

	// ErrUnknownTrigger is returned by ParseTrigger for unrecognized names.
	ErrUnknownTrigger = errors.New("engine: unknown trigger")
)

// Strategy selects how a frame is drawn.
type Strategy uint8

const (
	// Immediate clears the surface and traces every star from its data.
	Immediate Strategy = iota

	// PathAbsolute fills one cached outline per star, built at the
	// star's position. Dragging a star rebuilds only its outline.
	PathAbsolute

	// PathTranslate fills a cached origin-centred outline per kind and
	// radius, translated to each star.
	PathTranslate

	// Composited draws a cached bitmap of every star except the dragged
	// one, then the highlight sprites on top.
	Composited

	numStrategies = int(Composited) + 1
)

// Strategies lists every strategy in declaration order.
var Strategies = [numStrategies]Strategy{Immediate, PathAbsolute, PathTranslate, Composited}

var strategyNames = [numStrategies]string{"immediate", "path-absolute", "path-translate", "composited"}

// String returns the name accepted by ParseStrategy.
func (s Strategy) String() string {
	if s.Valid() {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	return int(s) < numStrategies
}

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Trigger selects what wakes the draw loop.
type Trigger uint8

const (
	// Continuous samples the pointer into the trail on every tick.
	Continuous Trigger = iota
	// EventDriven samples the trail only on pointer movement.
	EventDriven
)

// String returns the name accepted by ParseTrigger.
func (t Trigger) String() string {
	switch t {
	case Continuous:
		return "continuous"
	case EventDriven:
		return "event"
	default:
		return fmt.Sprintf("Trigger(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the defined triggers.
func (t Trigger) Valid() bool {
	return t <= EventDriven
}

// ParseTrigger converts a trigger name to a Trigger.
func ParseTrigger(name string) (Trigger, error) {
	switch name {
	case "continuous":
		return Continuous, nil
	case "event":
		return EventDriven, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTrigger, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Trigger) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTrigger, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Trigger) UnmarshalText(text []byte) error {
	v, err := ParseTrigger(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
