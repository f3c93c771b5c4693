// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shape defines the shape kinds a star can take and builds their
// outlines against either an immediate surface or a retained path.
package shape

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned by ParseKind for names it does not recognize.
var ErrUnknownKind = errors.New("shape: unknown kind")

// Kind is the outline of a star.
type Kind uint8

// Shape kinds, in generation order.
const (
	Circle Kind = iota
	Triangle
	Square
	Pentagon
	Hexagon

	// NumKinds is the number of shape kinds.
	NumKinds = int(Hexagon) + 1
)

// Kinds lists every kind in declaration order.
var Kinds = [NumKinds]Kind{Circle, Triangle, Square, Pentagon, Hexagon}

var kindNames = [NumKinds]string{"circle", "triangle", "square", "pentagon", "hexagon"}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Sides returns the number of polygon sides, or 0 for Circle.
func (k Kind) Sides() int {
	switch k {
	case Triangle:
		return 3
	case Square:
		return 4
	case Pentagon:
		return 5
	case Hexagon:
		return 6
	default:
		return 0
	}
}

// ParseKind converts a kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
