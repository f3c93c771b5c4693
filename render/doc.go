// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render holds the artifacts the drawing strategies reuse between
// frames, and the small paint helpers they share.
//
// # Caches
//
// A [Layer] owns four caches:
//
//   - sprites: pre-rendered bitmaps keyed "shared:{color}:{radius}:{kind}",
//     or "unique:{id}" when force-unique mode is on
//   - absolute paths: one outline per star in surface coordinates, keyed by id
//   - relative paths: one outline per kind and radius around the origin,
//     keyed "{kind}:{radius}"
//   - background: a viewport-sized bitmap of every star except one
//
// An entry is evicted or rebuilt only when an input encoded in its key may
// have changed. A star that moves invalidates its absolute path and the
// background, never a relative path or a shared sprite.
//
// # Attachment
//
// Build operations need a surface size. Until [Layer.Attach] is called,
// every build is a no-op that leaves cached state untouched, so the first
// frame after attaching builds what it needs.
package render
