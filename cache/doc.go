// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides the keyed store behind starbench's sprite and
// path caches.
//
// # Store[K, V]
//
// A map with hit/miss/eviction statistics and explicit eviction only.
// Entries never age out: a rendering cache entry stays valid until the
// inputs encoded in its key change, and the owner decides when that is.
//
//	sprites := cache.New[string, *gg.ImageBuf]()
//	buf := sprites.GetOrCreate("shared:#FFD700:3:circle", build)
//	sprites.Delete("unique:42")
//
// # Thread Safety
//
// Store is not safe for concurrent use. It is owned by a single writer
// (the engine's draw loop) and needs no locking.
package cache
