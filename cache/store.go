// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"cmp"
	"maps"
	"slices"
)

// Store is a keyed cache with explicit eviction.
type Store[K cmp.Ordered, V any] struct {
	entries map[K]V

	hits      uint64
	misses    uint64
	evictions uint64
}

// Stats is a point-in-time view of a Store.
type Stats struct {
	// Len is the number of cached entries.
	Len int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 with no lookups.
	HitRate float64
	// Evictions counts entries removed by Delete, DeleteFunc or Clear.
	Evictions uint64
}

// New creates an empty store.
func New[K cmp.Ordered, V any]() *Store[K, V] {
	return &Store[K, V]{entries: make(map[K]V)}
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (s *Store[K, V]) Get(key K) (V, bool) {
	v, ok := s.entries[key]
	if ok {
		s.hits++
	} else {
		s.misses++
	}
	return v, ok
}

// Peek is Get without touching the statistics.
func (s *Store[K, V]) Peek(key K) (V, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Set stores a value, replacing any existing entry.
func (s *Store[K, V]) Set(key K, value V) {
	s.entries[key] = value
}

// GetOrCreate returns a cached value or creates and stores it.
// This is the preferred method for cache access.
func (s *Store[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := s.entries[key]; ok {
		s.hits++
		return v
	}
	s.misses++
	v := create()
	s.entries[key] = v
	return v
}

// Delete removes an entry. Returns true if the entry existed.
func (s *Store[K, V]) Delete(key K) bool {
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	s.evictions++
	return true
}

// DeleteFunc removes every entry for which del returns true and reports
// how many were removed.
func (s *Store[K, V]) DeleteFunc(del func(K, V) bool) int {
	n := 0
	for k, v := range s.entries {
		if del(k, v) {
			delete(s.entries, k)
			n++
		}
	}
	s.evictions += uint64(n)
	return n
}

// Clear removes all entries. Clearing an empty store is a no-op.
func (s *Store[K, V]) Clear() {
	s.evictions += uint64(len(s.entries))
	clear(s.entries)
}

// Len returns the number of entries.
func (s *Store[K, V]) Len() int {
	return len(s.entries)
}

// Keys returns the cached keys in ascending order.
func (s *Store[K, V]) Keys() []K {
	return slices.Sorted(maps.Keys(s.entries))
}

// Stats returns current cache statistics.
func (s *Store[K, V]) Stats() Stats {
	var hitRate float64
	if total := s.hits + s.misses; total > 0 {
		hitRate = float64(s.hits) / float64(total)
	}
	return Stats{
		Len:       len(s.entries),
		Hits:      s.hits,
		Misses:    s.misses,
		HitRate:   hitRate,
		Evictions: s.evictions,
	}
}

// ResetStats zeroes the hit, miss and eviction counters.
func (s *Store[K, V]) ResetStats() {
	s.hits, s.misses, s.evictions = 0, 0, 0
}
