// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"slices"
	"strconv"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int]()
	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestStoreGetSet(t *testing.T) {
	c := New[string, int]()
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v; want 42, true", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/1", stats.Hits, stats.Misses)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", stats.HitRate)
	}
}

func TestStoreGetOrCreate(t *testing.T) {
	c := New[string, int]()
	createCalled := 0

	val := c.GetOrCreate("key1", func() int {
		createCalled++
		return 100
	})
	if val != 100 {
		t.Errorf("expected 100, got %d", val)
	}

	val = c.GetOrCreate("key1", func() int {
		createCalled++
		return 200
	})
	if val != 100 {
		t.Errorf("expected 100 (cached), got %d", val)
	}
	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}
}

func TestStorePeekDoesNotCount(t *testing.T) {
	c := New[int, string]()
	c.Set(1, "a")
	c.Peek(1)
	c.Peek(2)
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Peek changed stats: %+v", s)
	}
}

func TestStoreDelete(t *testing.T) {
	c := New[string, int]()
	c.Set("key1", 42)

	if !c.Delete("key1") {
		t.Error("expected Delete to return true for existing key")
	}
	if _, ok := c.Peek("key1"); ok {
		t.Error("expected key1 to be deleted")
	}
	if c.Delete("nonexistent") {
		t.Error("expected Delete to return false for non-existing key")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestStoreDeleteFunc(t *testing.T) {
	c := New[int, int]()
	for i := 0; i < 10; i++ {
		c.Set(i, i*i)
	}
	n := c.DeleteFunc(func(k, _ int) bool { return k%2 == 0 })
	if n != 5 {
		t.Errorf("DeleteFunc removed %d, want 5", n)
	}
	if want := []int{1, 3, 5, 7, 9}; !slices.Equal(c.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", c.Keys(), want)
	}
}

func TestStoreClearIdempotent(t *testing.T) {
	c := New[string, int]()
	for i := 0; i < 3; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	c.Clear()
	first := c.Keys()
	c.Clear()
	second := c.Keys()

	if c.Len() != 0 || len(first) != 0 || len(second) != 0 {
		t.Errorf("expected empty cache after Clear, got %v then %v", first, second)
	}
	if got := c.Stats().Evictions; got != 3 {
		t.Errorf("Evictions = %d, want 3", got)
	}
}

func TestStoreKeysSorted(t *testing.T) {
	c := New[string, int]()
	for _, k := range []string{"b", "c", "a"} {
		c.Set(k, 0)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(c.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", c.Keys(), want)
	}
}

func TestStoreResetStats(t *testing.T) {
	c := New[string, int]()
	c.Get("x")
	c.Set("x", 1)
	c.Get("x")
	c.Delete("x")
	c.ResetStats()
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 || s.Evictions != 0 || s.HitRate != 0 {
		t.Errorf("stats after reset = %+v", s)
	}
}

func BenchmarkStoreGetOrCreate(b *testing.B) {
	c := New[string, int]()
	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(keys[i%100], func() int { return i })
	}
}
