// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a small random-replacement cache, used to memoize
// compiled layouts.
package cache

import (
	"sync"
)

// DefaultSize is the default number of entries of a cache.
const DefaultSize = 1 << 8

// Cache memoizes the results of a function. When it is full, a random entry is
// evicted to make room.
//
// Its zero value is safe to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxEntries is the maximum number of entries kept. If it is zero,
	// DefaultSize is used.
	//
	// MaxEntries must not be changed concurrently with calls to Get.
	MaxEntries int

	mu sync.RWMutex
	m  map[K]V
}

// Get returns the value for k, calling fill to compute it if it is not
// cached. fill is called without holding any locks, so concurrent callers may
// compute the same value; the first one stored wins.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		return v
	}

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[k]; ok {
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	// Map iteration order is random, which makes this a random eviction.
	for old := range c.m {
		if len(c.m) < c.max() {
			break
		}
		delete(c.m, old)
	}
	c.m[k] = nv
	return nv
}

func (c *Cache[K, V]) max() int {
	if c.MaxEntries <= 0 {
		return DefaultSize
	}
	return c.MaxEntries
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Evict removes the entry for k. If there is no such entry, Evict is a no-op.
func (c *Cache[K, V]) Evict(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, k)
}

// Flush removes all entries.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}
