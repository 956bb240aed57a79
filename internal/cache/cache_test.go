// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestGet(t *testing.T) {
	var (
		c     Cache[int, string]
		calls int
	)
	fill := func(k int) string {
		calls++
		return strconv.Itoa(k)
	}
	for range 3 {
		if got := c.Get(42, fill); got != "42" {
			t.Fatalf("Get(42) = %q, want %q", got, "42")
		}
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
	c.Evict(42)
	c.Get(42, fill)
	if calls != 2 {
		t.Errorf("fill called %d times after Evict, want 2", calls)
	}
	c.Flush()
	if n := c.Len(); n != 0 {
		t.Errorf("Len() = %d after Flush, want 0", n)
	}
}

func TestMaxEntries(t *testing.T) {
	c := Cache[int, int]{MaxEntries: 4}
	for i := range 100 {
		if got := c.Get(i, func(k int) int { return k * k }); got != i*i {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i*i)
		}
		if n := c.Len(); n > 4 {
			t.Fatalf("Len() = %d, want at most 4", n)
		}
	}
	if n := c.Len(); n != 4 {
		t.Errorf("Len() = %d, want 4", n)
	}

	var d Cache[int, int]
	for i := range 2 * DefaultSize {
		d.Get(i, func(k int) int { return k })
	}
	if n := d.Len(); n != DefaultSize {
		t.Errorf("Len() = %d, want %d", n, DefaultSize)
	}
}

func TestConcurrent(t *testing.T) {
	c := Cache[int, int]{MaxEntries: 8}
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				k := (g + i) % 16
				if got := c.Get(k, func(k int) int { return -k }); got != -k {
					t.Errorf("Get(%d) = %d, want %d", k, got, -k)
					return
				}
			}
		}()
	}
	wg.Wait()
}
