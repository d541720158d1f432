// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

const defaultCacheCap = 4096

// A Cache memoizes forward (cdf) or inverse (ppf) evaluations. Entries
// are keyed by the exact bit pattern of the input. The cache is bounded:
// once capacity entries are stored, the next insertion discards the whole
// map rather than tracking recency.
//
// A Cache performs no locking. Instances carrying caches therefore need
// external synchronization for concurrent evaluation; cache-free
// instances are safe for concurrent read-only use.
type Cache struct {
	cap int
	m   map[uint64]float64
}

// NewCache returns a cache holding at most capacity entries. A
// nonpositive capacity selects the default of 4096.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = defaultCacheCap
	}
	return &Cache{cap: capacity}
}

// Get reports the memoized value for x, if present.
func (c *Cache) Get(x float64) (float64, bool) {
	v, ok := c.m[math.Float64bits(x)]
	return v, ok
}

// Put memoizes v for x, resetting the cache first if it is full.
func (c *Cache) Put(x, v float64) {
	if c.m == nil || len(c.m) >= c.cap {
		c.m = make(map[uint64]float64, c.cap/4+1)
	}
	c.m[math.Float64bits(x)] = v
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int { return len(c.m) }
