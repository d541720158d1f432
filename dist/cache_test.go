// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCachePutGet(t *testing.T) {
	c := NewCache(8)
	_, ok := c.Get(1.5)
	assert.False(t, ok)

	c.Put(1.5, 0.25)
	v, ok := c.Get(1.5)
	assert.True(t, ok)
	assert.Equal(t, 0.25, v)
	assert.Equal(t, 1, c.Len())

	// Distinct bit patterns are distinct keys.
	c.Put(-1.5, 0.75)
	v, ok = c.Get(-1.5)
	assert.True(t, ok)
	assert.Equal(t, 0.75, v)
}

func TestCacheResetsWhenFull(t *testing.T) {
	c := NewCache(2)
	c.Put(1, 0.1)
	c.Put(2, 0.2)
	assert.Equal(t, 2, c.Len())

	// The third insertion discards the full map and starts over.
	c.Put(3, 0.3)
	assert.Equal(t, 1, c.Len())
	v, ok := c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 0.3, v)
	_, ok = c.Get(1)
	assert.False(t, ok)
}

func TestCacheDefaultCapacity(t *testing.T) {
	c := NewCache(0)
	for i := 0; i < defaultCacheCap; i++ {
		c.Put(float64(i), 0)
	}
	assert.Equal(t, defaultCacheCap, c.Len())
}
