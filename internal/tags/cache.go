// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd006-caching R1, R2.
package tags

import (
	"sync"

	"github.com/petar-djukic/repomap/pkg/types"
)

// Store is an optional persistence layer behind the tag cache. A store
// is a best-effort optimization: correctness never depends on it, and a
// failing store simply leaves the cache memory-only.
type Store interface {
	Get(path string, sig types.FileSignature) ([]types.Tag, bool)
	Put(path string, sig types.FileSignature, tags []types.Tag)
	Close() error
}

type cacheEntry struct {
	sig  types.FileSignature
	tags []types.Tag
}

// Cache memoizes extracted tags per file, keyed on (path, signature).
// It is owned by one session; no cross-session locking is needed. The
// mutex guards only map access, never extraction or file I/O.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	store   Store

	hits   int
	misses int
}

// CacheStats reports hit/miss counts since the cache was created.
type CacheStats struct {
	Hits   int
	Misses int
}

// NewCache creates an empty tag cache. store may be nil.
func NewCache(store Store) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		store:   store,
	}
}

// Get returns the cached tags for path if the signature still matches.
// A signature mismatch counts as a miss; the stale entry stays until
// Put replaces it.
func (c *Cache) Get(path string, sig types.FileSignature) ([]types.Tag, bool) {
	c.mu.Lock()
	e, ok := c.entries[path]
	if ok && e.sig == sig {
		c.hits++
		c.mu.Unlock()
		return e.tags, true
	}
	c.misses++
	c.mu.Unlock()

	if c.store != nil {
		if tags, ok := c.store.Get(path, sig); ok {
			c.mu.Lock()
			c.entries[path] = cacheEntry{sig: sig, tags: tags}
			c.mu.Unlock()
			return tags, true
		}
	}
	return nil, false
}

// Put stores tags for path under sig, replacing any previous entry.
func (c *Cache) Put(path string, sig types.FileSignature, tags []types.Tag) {
	c.mu.Lock()
	c.entries[path] = cacheEntry{sig: sig, tags: tags}
	c.mu.Unlock()

	if c.store != nil {
		c.store.Put(path, sig, tags)
	}
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns hit/miss counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Hits: c.hits, Misses: c.misses}
}

// Close releases the backing store, if any.
func (c *Cache) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
