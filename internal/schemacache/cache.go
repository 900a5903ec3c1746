// Package schemacache memoizes resolved table layouts keyed by the
// (HeapSizes, Valid, Rows) triple that determines them, so that opening
// many streams sharing the same shape only pays for schema resolution
// once.
package schemacache

import (
	"sync"

	"github.com/mdtables/tablestream/format"
	"github.com/mdtables/tablestream/heapsize"
	"github.com/mdtables/tablestream/internal/hash"
	"github.com/mdtables/tablestream/rowcount"
	"github.com/mdtables/tablestream/schema"
)

// Cache memoizes schema.Resolved values by a hash of the inputs that
// fully determine them.
type Cache struct {
	mu      sync.RWMutex
	entries map[uint64]map[format.TableNumber]schema.Resolved
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[uint64]map[format.TableNumber]schema.Resolved)}
}

// key hashes the heap sizes, valid mask, and row-count vector into a
// single cache key. Collisions are not detected: two distinct
// (sizes, valid, rows) inputs with the same 64-bit hash would share one
// cache entry. We accept the (astronomically unlikely) risk
// of a 64-bit hash collision between distinct inputs, same as the
// teacher's schema-cache lookups do for metric identity.
func key(sizes heapsize.Sizes, valid uint64, rows rowcount.Vector) uint64 {
	buf := make([]byte, 0, 3+8+4*format.MaxTableNumber)
	buf = append(buf, sizes.String, sizes.GUID, sizes.Blob)

	for i := 0; i < 8; i++ {
		buf = append(buf, byte(valid>>(8*i)))
	}

	for _, r := range rows {
		buf = append(buf, byte(r), byte(r>>8), byte(r>>16), byte(r>>24))
	}

	return hash.ID(string(buf))
}

// Get resolves and caches the full per-table layout map for the given
// shape, reusing a previous result when the shape has already been seen.
func (c *Cache) Get(sizes heapsize.Sizes, valid uint64, rows rowcount.Vector) (map[format.TableNumber]schema.Resolved, error) {
	k := key(sizes, valid, rows)

	c.mu.RLock()
	if resolved, ok := c.entries[k]; ok {
		c.mu.RUnlock()
		return resolved, nil
	}
	c.mu.RUnlock()

	resolved, err := schema.ResolveAll(sizes, rows)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[k] = resolved
	c.mu.Unlock()

	return resolved, nil
}

// Len reports the number of distinct shapes currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
