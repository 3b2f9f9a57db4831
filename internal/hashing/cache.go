package hashing

import "sync"

type cacheKey struct {
	hash  uint64
	depth int
}

// NodeCache remembers perft subtree totals by position key and depth. It is
// safe for concurrent use by the workers of a parallel divide.
type NodeCache struct {
	entries     map[cacheKey]uint64
	maxCapacity int
	hits        int
	mu          sync.RWMutex
}

// NewNodeCache creates a cache. maxCapacity of 0 means unlimited capacity;
// once a limited cache is full, new entries are dropped.
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored total for a position at a depth.
func (c *NodeCache) Lookup(hash uint64, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	nodes, ok := c.entries[cacheKey{hash, depth}]
	if ok {
		c.hits++
	}
	return nodes, ok
}

// Store records a total unless the cache is full.
func (c *NodeCache) Store(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity {
		return
	}
	c.entries[cacheKey{hash, depth}] = nodes
}

// Len returns the number of stored entries.
func (c *NodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Hits returns how many lookups found an entry.
func (c *NodeCache) Hits() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *NodeCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
