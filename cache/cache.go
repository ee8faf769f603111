package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

// Cache is a generic LRU cache with a fixed capacity.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*node[K, V]
	lru      list[K, V]
	capacity int
	onEvict  func(K, V)

	// Statistics (atomic for lock-free reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithEvict registers fn to be called with every entry dropped because the
// cache was full. It is also called for entries removed by Delete and Clear,
// so fn can release resources held by values.
//
// fn runs with the cache lock held and must not call back into the cache.
func WithEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// New creates a cache holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[K, V]{
		entries:  make(map[K]*node[K, V]),
		capacity: capacity,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.lru.moveToFront(n)
	c.hits.Add(1)
	return n.value, true
}

// Set stores a value, evicting the least recently used entry if the cache
// is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.value = value
		c.lru.moveToFront(n)
		return
	}
	c.insert(key, value)
}

// GetOrCreate returns the cached value for key or creates it with create.
// A failed create leaves the cache unchanged and returns its error.
//
// create is called with the cache lock held, so concurrent callers never
// build the same value twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.lru.moveToFront(n)
		c.hits.Add(1)
		return n.value, nil
	}
	c.misses.Add(1)

	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(key, value)
	return value, nil
}

// insert adds a new entry. Must be called with c.mu held.
func (c *Cache[K, V]) insert(key K, value V) {
	for c.lru.len >= c.capacity {
		oldest := c.lru.removeOldest()
		if oldest == nil {
			break
		}
		delete(c.entries, oldest.key)
		c.evictions.Add(1)
		if c.onEvict != nil {
			c.onEvict(oldest.key, oldest.value)
		}
	}
	c.entries[key] = c.lru.pushFront(key, value)
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.unlink(n)
	delete(c.entries, key)
	if c.onEvict != nil {
		c.onEvict(n.key, n.value)
	}
	return true
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for n := c.lru.head; n != nil; n = n.next {
			c.onEvict(n.key, n.value)
		}
	}
	c.entries = make(map[K]*node[K, V])
	c.lru.clear()
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries dropped because the cache was full.
	Evictions uint64
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
