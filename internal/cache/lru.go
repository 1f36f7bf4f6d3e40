// Package cache provides a small bounded, concurrency-safe LRU cache used
// to memoize the three pure functions the lunar assembler calls
// repeatedly: ephemeris.NewMoon, the New-Moon-day-in-local-TZ helper, and
// the month-11 anchor. None of the retrieved example repositories carry an
// LRU cache dependency suited to this (the closest, go-satellite's
// dependency graph, has none either), so this is hand-rolled against the
// standard container/list, the conventional Go idiom for an LRU: a
// doubly-linked list for recency order plus a map for O(1) lookup.
//
// Caches are purely functional accelerators (§5, §8 of the design notes):
// eviction policy is not observable in any result, only in how often the
// underlying function actually runs.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a fixed-capacity, least-recently-used cache safe for concurrent
// use by multiple goroutines.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List // front = most recently used
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New returns an LRU cache holding at most capacity entries.
//
// A non-positive capacity is treated as 1: the cache is an accelerator,
// never a correctness requirement, so it is never allowed to hold zero
// entries and panic-loop on insert.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached value for key and true, or the zero value and
// false if key is not present.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key, evicting the least recently used entry if
// the cache is at capacity.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	el := c.order.PushFront(&entry[K, V]{key: key, value: value})
	c.items[key] = el
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*entry[K, V]).key)
		}
	}
}

// GetOrCompute returns the cached value for key, computing and storing it
// via fn on a miss. fn is called without the cache lock held.
func (c *LRU[K, V]) GetOrCompute(key K, fn func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := fn()
	c.Put(key, v)
	return v
}
