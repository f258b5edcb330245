package client

import (
	"container/list"
	"strings"
	"sync"
	"time"
)

// responseCache is a bounded LRU cache with per-entry TTL used to memoize
// GET responses. Expiry is lazy: stale entries are dropped when read.
// Mutating calls invalidate whole resource prefixes so handlers never see
// a response that predates their own write.
type responseCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
	now      func() time.Time
}

type cacheEntry struct {
	key      string
	payload  []byte
	storedAt time.Time
}

func newResponseCache(capacity int, ttl time.Duration) *responseCache {
	if capacity <= 0 {
		capacity = 128
	}
	return &responseCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

// Get returns the cached payload for key, or false when the key is absent
// or its entry has outlived the TTL.
func (c *responseCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*cacheEntry)
	if c.now().Sub(entry.storedAt) >= c.ttl {
		c.order.Remove(elem)
		delete(c.entries, key)
		return nil, false
	}
	c.order.MoveToFront(elem)
	return entry.payload, true
}

// Put stores payload under key, replacing any previous entry and evicting
// the least recently used entry when the cache is full.
func (c *responseCache) Put(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.payload = payload
		entry.storedAt = c.now()
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	elem := c.order.PushFront(&cacheEntry{key: key, payload: payload, storedAt: c.now()})
	c.entries[key] = elem
}

// InvalidatePrefix drops every entry whose key starts with prefix.
func (c *responseCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, elem := range c.entries {
		if strings.HasPrefix(key, prefix) {
			c.order.Remove(elem)
			delete(c.entries, key)
		}
	}
}

// Len returns the number of live entries, counting stale ones not yet
// dropped by a read.
func (c *responseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
