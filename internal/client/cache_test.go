package client

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetMissingKey(t *testing.T) {
	cache := newResponseCache(4, time.Minute)

	_, ok := cache.Get("/api/documents/collections")
	assert.False(t, ok)
}

func TestCachePutThenGet(t *testing.T) {
	cache := newResponseCache(4, time.Minute)

	cache.Put("/api/documents/collections", []byte(`{"collections":[]}`))

	payload, ok := cache.Get("/api/documents/collections")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"collections":[]}`), payload)
}

func TestCacheEntryExpiresAfterTTL(t *testing.T) {
	cache := newResponseCache(4, time.Minute)
	current := time.Now()
	cache.now = func() time.Time { return current }

	cache.Put("/api/learning-path/popular", []byte(`{"paths":[]}`))

	current = current.Add(59 * time.Second)
	_, ok := cache.Get("/api/learning-path/popular")
	assert.True(t, ok, "entry inside TTL should be served")

	current = current.Add(2 * time.Second)
	_, ok = cache.Get("/api/learning-path/popular")
	assert.False(t, ok, "entry past TTL should be dropped")
	assert.Equal(t, 0, cache.Len())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := newResponseCache(2, time.Minute)

	cache.Put("a", []byte("1"))
	cache.Put("b", []byte("2"))

	// Touch "a" so that "b" becomes the eviction candidate.
	_, ok := cache.Get("a")
	assert.True(t, ok)

	cache.Put("c", []byte("3"))

	_, ok = cache.Get("a")
	assert.True(t, ok)
	_, ok = cache.Get("b")
	assert.False(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())
}

func TestCachePutReplacesExistingEntry(t *testing.T) {
	cache := newResponseCache(2, time.Minute)

	cache.Put("a", []byte("old"))
	cache.Put("a", []byte("new"))

	payload, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), payload)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheInvalidatePrefix(t *testing.T) {
	cache := newResponseCache(8, time.Minute)

	cache.Put("/api/documents/collections", []byte("1"))
	cache.Put("/api/documents/search?query=go", []byte("2"))
	cache.Put("/api/learning-path/popular", []byte("3"))

	cache.InvalidatePrefix("/api/documents")

	_, ok := cache.Get("/api/documents/collections")
	assert.False(t, ok)
	_, ok = cache.Get("/api/documents/search?query=go")
	assert.False(t, ok)
	_, ok = cache.Get("/api/learning-path/popular")
	assert.True(t, ok)
}

func TestCacheDefaultCapacity(t *testing.T) {
	cache := newResponseCache(0, time.Minute)

	for i := 0; i < 200; i++ {
		cache.Put(fmt.Sprintf("key-%d", i), []byte("x"))
	}
	assert.Equal(t, 128, cache.Len())
}
