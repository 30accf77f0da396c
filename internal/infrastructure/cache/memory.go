package cache

import (
	"storefront/pkg/cache"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache service
// defaultExpiration: default TTL for items
// cleanupInterval: how often to scan for expired items
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) cache.CacheService {
	return &memoryCache{
		store: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// NewMemoryCacheWithEviction is NewMemoryCache plus a callback run whenever an
// entry expires or is deleted.
func NewMemoryCacheWithEviction(defaultExpiration, cleanupInterval time.Duration, onEvicted func(key string, value interface{})) cache.CacheService {
	store := gocache.New(defaultExpiration, cleanupInterval)
	store.OnEvicted(onEvicted)
	return &memoryCache{store: store}
}

func (c *memoryCache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *memoryCache) Set(key string, value interface{}, duration time.Duration) {
	c.store.Set(key, value, duration)
}

func (c *memoryCache) Delete(key string) {
	c.store.Delete(key)
}

func (c *memoryCache) ItemCount() int {
	return c.store.ItemCount()
}

func (c *memoryCache) Keys() []string {
	items := c.store.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	return keys
}

func (c *memoryCache) Flush() {
	c.store.Flush()
}
