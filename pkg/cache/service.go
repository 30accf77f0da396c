package cache

import "time"

// CacheService defines the behavior for caching mechanisms
type CacheService interface {
	// Get retrieves a value from the cache.
	// Returns value, true if found; nil, false otherwise.
	Get(key string) (interface{}, bool)

	// Set adds a value to the cache with a duration
	Set(key string, value interface{}, duration time.Duration)

	// Delete removes a value from the cache
	Delete(key string)

	// ItemCount returns the number of entries, possibly including expired ones
	// not yet cleaned up.
	ItemCount() int

	// Keys lists the keys of unexpired entries.
	Keys() []string

	// Flush removes all items without running eviction callbacks
	Flush()
}
