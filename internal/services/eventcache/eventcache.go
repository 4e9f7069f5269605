package eventcache

import (
	"time"

	"github.com/line-relay/line-relay-api/internal/metrics"
	"github.com/patrickmn/go-cache"
)

// Cache remembers webhook event ids that were already handled so a
// redelivered event is not answered twice.
type Cache struct {
	cache *cache.Cache
}

// New creates a new event cache. Entries expire after ttl.
func New(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// MarkHandled records eventID and reports whether this is the first time it was seen.
// Empty ids are never deduplicated.
func (c *Cache) MarkHandled(eventID string) bool {
	if eventID == "" {
		return true
	}
	// Add fails when the key is present and unexpired, which makes check-and-set atomic.
	if err := c.cache.Add(eventID, struct{}{}, cache.DefaultExpiration); err != nil {
		return false
	}
	metrics.EventCacheEntries.Set(float64(c.Len()))
	return true
}

// Len returns the number of remembered events, expired or not.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}
