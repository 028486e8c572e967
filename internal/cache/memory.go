package cache

import (
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ppiankov/rulegen/internal/logging"
)

// MemoryCache holds parsed row payloads for the lifetime of the process.
// Watch mode rebuilds against it, so an unchanged workbook is decoded once.
type MemoryCache struct {
	entries *gocache.Cache
}

// NewMemoryCache creates a memory cache whose entries expire after
// defaultTTL and are swept every cleanupInterval
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	entries := gocache.New(defaultTTL, cleanupInterval)

	log := logging.New("cache")
	entries.OnEvicted(func(key string, _ interface{}) {
		log.Debug("rows evicted from memory", slog.String("key", key))
	})

	return &MemoryCache{entries: entries}
}

// Get returns a copy of the payload stored under key
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	v, found := c.entries.Get(key)
	if !found {
		return nil, false
	}
	payload, ok := v.([]byte)
	if !ok {
		return nil, false
	}
	return append([]byte(nil), payload...), true
}

// Set stores a copy of value so later edits by the caller do not leak into
// the cache. A zero ttl uses the cache default.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.entries.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

func (c *MemoryCache) Delete(key string) error {
	c.entries.Delete(key)
	return nil
}

func (c *MemoryCache) Clear() error {
	c.entries.Flush()
	return nil
}

// Len returns the number of cached workbook versions, expired ones included
// until the next sweep
func (c *MemoryCache) Len() int {
	return c.entries.ItemCount()
}
