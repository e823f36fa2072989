package utils

import (
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheItem struct {
	data      interface{}
	expiresAt time.Time
}

// PageCache is a small in-process LRU with per-entry TTL, used to serve
// anonymous listing pages without re-running the query for every hit.
type PageCache struct {
	lruCache *lru.Cache[string, cacheItem]
}

var cacheInstance *PageCache

func GetCache() *PageCache {
	if cacheInstance == nil {
		l, err := lru.New[string, cacheItem](256)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &PageCache{lruCache: l}
	}
	return cacheInstance
}

func (c *PageCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, cacheItem{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	})
}

// Get returns nil when the key is absent or expired.
func (c *PageCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(val.expiresAt) {
		c.lruCache.Remove(key)
		return nil
	}
	return val.data
}

func (c *PageCache) Delete(key string) {
	c.lruCache.Remove(key)
}

// Purge empties the cache. Tests call this between cases.
func (c *PageCache) Purge() {
	c.lruCache.Purge()
}
