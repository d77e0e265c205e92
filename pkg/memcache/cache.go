package mem

import (
	"sync"
	"time"
)

// Cache is a small in-process TTL cache. Used to absorb read bursts on hot
// aggregate queries (leaderboard) between settlements; entries expire rather
// than being invalidated.
type Cache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]entry
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// NewCache returns a cache whose entries live for ttl. A non-positive ttl
// disables caching entirely: Get never hits and Set is a no-op.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:  ttl,
		data: make(map[string]entry),
	}
}

func (c *Cache) Set(key string, value interface{}) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key) // cleanup expired
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}
