package cache

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Cache defines the interface for query result caching
type Cache interface {
	// Get retrieves a cached result
	Get(key string) ([]string, bool)

	// Set stores a result under key
	Set(key string, values []string)

	// Invalidate clears the cache
	Invalidate()
}

type entry struct {
	values    []string
	expiresAt time.Time
}

// TTLCache implements a time-based cache
type TTLCache struct {
	entries map[string]entry
	ttl     time.Duration
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewTTLCache creates a new TTL-based cache
func NewTTLCache(ttl time.Duration, logger *zap.Logger) *TTLCache {
	return &TTLCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		logger:  logger,
	}
}

// Get retrieves a copy of the cached result for key
func (c *TTLCache) Get(key string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		c.logger.Debug("Cache miss: no data", zap.String("key", key))
		return nil, false
	}

	if time.Now().After(e.expiresAt) {
		c.logger.Debug("Cache miss: expired",
			zap.String("key", key),
			zap.Time("expires_at", e.expiresAt),
		)
		return nil, false
	}

	c.logger.Debug("Cache hit",
		zap.String("key", key),
		zap.Duration("time_left", time.Until(e.expiresAt)),
	)

	return clone(e.values), true
}

// Set stores a copy of values under key
func (c *TTLCache) Set(key string, values []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	c.entries[key] = entry{values: clone(values), expiresAt: expiresAt}

	c.logger.Debug("Cache updated",
		zap.String("key", key),
		zap.Time("expires_at", expiresAt),
		zap.Int("values", len(values)),
	)
}

// Invalidate clears the cache
func (c *TTLCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	c.logger.Debug("Cache invalidated")
}

func clone(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
