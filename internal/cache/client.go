package cache

import (
	"time"

	"github.com/yourusername/clust/internal/client"
	"go.uber.org/zap"
)

const (
	keyStatus   = "status"
	keyPods     = "pods"
	keyContexts = "contexts"
)

// CachedClient wraps a ClusterClient and serves repeated queries from a
// TTLCache until they expire.
type CachedClient struct {
	backend client.ClusterClient
	cache   Cache
}

// Wrap returns c unchanged when ttl is not positive, otherwise a CachedClient
// around it.
func Wrap(c client.ClusterClient, ttl time.Duration, logger *zap.Logger) client.ClusterClient {
	if ttl <= 0 {
		return c
	}
	logger.Info("Caching cluster client queries", zap.Duration("ttl", ttl))
	return NewCachedClient(c, NewTTLCache(ttl, logger))
}

// NewCachedClient creates a CachedClient backed by cache
func NewCachedClient(backend client.ClusterClient, cache Cache) *CachedClient {
	return &CachedClient{backend: backend, cache: cache}
}

func (c *CachedClient) Status() string {
	v := c.lookup(keyStatus, func() []string {
		return []string{c.backend.Status()}
	})
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

func (c *CachedClient) GetPods() []string {
	return c.lookup(keyPods, c.backend.GetPods)
}

func (c *CachedClient) GetContexts() []string {
	return c.lookup(keyContexts, c.backend.GetContexts)
}

// Invalidate drops every cached answer so the next frame queries the backend
func (c *CachedClient) Invalidate() {
	c.cache.Invalidate()
}

func (c *CachedClient) lookup(key string, fetch func() []string) []string {
	if v, ok := c.cache.Get(key); ok {
		return v
	}
	v := fetch()
	c.cache.Set(key, v)
	return v
}
