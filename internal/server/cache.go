package server

import (
	"sync"
	"time"

	"github.com/mj1618/tilerc/internal/model"
)

// LoadFunc assembles the configuration.
type LoadFunc func() (*model.Config, error)

// ConfigCache provides a TTL-based cache for the assembled configuration,
// so a burst of tool calls reads the overrides file once.
type ConfigCache struct {
	mu        sync.Mutex
	load      LoadFunc
	cfg       *model.Config
	timestamp time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewConfigCache creates a new cache. A ttl of 0 disables caching.
func NewConfigCache(load LoadFunc, ttl time.Duration) *ConfigCache {
	return &ConfigCache{load: load, ttl: ttl, now: time.Now}
}

// Get returns the cached configuration if within TTL, otherwise loads it.
// A failed load leaves the previous entry in place.
func (c *ConfigCache) Get() (*model.Config, error) {
	if c.ttl == 0 {
		return c.load()
	}

	c.mu.Lock()
	if c.cfg != nil && c.now().Sub(c.timestamp) < c.ttl {
		cfg := c.cfg
		c.mu.Unlock()
		return cfg, nil
	}
	c.mu.Unlock()

	cfg, err := c.load()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cfg = cfg
	c.timestamp = c.now()
	c.mu.Unlock()

	return cfg, nil
}

// Invalidate drops the cached configuration.
func (c *ConfigCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = nil
}
