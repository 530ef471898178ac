package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// InMemoryReportCache implements ReportCache with a process-local map.
// Used in tests and single-instance deployments without Redis.
type InMemoryReportCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
}

type inMemoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewInMemoryReportCache creates an empty in-memory cache
func NewInMemoryReportCache() *InMemoryReportCache {
	return &InMemoryReportCache{
		entries: make(map[string]inMemoryEntry),
	}
}

// Get unmarshals the cached value into dest
func (c *InMemoryReportCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores the value under key for the given TTL
func (c *InMemoryReportCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = inMemoryEntry{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}

// Invalidate removes the given keys
func (c *InMemoryReportCache) Invalidate(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()
	return nil
}

// InvalidatePrefix removes every key sharing the prefix
func (c *InMemoryReportCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
	return nil
}

// Close drops all entries
func (c *InMemoryReportCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string]inMemoryEntry)
	c.mu.Unlock()
	return nil
}

// Ensure InMemoryReportCache implements ReportCache
var _ ReportCache = (*InMemoryReportCache)(nil)
