package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"
)

// Cache stores encoded API results by key. Implementations must be safe for
// concurrent use. A miss and an expired entry look the same to callers.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// cacheEntry represents a cached result
type cacheEntry struct {
	Value     []byte
	ExpiresAt time.Time
}

// ResponseCache provides in-memory caching of simulation results with a TTL.
// Entries are lost on restart; use RedisCache to share results between instances.
type ResponseCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
	now   func() time.Time
	stop  chan struct{}
}

// NewResponseCache starts a cache whose entries live for ttl.
// Call Close to stop the cleanup goroutine.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := &ResponseCache{
		store: make(map[string]*cacheEntry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go c.cleanup(5 * time.Minute)
	return c
}

// Get retrieves a cached value if available and not expired
func (c *ResponseCache) Get(_ context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists || c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Value, true
}

// Set stores a value in the cache
func (c *ResponseCache) Set(_ context.Context, key string, value []byte) error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &cacheEntry{
		Value:     value,
		ExpiresAt: c.now().Add(c.ttl),
	}
	return nil
}

// Clear removes all entries from the cache
func (c *ResponseCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*cacheEntry)
}

func (c *ResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *ResponseCache) Close() {
	close(c.stop)
}

// cleanup periodically removes expired entries
func (c *ResponseCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *ResponseCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
		}
	}
}

// GenerateCacheKey creates a deterministic key from a request value.
// The value is JSON-encoded, so map keys are sorted and field order is fixed.
func GenerateCacheKey(prefix string, req any) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	// Hash the key to keep it reasonably sized
	hash := sha256.Sum256(raw)
	return prefix + ":" + hex.EncodeToString(hash[:]), nil
}
