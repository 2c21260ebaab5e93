package data

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCacheGetSet(t *testing.T) {
	c := NewResponseCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestResponseCacheExpiry(t *testing.T) {
	c := NewResponseCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	require.NoError(t, c.Set(ctx, "k", []byte("v")))

	now = now.Add(59 * time.Second)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.evictExpired()
	assert.Equal(t, 0, c.Len())
}

func TestNilResponseCache(t *testing.T) {
	var c *ResponseCache
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
	assert.NoError(t, c.Set(context.Background(), "k", nil))
}

func TestGenerateCacheKey(t *testing.T) {
	type req struct {
		Extra float64           `json:"extra"`
		Tags  map[string]string `json:"tags"`
	}
	a, err := GenerateCacheKey("compare", req{Extra: 100, Tags: map[string]string{"a": "1", "b": "2"}})
	require.NoError(t, err)
	b, err := GenerateCacheKey("compare", req{Extra: 100, Tags: map[string]string{"b": "2", "a": "1"}})
	require.NoError(t, err)
	c, err := GenerateCacheKey("compare", req{Extra: 101})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^compare:[0-9a-f]{64}$`, a)
}

// Runs only when a Redis server is available, e.g. DEBTPLAN_TEST_REDIS=localhost:6379.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("DEBTPLAN_TEST_REDIS")
	if addr == "" {
		t.Skip("DEBTPLAN_TEST_REDIS not set")
	}
	ctx := context.Background()
	c := NewRedisCache(&redis.Options{Addr: addr}, time.Minute)
	defer c.Close()
	require.NoError(t, c.Ping(ctx))

	key, err := GenerateCacheKey("test", t.Name()+time.Now().String())
	require.NoError(t, err)
	_, ok := c.Get(ctx, key)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, key, []byte(`{"ok":true}`)))
	got, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.JSONEq(t, `{"ok":true}`, string(got))
}
