package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON read-through cache over redis. A nil *Cache is valid
// and behaves as a permanent miss, so callers don't need to branch on
// whether caching is configured.
type Cache struct {
	client redis.Cmdable
}

// New wraps an existing redis client.
func New(client redis.Cmdable) *Cache {
	return &Cache{client: client}
}

// NewFromURL connects to redis using a redis:// URL and verifies the
// connection with a ping.
func NewFromURL(ctx context.Context, url string) (*Cache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Cache{client: client}, nil
}

// GetJSON loads the value at key into dest. It reports whether a usable
// cached value was found; redis or decoding errors count as a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(val, dest) == nil
}

// SetJSON stores value at key with the given TTL. Failures are ignored; the
// cache is best-effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, ttl)
}

// Del drops the given keys.
func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, keys...)
}
