// Package redis provides a small JSON cache over go-redis. The cache is
// optional infrastructure: when REDIS_ADDR is unset the app runs without
// it and every lookup is a miss.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/booklovers/backend/internal/platform/logger"
)

// Cache stores JSON-encoded payloads keyed by string. A nil *Cache is a
// valid no-op cache so callers never branch on configuration.
type Cache struct {
	rdb *goredis.Client
	log *logger.Logger
}

// New connects to the given address, typically from REDIS_ADDR. It returns
// (nil, nil) when the address is empty so the caller can proceed uncached.
func New(log *logger.Logger, addr string) (*Cache, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info("redis cache connected", "addr", addr)
	return &Cache{rdb: rdb, log: log}, nil
}

// Get unmarshals the cached value at key into dest. The bool reports
// whether the key was present; cache errors are logged and read as misses.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("redis get failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("redis cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// Set marshals value and stores it with the given TTL. Failures are logged
// and swallowed; the cache never fails a request.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("redis cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn("redis set failed", "key", key, "error", err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
