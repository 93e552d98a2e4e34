package evalcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig addresses a Redis instance for cross-process memoization,
// useful when several engine runs share one attraction set and oracle.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// RedisCache stores Result values in Redis as JSON, keyed by Key(route)
// under a fixed prefix so the keyspace is namespaced per attraction-set
// oracle generation.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
	prefix string
}

// NewRedisCache dials Redis and verifies connectivity with a bounded ping,
// mirroring the pool sizing and timeout discipline of a connection-pooled
// cache client. Callers should fall back to NewMemory on error rather than
// fail the engine: the cache is never required for correctness.
func NewRedisCache(ctx context.Context, cfg RedisConfig, prefix string) (*RedisCache, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 100
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     poolSize,
		MinIdleConns: 10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("evalcache: redis ping failed: %w", err)
	}

	return &RedisCache{client: client, ctx: ctx, prefix: prefix}, nil
}

// HealthCheck pings the underlying Redis client.
func (c *RedisCache) HealthCheck() error {
	pingCtx, cancel := context.WithTimeout(c.ctx, 2*time.Second)
	defer cancel()
	return c.client.Ping(pingCtx).Err()
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) fullKey(key string) string {
	return c.prefix + ":" + key
}

func (c *RedisCache) Get(key string) (Result, bool) {
	ctx, cancel := context.WithTimeout(c.ctx, 2*time.Second)
	defer cancel()

	raw, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if err != nil {
		return Result{}, false
	}
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, false
	}
	return result, true
}

func (c *RedisCache) Set(key string, result Result) {
	ctx, cancel := context.WithTimeout(c.ctx, 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	// Best-effort: a failed Set degrades to a cache miss on the next Get,
	// never a correctness problem.
	_ = c.client.Set(ctx, c.fullKey(key), raw, 24*time.Hour).Err()
}
