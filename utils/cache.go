// File: utils/cache.go
package utils

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"mediq/config"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the read-through cache used by the availability resolvers.
// Entries always carry a TTL; Set clamps it to the configured ceiling so a
// caller can never pin a stale view indefinitely.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// CacheClient is the shared Redis client backing the cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client (using DB from AppConfig).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the shared Redis client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// RedisCache implements Cache on top of the shared Redis client.
type RedisCache struct {
	client *redis.Client
	maxTTL time.Duration
}

// NewRedisCache wraps the given client. maxTTL bounds every entry's
// lifetime; a non-positive maxTTL falls back to one minute.
func NewRedisCache(client *redis.Client, maxTTL time.Duration) *RedisCache {
	if maxTTL <= 0 {
		maxTTL = time.Minute
	}
	return &RedisCache{client: client, maxTTL: maxTTL}
}

func (rc *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := rc.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (rc *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 || ttl > rc.maxTTL {
		ttl = rc.maxTTL
	}
	return rc.client.Set(ctx, key, value, ttl).Err()
}

func (rc *RedisCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return rc.client.Del(ctx, keys...).Err()
}
