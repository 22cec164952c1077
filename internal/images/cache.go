package images

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the lookaside store for resolved destination images.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// RedisCache is the redis-backed Cache.
type RedisCache struct{ c *redis.Client }

func NewRedisCache(addr, pass string, db int) *RedisCache {
	return &RedisCache{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func NewRedisCacheFromClient(c *redis.Client) *RedisCache {
	return &RedisCache{c: c}
}

func (r *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(v, dst)
}

func (r *RedisCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, _ := json.Marshal(v)
	return r.c.Set(ctx, key, b, ttl).Err()
}
