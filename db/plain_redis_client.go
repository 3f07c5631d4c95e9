package db

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// PlainRedisClient wraps a go-redis client behind the RedisClient interface.
type PlainRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewPlainRedisClient wraps an already-configured go-redis client.
func NewPlainRedisClient(ctx context.Context, client *redis.Client) *PlainRedisClient {
	return &PlainRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis without expiry.
func (r *PlainRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis.
func (r *PlainRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Exists reports whether the key is present.
func (r *PlainRedisClient) Exists(key string) (bool, error) {
	n, err := r.client.Exists(r.ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Del removes the key; missing keys are not an error.
func (r *PlainRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Ping checks connectivity.
func (r *PlainRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
