// internal/common/database/redis.go
package database

import (
	"context"
	"fmt"
	"time"

	"interview-backend/internal/common/config"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the connection handle for the evaluation result cache.
type RedisClient struct {
	Client *redis.Client
}

// NewRedis opens a Redis connection from the cache configuration. The pool
// is kept small: each evaluation performs at most one read and one write.
func NewRedis(cfg config.RedisConfig) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     5,
		MinIdleConns: 1,
	})

	return &RedisClient{Client: rdb}, nil
}

// Ping verifies the connection; called once at startup so a misconfigured
// cache is reported before the first request.
func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *RedisClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// Get returns the string value for key, redis.Nil error on a miss.
func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

// Set stores value under key with the given TTL; zero means no expiry.
func (c *RedisClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}
