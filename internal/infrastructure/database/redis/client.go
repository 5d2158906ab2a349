// Package redis wraps the go-redis client used to cache slow external
// lookups, chiefly the bank-holiday feed.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

// Client wraps a standalone redis connection with a key prefix.
type Client struct {
	rdb       *redis.Client
	keyPrefix string
	logger    logging.Logger
}

// NewClient connects to redis and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg config.RedisConfig, logger logging.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, errors.ErrCodeCacheError, "redis unreachable at "+cfg.Addr)
	}

	logger.Info("connected to redis", logging.String("addr", cfg.Addr))
	return &Client{rdb: rdb, keyPrefix: cfg.KeyPrefix, logger: logger}, nil
}

// NewClientFromRedis wraps an existing go-redis client.  Used by tests with
// a miniature or mocked server.
func NewClientFromRedis(rdb *redis.Client, keyPrefix string, logger logging.Logger) *Client {
	return &Client{rdb: rdb, keyPrefix: keyPrefix, logger: logger}
}

// Key returns the namespaced form of key.
func (c *Client) Key(key string) string {
	if c.keyPrefix == "" {
		return key
	}
	return c.keyPrefix + ":" + key
}

// Get returns the raw value under key, or a nil slice on a cache miss.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.rdb.Get(ctx, c.Key(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCacheError, "get "+key)
	}
	return raw, nil
}

// Set stores value under key with the given TTL.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, c.Key(key), value, ttl).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "set "+key)
	}
	return nil
}

// Delete removes key.  Deleting an absent key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, c.Key(key)).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "delete "+key)
	}
	return nil
}

// Health pings redis within the caller's deadline.
func (c *Client) Health(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "redis ping failed")
	}
	return nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
