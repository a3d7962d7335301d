package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prostech/outbound-api/internal/normalize"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "outbound"

// NewRedisClient creates a Redis client and checks it answers.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping: %w", err)
	}
	return client, nil
}

// RedisCache shares row-sets between API instances. Keys carry a version
// number; Invalidate bumps the version so every older key becomes
// unreachable and expires on its own.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisCache wraps client. A non-positive ttl uses DefaultTTL.
func NewRedisCache(client *redis.Client, ttl time.Duration, prefix string) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	prefix = strings.TrimSuffix(prefix, ":")
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisCache{client: client, ttl: ttl, prefix: prefix}
}

func (c *RedisCache) versionKey() string {
	return c.prefix + ":rowset:version"
}

// Version returns the current key version, initialising it when missing.
func (c *RedisCache) Version(ctx context.Context) (int64, error) {
	ver, err := c.client.Get(ctx, c.versionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		if err := c.client.SetNX(ctx, c.versionKey(), 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

// Key composes the versioned key of a filter signature.
func (c *RedisCache) Key(ctx context.Context, signature string) (string, error) {
	ver, err := c.Version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:rowset:%d:%s", c.prefix, ver, signature), nil
}

func (c *RedisCache) Get(ctx context.Context, signature string) (*normalize.RowSet, bool, error) {
	key, err := c.Key(ctx, signature)
	if err != nil {
		return nil, false, fmt.Errorf("cache: version: %w", err)
	}
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get: %w", err)
	}
	rs, err := decode(b)
	if err != nil {
		return nil, false, fmt.Errorf("cache: decode: %w", err)
	}
	return rs, true, nil
}

func (c *RedisCache) Set(ctx context.Context, signature string, rs *normalize.RowSet) error {
	key, err := c.Key(ctx, signature)
	if err != nil {
		return fmt.Errorf("cache: version: %w", err)
	}
	b, err := encode(rs)
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	if _, err := c.Version(ctx); err != nil {
		return fmt.Errorf("cache: version: %w", err)
	}
	if err := c.client.Incr(ctx, c.versionKey()).Err(); err != nil {
		return fmt.Errorf("cache: bump version: %w", err)
	}
	return nil
}
