package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/prostech/outbound-api/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache modes
const (
	ModeMemory = "memory"
	ModeRedis  = "redis"
	ModeNone   = "none"
)

// New builds the row-set cache selected by cfg.Mode. The returned client is
// non-nil only in redis mode and must be closed by the caller.
func New(ctx context.Context, cfg *config.CacheConfig, logger *zap.Logger) (RowSetCache, *redis.Client, error) {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second

	switch cfg.Mode {
	case ModeNone:
		logger.Info("Row-set cache disabled")
		return Nop{}, nil, nil
	case ModeRedis:
		client, err := NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Row-set cache using redis",
			zap.String("addr", cfg.RedisAddr),
			zap.Duration("ttl", ttl),
		)
		return NewRedisCache(client, ttl, cfg.KeyPrefix), client, nil
	case ModeMemory, "":
		logger.Info("Row-set cache in memory", zap.Duration("ttl", ttl))
		return NewMemoryCache(ttl), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown cache mode: %s", cfg.Mode)
}
