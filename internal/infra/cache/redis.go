package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"horeca/config"
	"horeca/internal/domain/service"
)

// redisCache implements service.PermissionCache on a shared Redis substrate.
//
// The substrate is treated as an optimization only: any Redis failure is
// logged and the compute function's result is returned as authoritative, so
// an unavailable cache degrades to direct database reads instead of failing
// authorization checks.
type redisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedis creates a Redis-backed permission cache and verifies connectivity.
func NewRedis(cfg *config.RedisConfig, logger *slog.Logger) (service.PermissionCache, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	}
	if cfg.MaxRetries > 0 {
		opts.MaxRetries = cfg.MaxRetries
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "connect to redis")
	}

	return &redisCache{client: client, logger: logger}, nil
}

// GetOrCompute returns the cached value for key, computing and storing it
// with the given TTL on a miss. Substrate errors fall through to compute.
func (c *redisCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute service.ComputeFunc) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, redis.Nil):
		// Cache miss, compute and store.
	default:
		// Substrate failure: the resolver must keep working, so fall
		// through to the authoritative source and skip the write.
		c.logger.WarnContext(ctx, "permission cache read failed, computing directly",
			slog.String("key", key),
			slog.Any("error", err))

		return compute(ctx)
	}

	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "permission cache write failed",
			slog.String("key", key),
			slog.Any("error", err))
	}

	return value, nil
}

// Invalidate drops the cached value for key. Best effort.
func (c *redisCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}

	return nil
}
