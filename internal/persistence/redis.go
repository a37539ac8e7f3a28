package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/visitor-service/internal/config"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// AttemptCounter implements auth.AttemptStore with fixed-window Redis counters.
type AttemptCounter struct {
	client redis.Cmdable
}

// NewAttemptCounter returns a counter backed by the given client.
func NewAttemptCounter(client redis.Cmdable) *AttemptCounter {
	return &AttemptCounter{client: client}
}

// Count returns the current value of key, zero when absent.
func (a *AttemptCounter) Count(ctx context.Context, key string) (int64, error) {
	n, err := a.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// Increment bumps key and starts its expiry on the first hit. Plain EXPIRE
// keeps this working on Redis servers older than 7.0.
func (a *AttemptCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := a.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := a.client.Expire(ctx, key, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Reset deletes key.
func (a *AttemptCounter) Reset(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}
