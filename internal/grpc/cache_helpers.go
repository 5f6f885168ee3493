package grpc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

const cacheSetTimeout = 5 * time.Second

// addTTLJitter spreads expirations by up to ±15s so cached report keys
// written in the same batch do not expire together.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	return ttl + time.Duration(rand.Intn(30)-15)*time.Second
}

// FindAndCache implements read-through caching: a hit is returned as-is,
// a miss collapses concurrent fetches through singleflight, computes the
// value, and populates the cache in the background. A nil Cacher
// degrades to a plain fetch.
func FindAndCache[T any](
	ctx context.Context,
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		return fn(ctx)
	}

	var cached T
	err := c.Get(ctx, key, &cached)
	switch {
	case err == nil:
		logger.Debug("cache hit", zap.String("key", key))
		return cached, nil
	case errors.Is(err, redis.Nil):
		logger.Debug("cache miss", zap.String("key", key))
	default:
		logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	v, err, shared := sf.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		go func(v T) {
			setCtx, cancel := context.WithTimeout(context.Background(), cacheSetTimeout)
			defer cancel()
			if err := c.Set(setCtx, key, v, addTTLJitter(ttl)); err != nil {
				logger.Warn("failed to set cache on miss", zap.String("key", key), zap.Error(err))
			}
		}(value)

		return value, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if shared {
		logger.Debug("singleflight shared result", zap.String("key", key))
	}
	return value, nil
}
