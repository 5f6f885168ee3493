package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/godilite/triage-server/internal/grpc/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

func TestFindAndCache(t *testing.T) {
	logger := zap.NewNop()

	t.Run("nil cacher degrades to a plain fetch", func(t *testing.T) {
		var sf singleflight.Group

		got, err := FindAndCache(context.Background(), nil, &sf, "k", time.Minute, logger, func(context.Context) (int, error) {
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("hit returns the cached value without fetching", func(t *testing.T) {
		var sf singleflight.Group
		cache := &mocks.MockCacher{
			GetFunc: func(_ context.Context, key string, dest any) error {
				*(dest.(*int)) = 7
				return nil
			},
		}

		got, err := FindAndCache(context.Background(), cache, &sf, "k", time.Minute, logger, func(context.Context) (int, error) {
			t.Fatal("fetch must not run on a hit")
			return 0, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("miss fetches and populates the cache", func(t *testing.T) {
		var sf singleflight.Group
		set := make(chan string, 1)
		cache := &mocks.MockCacher{
			GetFunc: func(context.Context, string, any) error { return redis.Nil },
			SetFunc: func(_ context.Context, key string, value any, _ time.Duration) error {
				assert.Equal(t, 42, value)
				set <- key
				return nil
			},
		}

		got, err := FindAndCache(context.Background(), cache, &sf, "k", time.Minute, logger, func(context.Context) (int, error) {
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got)

		select {
		case key := <-set:
			assert.Equal(t, "k", key)
		case <-time.After(time.Second):
			t.Fatal("cache was never populated after the miss")
		}
	})

	t.Run("get errors other than miss are treated as a miss", func(t *testing.T) {
		var sf singleflight.Group
		cache := &mocks.MockCacher{
			GetFunc: func(context.Context, string, any) error { return errors.New("connection refused") },
		}

		got, err := FindAndCache(context.Background(), cache, &sf, "k", time.Minute, logger, func(context.Context) (int, error) {
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		var sf singleflight.Group
		cache := &mocks.MockCacher{
			GetFunc: func(context.Context, string, any) error { return redis.Nil },
		}
		boom := errors.New("boom")

		_, err := FindAndCache(context.Background(), cache, &sf, "k", time.Minute, logger, func(context.Context) (int, error) {
			return 0, boom
		})

		assert.ErrorIs(t, err, boom)
	})
}

func TestAddTTLJitter(t *testing.T) {
	t.Run("stays within the jitter window", func(t *testing.T) {
		ttl := 10 * time.Minute
		for i := 0; i < 100; i++ {
			jittered := addTTLJitter(ttl)
			assert.GreaterOrEqual(t, jittered, ttl-15*time.Second)
			assert.LessOrEqual(t, jittered, ttl+15*time.Second)
		}
	})

	t.Run("non-positive ttl is passed through", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), addTTLJitter(0))
		assert.Equal(t, -time.Second, addTTLJitter(-time.Second))
	})
}
