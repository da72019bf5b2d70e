package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botkit-go/botkit/integration/redis"
)

func TestConnect_Validation(t *testing.T) {
	t.Parallel()

	t.Run("empty URL", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{})
		assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("malformed URL", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL: "http://localhost:6379",
		})
		assert.ErrorIs(t, err, redis.ErrFailedToParseConnString)
	})

	t.Run("unreachable server exhausts retries", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://127.0.0.1:1/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		})
		assert.ErrorIs(t, err, redis.ErrNotReady)
	})

	t.Run("cancelled context aborts retries", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := redis.Connect(ctx, redis.Config{
			ConnectionURL: "redis://127.0.0.1:1/0",
			RetryAttempts: 3,
			RetryInterval: time.Minute,
		})
		assert.ErrorIs(t, err, redis.ErrNotReady)
	})
}

func TestNewBus(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil client", func(t *testing.T) {
		t.Parallel()

		_, err := redis.NewBus(nil, "bot:events")
		assert.ErrorIs(t, err, redis.ErrNilClient)
	})

	t.Run("rejects empty channel", func(t *testing.T) {
		t.Parallel()

		client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:6379"})
		t.Cleanup(func() { _ = client.Close() })

		_, err := redis.NewBus(client, "")
		assert.ErrorIs(t, err, redis.ErrEmptyChannel)
	})

	t.Run("builds with a client and channel", func(t *testing.T) {
		t.Parallel()

		client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:6379"})
		t.Cleanup(func() { _ = client.Close() })

		bus, err := redis.NewBus(client, "bot:events")
		require.NoError(t, err)
		assert.NotNil(t, bus)
	})
}
