package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rutkit/pkg/redis"
)

func TestConnect_ConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost:6379"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := redis.Connect(ctx, redis.Config{
		ConnectionURL: "redis://127.0.0.1:1/0",
		RetryAttempts: 3,
		RetryInterval: time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}

func TestConnect_NoWaitAfterLastAttempt(t *testing.T) {
	t.Parallel()

	start := time.Now()
	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL: "redis://127.0.0.1:1/0",
		RetryAttempts: 1,
		RetryInterval: 10 * time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestHealthcheck_Unreachable(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	err := redis.Healthcheck(client)(context.Background())
	assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
}
