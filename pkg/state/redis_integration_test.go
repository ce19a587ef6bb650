//go:build integration

package state_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passport/pkg/state"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	opt, err := goredis.ParseURL(url)
	require.NoError(t, err)

	ctx := context.Background()
	client := goredis.NewClient(opt)
	require.NoError(t, client.Ping(ctx).Err(), "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.FlushDB(ctx).Err()
		_ = client.Close()
	})

	return client
}

func TestRedis_SaveConsume(t *testing.T) {
	ctx := context.Background()
	client := newTestRedisClient(t)

	s := state.NewRedis(client, state.WithPrefix("test_state"))

	require.NoError(t, s.Save(ctx, "token-1", time.Minute))
	require.NoError(t, s.Consume(ctx, "token-1"))
	require.ErrorIs(t, s.Consume(ctx, "token-1"), state.ErrNotFound)
}

func TestRedis_Expiry(t *testing.T) {
	ctx := context.Background()
	client := newTestRedisClient(t)

	s := state.NewRedis(client, state.WithPrefix("test_state"))

	require.NoError(t, s.Save(ctx, "token-1", 100*time.Millisecond))
	time.Sleep(200 * time.Millisecond)
	require.ErrorIs(t, s.Consume(ctx, "token-1"), state.ErrNotFound)
}

func TestRedis_PrefixIsolation(t *testing.T) {
	ctx := context.Background()
	client := newTestRedisClient(t)

	a := state.NewRedis(client, state.WithPrefix("a"))
	b := state.NewRedis(client, state.WithPrefix("b"))

	require.NoError(t, a.Save(ctx, "token-1", time.Minute))
	require.ErrorIs(t, b.Consume(ctx, "token-1"), state.ErrNotFound)
	require.NoError(t, a.Consume(ctx, "token-1"))
}
