package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/gridpass/authcore/core/refresh"
	redisstore "github.com/gridpass/authcore/storage/redis"
)

func newStore(t *testing.T) *redisstore.RefreshStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redisstore.NewRefreshStore(client)
}

func TestRefreshStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("replace supersedes the previous jti", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)

		require.NoError(t, store.Replace(ctx, "jti1", "user1"))
		require.NoError(t, store.Replace(ctx, "jti2", "user1"))

		live, err := store.Exists(ctx, "jti1", "user1")
		require.NoError(t, err)
		require.False(t, live)

		live, err = store.Exists(ctx, "jti2", "user1")
		require.NoError(t, err)
		require.True(t, live)
	})

	t.Run("unknown user has no live token", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)

		live, err := store.Exists(ctx, "jti1", "nobody")
		require.NoError(t, err)
		require.False(t, live)
	})

	t.Run("records are per user", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)

		require.NoError(t, store.Replace(ctx, "jti1", "user1"))
		require.NoError(t, store.Replace(ctx, "jti2", "user2"))

		live, err := store.Exists(ctx, "jti1", "user2")
		require.NoError(t, err)
		require.False(t, live)

		live, err = store.Exists(ctx, "jti1", "user1")
		require.NoError(t, err)
		require.True(t, live)
	})

	t.Run("delete by user is idempotent", func(t *testing.T) {
		t.Parallel()
		store := newStore(t)

		require.NoError(t, store.Replace(ctx, "jti1", "user1"))
		require.NoError(t, store.DeleteByUser(ctx, "user1"))
		require.NoError(t, store.DeleteByUser(ctx, "user1"))

		live, err := store.Exists(ctx, "jti1", "user1")
		require.NoError(t, err)
		require.False(t, live)
	})
}

// TestRegistryOverRedis exercises the refresh registry against the Redis
// store end to end.
func TestRegistryOverRedis(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	registry := refresh.NewRegistry(newStore(t))

	first, err := registry.Rotate(ctx, "user1")
	require.NoError(t, err)
	second, err := registry.Rotate(ctx, "user1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	live, err := registry.IsLive(ctx, first, "user1")
	require.NoError(t, err)
	require.False(t, live)

	live, err = registry.IsLive(ctx, second, "user1")
	require.NoError(t, err)
	require.True(t, live)

	require.NoError(t, registry.RevokeAll(ctx, "user1"))
	live, err = registry.IsLive(ctx, second, "user1")
	require.NoError(t, err)
	require.False(t, live)
}

func TestConnectValidation(t *testing.T) {
	t.Parallel()

	_, err := redisstore.Connect(context.Background(), redisstore.Config{})
	require.ErrorIs(t, err, redisstore.ErrEmptyRedisURL)

	_, err = redisstore.Connect(context.Background(), redisstore.Config{RedisURL: "://bad"})
	require.ErrorIs(t, err, redisstore.ErrFailedToConnect)
}
