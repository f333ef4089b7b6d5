package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/rmsgas-api/internal/testutil"
)

func TestRedisCacheRepo_SetGetDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)

	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	t.Run("set and get under prefix", func(t *testing.T) {
		value := []byte(`{"portfolio_id":"P1"}`)
		require.NoError(t, repo.Set(ctx, "portfolio:P1", value, 5*time.Minute))

		got, err := repo.Get(ctx, "portfolio:P1")
		require.NoError(t, err)
		assert.Equal(t, value, got)

		ttl := client.TTL(ctx, DefaultCacheKeyPrefix+"portfolio:P1").Val()
		assert.True(t, ttl > 0 && ttl <= 5*time.Minute)
	})

	t.Run("missing key", func(t *testing.T) {
		got, err := repo.Get(ctx, "portfolio:missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "portfolio:P2", []byte("x"), time.Minute))

		deleted, err := repo.Delete(ctx, "portfolio:P2")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "portfolio:P2")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := repo.Get(ctx, "")
		require.ErrorIs(t, err, errEmptyKey)
		require.ErrorIs(t, repo.Set(ctx, "", nil, 0), errEmptyKey)
	})

	t.Run("health", func(t *testing.T) {
		assert.NoError(t, repo.Health(ctx))
	})
}
