package oauthstate

import (
	"context"
	"os"
	"testing"
	"time"

	"television/internal/domain/entity"
	"television/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server when TEST_REDIS_ADDR is set.
func TestRedisStore_Integration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	store := NewRedisStore(client)
	userID := uuid.New()
	now := time.Now()

	require.NoError(t, store.Save(ctx, &entity.PendingAuthorization{
		State:     "redis-state",
		UserID:    userID,
		Provider:  entity.ProviderPrimeVideo,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	}))

	found, err := store.Find(ctx, userID, entity.ProviderPrimeVideo)
	require.NoError(t, err)
	assert.Equal(t, "redis-state", found.State)

	ok, err := store.Consume(ctx, userID, entity.ProviderPrimeVideo, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Consume(ctx, userID, entity.ProviderPrimeVideo, "redis-state")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = store.Find(ctx, userID, entity.ProviderPrimeVideo)
	assert.ErrorIs(t, err, repository.ErrPendingStateNotFound)
}
