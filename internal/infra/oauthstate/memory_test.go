package oauthstate

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"television/internal/domain/entity"
	"television/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newPending(clock *fakeClock, userID uuid.UUID, state string) *entity.PendingAuthorization {
	now := clock.Now()

	return &entity.PendingAuthorization{
		State:     state,
		UserID:    userID,
		Provider:  entity.ProviderPrimeVideo,
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
	}
}

func TestMemoryStore_SaveFindConsume(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := newMemoryStore(clock.Now)
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, newPending(clock, userID, "state-1")))

	found, err := store.Find(ctx, userID, entity.ProviderPrimeVideo)
	require.NoError(t, err)
	assert.Equal(t, "state-1", found.State)

	ok, err := store.Consume(ctx, userID, entity.ProviderPrimeVideo, "other-state")
	require.NoError(t, err)
	assert.False(t, ok, "mismatched state must not consume")

	ok, err = store.Consume(ctx, userID, entity.ProviderPrimeVideo, "state-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, userID, entity.ProviderPrimeVideo, "state-1")
	require.NoError(t, err)
	assert.False(t, ok, "second consume must fail")

	_, err = store.Find(ctx, userID, entity.ProviderPrimeVideo)
	assert.ErrorIs(t, err, repository.ErrPendingStateNotFound)
}

func TestMemoryStore_SaveReplacesEarlierAttempt(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	store := newMemoryStore(clock.Now)
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, newPending(clock, userID, "first")))
	require.NoError(t, store.Save(ctx, newPending(clock, userID, "second")))

	found, err := store.Find(ctx, userID, entity.ProviderPrimeVideo)
	require.NoError(t, err)
	assert.Equal(t, "second", found.State)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	store := newMemoryStore(clock.Now)
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, newPending(clock, userID, "state")))
	clock.Advance(11 * time.Minute)

	_, err := store.Find(ctx, userID, entity.ProviderPrimeVideo)
	assert.ErrorIs(t, err, repository.ErrPendingStateNotFound)

	ok, err := store.Consume(ctx, userID, entity.ProviderPrimeVideo, "state")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_ConcurrentConsumeAtMostOnce(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	store := newMemoryStore(clock.Now)
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, newPending(clock, userID, "race")))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := store.Consume(ctx, userID, entity.ProviderPrimeVideo, "race"); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
