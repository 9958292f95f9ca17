package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"
	"television/internal/domain/service"
	mockRepo "television/internal/mocks/repository"
	mockSvc "television/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tokenStoreFixtures struct {
	store     *tokenStore
	tokenRepo *mockRepo.MockProviderTokenRepository
	registry  *mockSvc.MockOAuthProviderRegistry
	adapter   *mockSvc.MockOAuthProvider
	metrics   *mockSvc.MockMetrics
	now       time.Time
}

func createTestTokenStore(t *testing.T) tokenStoreFixtures {
	tokenRepo := mockRepo.NewMockProviderTokenRepository(t)
	registry := mockSvc.NewMockOAuthProviderRegistry(t)
	adapter := mockSvc.NewMockOAuthProvider(t)
	metrics := mockSvc.NewMockMetrics(t)
	now := time.Date(2024, 11, 21, 18, 0, 0, 0, time.UTC)

	store := NewTokenStore(TokenStoreParams{
		TokenRepo: tokenRepo,
		Registry:  registry,
		Metrics:   metrics,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*tokenStore)
	store.clock = func() time.Time { return now }

	return tokenStoreFixtures{
		store:     store,
		tokenRepo: tokenRepo,
		registry:  registry,
		adapter:   adapter,
		metrics:   metrics,
		now:       now,
	}
}

func TestTokenStore_Get_NotConnected(t *testing.T) {
	fx := createTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().FindToken(ctx, userID, entity.ProviderPrimeVideo).Return(nil, repository.ErrTokenNotFound)

	token, err := fx.store.Get(ctx, userID, entity.ProviderPrimeVideo)

	assert.Nil(t, token)
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConnected)
}

func TestTokenStore_Get_FindError(t *testing.T) {
	fx := createTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().FindToken(ctx, userID, entity.ProviderPrimeVideo).Return(nil, errors.New("db error"))

	_, err := fx.store.Get(ctx, userID, entity.ProviderPrimeVideo)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find provider token")
	assert.NotErrorIs(t, err, domainerrors.ErrProviderNotConnected)
}

func TestTokenStore_Get_Valid(t *testing.T) {
	fx := createTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.ProviderToken{
		UserID:      userID,
		Provider:    entity.ProviderPrimeVideo,
		AccessToken: "access",
		ExpiresAt:   fx.now.Add(time.Hour),
	}

	fx.tokenRepo.EXPECT().FindToken(ctx, userID, entity.ProviderPrimeVideo).Return(stored, nil)

	token, err := fx.store.Get(ctx, userID, entity.ProviderPrimeVideo)

	require.NoError(t, err)
	assert.Equal(t, stored, token)
}

func TestTokenStore_Get_RefreshesExpiredToken(t *testing.T) {
	fx := createTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()
	metadata := map[string]any{"region": "US"}
	expired := &entity.ProviderToken{
		UserID:           userID,
		Provider:         entity.ProviderPrimeVideo,
		AccessToken:      "old-access",
		RefreshToken:     "refresh-1",
		ExpiresAt:        fx.now.Add(-time.Minute),
		ProviderUserID:   "amzn-1",
		ProviderEmail:    "fan@example.com",
		ProviderMetadata: metadata,
	}

	fx.tokenRepo.EXPECT().FindToken(mock.Anything, userID, entity.ProviderPrimeVideo).Return(expired, nil).Times(2)
	fx.registry.EXPECT().Get(entity.ProviderPrimeVideo).Return(fx.adapter, true)
	fx.adapter.EXPECT().SupportsRefresh().Return(true)
	fx.adapter.EXPECT().RefreshToken(mock.Anything, "refresh-1").Return(&service.TokenResponse{
		AccessToken: "new-access",
		ExpiresIn:   3600,
	}, nil)
	fx.tokenRepo.EXPECT().
		UpsertToken(mock.Anything, mock.AnythingOfType("*entity.ProviderToken")).
		Run(func(_ context.Context, token *entity.ProviderToken) {
			assert.Equal(t, "new-access", token.AccessToken)
			assert.Equal(t, "refresh-1", token.RefreshToken)
			assert.Equal(t, fx.now.Add(time.Hour), token.ExpiresAt)
			assert.Equal(t, "amzn-1", token.ProviderUserID)
			assert.Equal(t, "fan@example.com", token.ProviderEmail)
			assert.Equal(t, metadata, token.ProviderMetadata)
		}).
		Return(nil)
	fx.metrics.EXPECT().ObserveTokenRefresh(entity.ProviderPrimeVideo, refreshSuccess).Return()

	token, err := fx.store.Get(ctx, userID, entity.ProviderPrimeVideo)

	require.NoError(t, err)
	assert.Equal(t, "new-access", token.AccessToken)
	assert.False(t, token.IsExpired(fx.now))
}

func TestTokenStore_Get_RefreshFailure(t *testing.T) {
	fx := createTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()
	expired := &entity.ProviderToken{
		UserID:       userID,
		Provider:     entity.ProviderPrimeVideo,
		RefreshToken: "refresh-1",
		ExpiresAt:    fx.now.Add(-time.Minute),
	}

	fx.tokenRepo.EXPECT().FindToken(mock.Anything, userID, entity.ProviderPrimeVideo).Return(expired, nil)
	fx.registry.EXPECT().Get(entity.ProviderPrimeVideo).Return(fx.adapter, true)
	fx.adapter.EXPECT().SupportsRefresh().Return(true)
	fx.adapter.EXPECT().RefreshToken(mock.Anything, "refresh-1").
		Return(nil, domainerrors.NewTokenRefreshError(entity.ProviderPrimeVideo, 400, errors.New("invalid_grant")))
	fx.metrics.EXPECT().ObserveTokenRefresh(entity.ProviderPrimeVideo, refreshFailure).Return()

	token, err := fx.store.Get(ctx, userID, entity.ProviderPrimeVideo)

	assert.Nil(t, token)
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConnected)
}

func TestTokenStore_Get_ExpiredWithoutRefreshToken(t *testing.T) {
	fx := createTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()
	expired := &entity.ProviderToken{
		UserID:    userID,
		Provider:  entity.ProviderPrimeVideo,
		ExpiresAt: fx.now.Add(-time.Minute),
	}

	fx.tokenRepo.EXPECT().FindToken(ctx, userID, entity.ProviderPrimeVideo).Return(expired, nil)
	fx.registry.EXPECT().Get(entity.ProviderPrimeVideo).Return(fx.adapter, true)
	fx.adapter.EXPECT().SupportsRefresh().Return(true)

	_, err := fx.store.Get(ctx, userID, entity.ProviderPrimeVideo)

	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConnected)
}

func TestTokenStore_Get_ConcurrentRefreshRunsOnce(t *testing.T) {
	fx := createTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()

	var mu sync.Mutex
	current := &entity.ProviderToken{
		UserID:       userID,
		Provider:     entity.ProviderPrimeVideo,
		AccessToken:  "old-access",
		RefreshToken: "refresh-1",
		ExpiresAt:    fx.now.Add(-time.Minute),
	}
	var refreshCalls atomic.Int32

	fx.tokenRepo.EXPECT().FindToken(mock.Anything, userID, entity.ProviderPrimeVideo).
		RunAndReturn(func(context.Context, uuid.UUID, string) (*entity.ProviderToken, error) {
			mu.Lock()
			defer mu.Unlock()

			return current, nil
		})
	fx.tokenRepo.EXPECT().UpsertToken(mock.Anything, mock.AnythingOfType("*entity.ProviderToken")).
		RunAndReturn(func(_ context.Context, token *entity.ProviderToken) error {
			mu.Lock()
			defer mu.Unlock()
			current = token

			return nil
		})
	fx.registry.EXPECT().Get(entity.ProviderPrimeVideo).Return(fx.adapter, true).Maybe()
	fx.adapter.EXPECT().SupportsRefresh().Return(true).Maybe()
	fx.adapter.EXPECT().RefreshToken(mock.Anything, "refresh-1").
		RunAndReturn(func(context.Context, string) (*service.TokenResponse, error) {
			refreshCalls.Add(1)
			time.Sleep(20 * time.Millisecond)

			return &service.TokenResponse{AccessToken: "new-access", ExpiresIn: 3600}, nil
		})
	fx.metrics.EXPECT().ObserveTokenRefresh(entity.ProviderPrimeVideo, refreshSuccess).Return()

	const callers = 8
	var wg sync.WaitGroup
	tokens := make([]*entity.ProviderToken, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens[i], errs[i] = fx.store.Get(ctx, userID, entity.ProviderPrimeVideo)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), refreshCalls.Load())
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, "new-access", tokens[i].AccessToken)
	}
}

func TestTokenStore_Put(t *testing.T) {
	fx := createTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().UpsertToken(ctx, mock.AnythingOfType("*entity.ProviderToken")).Return(nil)

	token, err := fx.store.Put(ctx, userID, entity.ProviderPrimeVideo,
		&service.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 60},
		&service.ProviderProfile{ID: "amzn-1", Email: "fan@example.com", Metadata: map[string]any{"k": "v"}},
	)

	require.NoError(t, err)
	assert.Equal(t, fx.now.Add(time.Minute), token.ExpiresAt)
	assert.Equal(t, "amzn-1", token.ProviderUserID)
	assert.Equal(t, "r", token.RefreshToken)
}

func TestTokenStore_Delete_MissingIsNotAnError(t *testing.T) {
	fx := createTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenRepo.EXPECT().DeleteToken(ctx, userID, entity.ProviderPrimeVideo).Return(false, nil)

	assert.NoError(t, fx.store.Delete(ctx, userID, entity.ProviderPrimeVideo))
}

func TestTokenStore_WithRepository_WritesThroughBoundRepository(t *testing.T) {
	fx := createTestTokenStore(t)
	ctx := context.Background()
	userID := uuid.New()
	txRepo := mockRepo.NewMockProviderTokenRepository(t)

	txRepo.EXPECT().UpsertToken(ctx, mock.MatchedBy(func(token *entity.ProviderToken) bool {
		return token.UserID == userID && token.ExpiresAt.Equal(fx.now.Add(time.Hour))
	})).Return(nil)
	txRepo.EXPECT().DeleteToken(ctx, userID, entity.ProviderPrimeVideo).Return(true, nil)

	bound := fx.store.WithRepository(txRepo)

	_, err := bound.Put(ctx, userID, entity.ProviderPrimeVideo, &service.TokenResponse{AccessToken: "a", ExpiresIn: 3600}, nil)
	require.NoError(t, err)
	require.NoError(t, bound.Delete(ctx, userID, entity.ProviderPrimeVideo))

	boundStore := bound.(*tokenStore)
	assert.Same(t, fx.store.refreshes, boundStore.refreshes)
	assert.Same(t, fx.tokenRepo, fx.store.tokenRepo)
}
