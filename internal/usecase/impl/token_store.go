package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "television/internal/delivery/context"
	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"
	"television/internal/domain/service"
	"television/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// Token refresh outcomes reported to metrics
const (
	refreshSuccess = "success"
	refreshFailure = "failure"
)

type tokenStore struct {
	tokenRepo repository.ProviderTokenRepository
	registry  service.OAuthProviderRegistry
	metrics   service.Metrics
	logger    *slog.Logger
	refreshes *singleflight.Group
	clock     func() time.Time
}

// TokenStoreParams holds dependencies for TokenStore, injected by Fx.
type TokenStoreParams struct {
	fx.In

	TokenRepo repository.ProviderTokenRepository
	Registry  service.OAuthProviderRegistry
	Metrics   service.Metrics
	Logger    *slog.Logger
}

// NewTokenStore creates the token store
func NewTokenStore(params TokenStoreParams) usecase.TokenStore {
	return &tokenStore{
		tokenRepo: params.TokenRepo,
		registry:  params.Registry,
		metrics:   params.Metrics,
		logger:    params.Logger,
		refreshes: &singleflight.Group{},
		clock:     time.Now,
	}
}

// WithRepository shares registry, metrics, clock and refresh flights with the parent store
func (s *tokenStore) WithRepository(repo repository.ProviderTokenRepository) usecase.TokenStore {
	bound := *s
	bound.tokenRepo = repo

	return &bound
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *tokenStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

// Get returns a usable token, refreshing it once per (user, provider) when expired.
func (s *tokenStore) Get(ctx context.Context, userID uuid.UUID, provider string) (*entity.ProviderToken, error) {
	token, err := s.find(ctx, userID, provider)
	if err != nil {
		return nil, err
	}

	if !token.IsExpired(s.clock()) {
		return token, nil
	}

	adapter, ok := s.registry.Get(provider)
	if !ok || !adapter.SupportsRefresh() || !token.CanRefresh() {
		return nil, domainerrors.ErrProviderNotConnected
	}

	key := userID.String() + ":" + provider
	result, err, _ := s.refreshes.Do(key, func() (any, error) {
		// The first caller's cancellation must not fail the callers sharing this flight.
		return s.refresh(context.WithoutCancel(ctx), adapter, userID, provider)
	})
	if err != nil {
		return nil, err
	}

	return result.(*entity.ProviderToken), nil
}

func (s *tokenStore) find(ctx context.Context, userID uuid.UUID, provider string) (*entity.ProviderToken, error) {
	token, err := s.tokenRepo.FindToken(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrProviderNotConnected
		}

		return nil, errors.Wrap(err, "failed to find provider token")
	}

	return token, nil
}

func (s *tokenStore) refresh(ctx context.Context, adapter service.OAuthProvider, userID uuid.UUID, provider string) (*entity.ProviderToken, error) {
	// Re-read inside the flight: an earlier flight may already have stored a fresh token.
	current, err := s.find(ctx, userID, provider)
	if err != nil {
		return nil, err
	}
	if !current.IsExpired(s.clock()) {
		return current, nil
	}
	if !current.CanRefresh() {
		return nil, domainerrors.ErrProviderNotConnected
	}

	resp, err := adapter.RefreshToken(ctx, current.RefreshToken)
	if err != nil {
		s.metrics.ObserveTokenRefresh(provider, refreshFailure)
		s.log(ctx).Warn("provider token refresh failed",
			slog.String("provider", provider),
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrProviderNotConnected
	}

	refreshed := newProviderToken(userID, provider, resp, nil, s.clock())
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = current.RefreshToken
	}
	refreshed.ProviderUserID = current.ProviderUserID
	refreshed.ProviderEmail = current.ProviderEmail
	refreshed.ProviderMetadata = current.ProviderMetadata

	if err := s.tokenRepo.UpsertToken(ctx, refreshed); err != nil {
		s.metrics.ObserveTokenRefresh(provider, refreshFailure)

		return nil, errors.Wrap(err, "failed to persist refreshed token")
	}

	s.metrics.ObserveTokenRefresh(provider, refreshSuccess)
	s.log(ctx).Info("provider token refreshed",
		slog.String("provider", provider),
		slog.String("user_id", userID.String()),
	)

	return refreshed, nil
}

// Put upserts the token issued by a code exchange
func (s *tokenStore) Put(ctx context.Context, userID uuid.UUID, provider string, resp *service.TokenResponse, profile *service.ProviderProfile) (*entity.ProviderToken, error) {
	token := newProviderToken(userID, provider, resp, profile, s.clock())
	if err := s.tokenRepo.UpsertToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to store provider token")
	}

	return token, nil
}

// Delete removes the token of the pair
func (s *tokenStore) Delete(ctx context.Context, userID uuid.UUID, provider string) error {
	if _, err := s.tokenRepo.DeleteToken(ctx, userID, provider); err != nil {
		return errors.Wrap(err, "failed to delete provider token")
	}

	return nil
}

// newProviderToken maps a token response and profile onto the stored token.
func newProviderToken(userID uuid.UUID, provider string, resp *service.TokenResponse, profile *service.ProviderProfile, now time.Time) *entity.ProviderToken {
	token := &entity.ProviderToken{
		UserID:       userID,
		Provider:     provider,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    now.Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	if profile != nil {
		token.ProviderUserID = profile.ID
		token.ProviderEmail = profile.Email
		token.ProviderMetadata = profile.Metadata
	}

	return token
}
