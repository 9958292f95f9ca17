package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"television/config"
	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"
	"television/internal/domain/service"
	mockRepo "television/internal/mocks/repository"
	mockSvc "television/internal/mocks/service"
	"television/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testState = "0f1e2d3c4b5a69788796a5b4c3d2e1f00f1e2d3c4b5a69788796a5b4c3d2e1f0"

type connectionServiceFixtures struct {
	service     *connectionService
	registry    *mockSvc.MockOAuthProviderRegistry
	adapter     *mockSvc.MockOAuthProvider
	pendingRepo *mockRepo.MockPendingStateRepository
	txManager   *mockRepo.MockTransactionManager
	publisher   *mockSvc.MockEventPublisher
	metrics     *mockSvc.MockMetrics
	now         time.Time
}

func createTestConnectionService(t *testing.T) connectionServiceFixtures {
	registry := mockSvc.NewMockOAuthProviderRegistry(t)
	adapter := mockSvc.NewMockOAuthProvider(t)
	pendingRepo := mockRepo.NewMockPendingStateRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetrics(t)
	now := time.Date(2024, 11, 21, 18, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := NewTokenStore(TokenStoreParams{
		TokenRepo: mockRepo.NewMockProviderTokenRepository(t),
		Registry:  registry,
		Metrics:   metrics,
		Logger:    logger,
	}).(*tokenStore)
	store.clock = func() time.Time { return now }

	cfg := &config.Config{OAuth: &config.OAuthConfig{StateTTL: 10 * time.Minute}}

	svc := NewConnectionService(ConnectionServiceParams{
		Registry:    registry,
		TokenStore:  store,
		PendingRepo: pendingRepo,
		TxManager:   txManager,
		Publisher:   publisher,
		Metrics:     metrics,
		Config:      cfg,
		Logger:      logger,
	}).(*connectionService)
	svc.clock = func() time.Time { return now }
	svc.stateFactory = func() (string, error) { return testState, nil }

	return connectionServiceFixtures{
		service:     svc,
		registry:    registry,
		adapter:     adapter,
		pendingRepo: pendingRepo,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metrics,
		now:         now,
	}
}

func TestGenerateState(t *testing.T) {
	a, err := generateState()
	require.NoError(t, err)
	b, err := generateState()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestConnectionService_Initiate_Success(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.registry.EXPECT().Get(entity.ProviderPrimeVideo).Return(fx.adapter, true)
	fx.pendingRepo.EXPECT().Save(ctx, &entity.PendingAuthorization{
		State:     testState,
		UserID:    userID,
		Provider:  entity.ProviderPrimeVideo,
		CreatedAt: fx.now,
		ExpiresAt: fx.now.Add(10 * time.Minute),
	}).Return(nil)
	fx.adapter.EXPECT().AuthorizationURL(testState).Return("https://auth.example.com/authorize?state=" + testState)

	res, err := fx.service.Initiate(ctx, entity.NewRealAuthContext(userID), entity.ProviderPrimeVideo)

	require.NoError(t, err)
	assert.Equal(t, testState, res.State)
	assert.Equal(t, userID, res.UserID)
	assert.Equal(t, entity.ConnectionAwaitingCallback, res.Status)
	assert.Contains(t, res.AuthorizationURL, testState)
}

func TestConnectionService_Initiate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		auth     *entity.AuthContext
		provider string
		setup    func(fx connectionServiceFixtures)
		want     error
	}{
		{
			name:     "anonymous",
			auth:     nil,
			provider: entity.ProviderPrimeVideo,
			want:     domainerrors.ErrUnauthorized,
		},
		{
			name:     "demo session",
			auth:     entity.NewDemoAuthContext(uuid.New(), &entity.DemoFixtures{}),
			provider: entity.ProviderPrimeVideo,
			want:     domainerrors.ErrDemoModeReadOnly,
		},
		{
			name:     "unsupported provider",
			auth:     entity.NewRealAuthContext(uuid.New()),
			provider: entity.ProviderHulu,
			setup: func(fx connectionServiceFixtures) {
				fx.registry.EXPECT().Get(entity.ProviderHulu).Return(nil, false)
			},
			want: domainerrors.ErrUnsupportedProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConnectionService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			res, err := fx.service.Initiate(context.Background(), tt.auth, tt.provider)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func validCallback(userID uuid.UUID) *usecase.CallbackInput {
	return &usecase.CallbackInput{
		Provider:    entity.ProviderPrimeVideo,
		Code:        "auth-code",
		State:       testState,
		CookieState: testState,
		CookieUser:  userID.String(),
	}
}

func (fx connectionServiceFixtures) expectPending(ctx context.Context, userID uuid.UUID, state string) {
	fx.pendingRepo.EXPECT().Find(ctx, userID, entity.ProviderPrimeVideo).Return(&entity.PendingAuthorization{
		State:     state,
		UserID:    userID,
		Provider:  entity.ProviderPrimeVideo,
		CreatedAt: fx.now,
		ExpiresAt: fx.now.Add(10 * time.Minute),
	}, nil)
}

func TestConnectionService_HandleCallback_Success(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.registry.EXPECT().Get(entity.ProviderPrimeVideo).Return(fx.adapter, true)
	fx.expectPending(ctx, userID, testState)
	fx.pendingRepo.EXPECT().Consume(ctx, userID, entity.ProviderPrimeVideo, testState).Return(true, nil)
	fx.adapter.EXPECT().ID().Return(entity.ProviderPrimeVideo)
	fx.adapter.EXPECT().ExchangeCode(ctx, "auth-code").Return(&service.TokenResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    3600,
	}, nil)
	fx.adapter.EXPECT().FetchUserProfile(ctx, "access").Return(&service.ProviderProfile{
		ID:    "amzn-1",
		Email: "fan@example.com",
	}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			tokenRepo := mockRepo.NewMockProviderTokenRepository(t)
			selectionRepo := mockRepo.NewMockUserServiceRepository(t)

			factory.EXPECT().NewProviderTokenRepository().Return(tokenRepo)
			factory.EXPECT().NewUserServiceRepository().Return(selectionRepo)
			tokenRepo.EXPECT().UpsertToken(ctx, mock.MatchedBy(func(token *entity.ProviderToken) bool {
				return token.UserID == userID &&
					token.AccessToken == "access" &&
					token.ProviderUserID == "amzn-1" &&
					token.ExpiresAt.Equal(fx.now.Add(time.Hour))
			})).Return(nil)
			selectionRepo.EXPECT().SetConnected(ctx, userID, entity.ProviderPrimeVideo, true).Return(nil)

			return fn(factory)
		})

	fx.publisher.EXPECT().PublishSyncEvent(ctx, mock.MatchedBy(func(event *service.SyncEvent) bool {
		return event.Reason == service.SyncReasonProviderConnected && event.UserID == userID.String()
	})).Return(nil)
	fx.metrics.EXPECT().ObserveOAuthCallback(entity.ProviderPrimeVideo, outcomeConnected).Return()

	res := fx.service.HandleCallback(ctx, validCallback(userID))

	assert.True(t, res.Connected())
	assert.Equal(t, userID, res.UserID)
	assert.Empty(t, res.ErrorCode())
}

func TestConnectionService_HandleCallback_PublishFailureStillConnects(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.registry.EXPECT().Get(entity.ProviderPrimeVideo).Return(fx.adapter, true)
	fx.expectPending(ctx, userID, testState)
	fx.pendingRepo.EXPECT().Consume(ctx, userID, entity.ProviderPrimeVideo, testState).Return(true, nil)
	fx.adapter.EXPECT().ID().Return(entity.ProviderPrimeVideo)
	fx.adapter.EXPECT().ExchangeCode(ctx, "auth-code").Return(&service.TokenResponse{AccessToken: "access", ExpiresIn: 3600}, nil)
	fx.adapter.EXPECT().FetchUserProfile(ctx, "access").Return(&service.ProviderProfile{ID: "amzn-1"}, nil)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishSyncEvent(ctx, mock.Anything).Return(errors.New("broker down"))
	fx.metrics.EXPECT().ObserveOAuthCallback(entity.ProviderPrimeVideo, outcomeConnected).Return()

	res := fx.service.HandleCallback(ctx, validCallback(userID))

	assert.True(t, res.Connected())
}

func TestConnectionService_HandleCallback_Failures(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		input     func() *usecase.CallbackInput
		setup     func(fx connectionServiceFixtures, ctx context.Context)
		reason    entity.FailureReason
		errorCode string
	}{
		{
			name: "unknown provider",
			input: func() *usecase.CallbackInput {
				in := validCallback(userID)
				in.Provider = "netflix"

				return in
			},
			setup: func(fx connectionServiceFixtures, _ context.Context) {
				fx.registry.EXPECT().Get("netflix").Return(nil, false)
				fx.metrics.EXPECT().ObserveOAuthCallback("netflix", string(entity.FailureUnsupportedProvider)).Return()
			},
			reason:    entity.FailureUnsupportedProvider,
			errorCode: "unsupported_provider",
		},
		{
			name: "provider denied keeps the provider error code",
			input: func() *usecase.CallbackInput {
				return &usecase.CallbackInput{Provider: entity.ProviderPrimeVideo, Error: "access_denied"}
			},
			reason:    entity.FailureProviderDenied,
			errorCode: "access_denied",
		},
		{
			name: "provider error with unsafe characters",
			input: func() *usecase.CallbackInput {
				return &usecase.CallbackInput{Provider: entity.ProviderPrimeVideo, Error: "<script>"}
			},
			reason:    entity.FailureProviderDenied,
			errorCode: "provider_denied",
		},
		{
			name: "missing code",
			input: func() *usecase.CallbackInput {
				in := validCallback(userID)
				in.Code = ""

				return in
			},
			reason:    entity.FailureInvalidRequest,
			errorCode: "invalid_request",
		},
		{
			name: "missing cookie state",
			input: func() *usecase.CallbackInput {
				in := validCallback(userID)
				in.CookieState = ""

				return in
			},
			reason:    entity.FailureInvalidRequest,
			errorCode: "invalid_request",
		},
		{
			name: "malformed cookie user",
			input: func() *usecase.CallbackInput {
				in := validCallback(userID)
				in.CookieUser = "not-a-uuid"

				return in
			},
			reason:    entity.FailureInvalidRequest,
			errorCode: "invalid_request",
		},
		{
			name:  "no pending authorization",
			input: func() *usecase.CallbackInput { return validCallback(userID) },
			setup: func(fx connectionServiceFixtures, ctx context.Context) {
				fx.pendingRepo.EXPECT().Find(ctx, userID, entity.ProviderPrimeVideo).Return(nil, repository.ErrPendingStateNotFound)
			},
			reason:    entity.FailureInvalidRequest,
			errorCode: "invalid_request",
		},
		{
			name: "state differs from cookie",
			input: func() *usecase.CallbackInput {
				in := validCallback(userID)
				in.CookieState = "forged"

				return in
			},
			setup: func(fx connectionServiceFixtures, ctx context.Context) {
				fx.expectPending(ctx, userID, testState)
			},
			reason:    entity.FailureInvalidState,
			errorCode: "invalid_state",
		},
		{
			name:  "state differs from pending record",
			input: func() *usecase.CallbackInput { return validCallback(userID) },
			setup: func(fx connectionServiceFixtures, ctx context.Context) {
				fx.expectPending(ctx, userID, "another-state")
			},
			reason:    entity.FailureInvalidState,
			errorCode: "invalid_state",
		},
		{
			name:  "pending record consumed by a concurrent callback",
			input: func() *usecase.CallbackInput { return validCallback(userID) },
			setup: func(fx connectionServiceFixtures, ctx context.Context) {
				fx.expectPending(ctx, userID, testState)
				fx.pendingRepo.EXPECT().Consume(ctx, userID, entity.ProviderPrimeVideo, testState).Return(false, nil)
			},
			reason:    entity.FailureInvalidRequest,
			errorCode: "invalid_request",
		},
		{
			name:  "code exchange fails",
			input: func() *usecase.CallbackInput { return validCallback(userID) },
			setup: func(fx connectionServiceFixtures, ctx context.Context) {
				fx.expectPending(ctx, userID, testState)
				fx.pendingRepo.EXPECT().Consume(ctx, userID, entity.ProviderPrimeVideo, testState).Return(true, nil)
				fx.adapter.EXPECT().ExchangeCode(ctx, "auth-code").
					Return(nil, domainerrors.NewTokenExchangeError(entity.ProviderPrimeVideo, 400, errors.New("bad code")))
			},
			reason:    entity.FailureConnectionFailed,
			errorCode: "connection_failed",
		},
		{
			name:  "persistence fails",
			input: func() *usecase.CallbackInput { return validCallback(userID) },
			setup: func(fx connectionServiceFixtures, ctx context.Context) {
				fx.expectPending(ctx, userID, testState)
				fx.pendingRepo.EXPECT().Consume(ctx, userID, entity.ProviderPrimeVideo, testState).Return(true, nil)
				fx.adapter.EXPECT().ID().Return(entity.ProviderPrimeVideo)
				fx.adapter.EXPECT().ExchangeCode(ctx, "auth-code").Return(&service.TokenResponse{AccessToken: "access", ExpiresIn: 60}, nil)
				fx.adapter.EXPECT().FetchUserProfile(ctx, "access").Return(&service.ProviderProfile{ID: "amzn-1"}, nil)
				fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("db error"))
			},
			reason:    entity.FailureConnectionFailed,
			errorCode: "connection_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConnectionService(t)
			ctx := context.Background()
			input := tt.input()

			if input.Provider == entity.ProviderPrimeVideo {
				fx.registry.EXPECT().Get(entity.ProviderPrimeVideo).Return(fx.adapter, true)
				fx.metrics.EXPECT().ObserveOAuthCallback(entity.ProviderPrimeVideo, string(tt.reason)).Return()
			}
			if tt.setup != nil {
				tt.setup(fx, ctx)
			}

			res := fx.service.HandleCallback(ctx, input)

			assert.False(t, res.Connected())
			assert.Equal(t, entity.ConnectionFailed, res.Status)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, tt.errorCode, res.ErrorCode())
		})
	}
}

func TestConnectionService_Disconnect_Twice(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	tokenRepo := mockRepo.NewMockProviderTokenRepository(t)
	selectionRepo := mockRepo.NewMockUserServiceRepository(t)

	factory.EXPECT().NewProviderTokenRepository().Return(tokenRepo).Times(2)
	factory.EXPECT().NewUserServiceRepository().Return(selectionRepo).Times(2)
	tokenRepo.EXPECT().DeleteToken(ctx, userID, entity.ProviderPrimeVideo).Return(true, nil).Once()
	tokenRepo.EXPECT().DeleteToken(ctx, userID, entity.ProviderPrimeVideo).Return(false, nil).Once()
	selectionRepo.EXPECT().SetConnected(ctx, userID, entity.ProviderPrimeVideo, false).Return(nil).Times(2)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Times(2)

	auth := entity.NewRealAuthContext(userID)

	assert.NoError(t, fx.service.Disconnect(ctx, auth, entity.ProviderPrimeVideo))
	assert.NoError(t, fx.service.Disconnect(ctx, auth, entity.ProviderPrimeVideo))
}

func TestConnectionService_Disconnect_PersistenceError(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(domainerrors.NewDatabaseExecuteError(errors.New("db error"), "failed to delete provider token"))

	err := fx.service.Disconnect(ctx, entity.NewRealAuthContext(uuid.New()), entity.ProviderPrimeVideo)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestConnectionService_Disconnect_Rejections(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	assert.ErrorIs(t, fx.service.Disconnect(ctx, nil, entity.ProviderPrimeVideo), domainerrors.ErrUnauthorized)
	assert.ErrorIs(t,
		fx.service.Disconnect(ctx, entity.NewDemoAuthContext(uuid.New(), nil), entity.ProviderPrimeVideo),
		domainerrors.ErrDemoModeReadOnly,
	)
	assert.ErrorIs(t,
		fx.service.Disconnect(ctx, entity.NewRealAuthContext(uuid.New()), "netflix"),
		domainerrors.ErrUnsupportedProvider,
	)
}

func TestSanitizeProviderError(t *testing.T) {
	assert.Equal(t, "access_denied", sanitizeProviderError("access_denied"))
	assert.Equal(t, "temporarily_unavailable", sanitizeProviderError("temporarily_unavailable"))
	assert.Equal(t, "provider_denied", sanitizeProviderError("a b"))
	assert.Equal(t, "provider_denied", sanitizeProviderError("x&next=https://evil.example.com"))
}
