package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"regexp"
	"time"

	"television/config"
	deliverycontext "television/internal/delivery/context"
	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"
	"television/internal/domain/service"
	"television/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	stateBytes            = 32
	maxProviderErrorChars = 64
	outcomeConnected      = "connected"
)

// providerErrorPattern is the character set OAuth error codes are drawn from
var providerErrorPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

type connectionService struct {
	registry     service.OAuthProviderRegistry
	tokenStore   usecase.TokenStore
	pendingRepo  repository.PendingStateRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	metrics      service.Metrics
	stateTTL     time.Duration
	logger       *slog.Logger
	clock        func() time.Time
	stateFactory func() (string, error)
}

// ConnectionServiceParams holds dependencies for ConnectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	Registry    service.OAuthProviderRegistry
	TokenStore  usecase.TokenStore
	PendingRepo repository.PendingStateRepository
	TxManager   repository.TransactionManager
	Publisher   service.EventPublisher
	Metrics     service.Metrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewConnectionService creates the provider connection flow
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	return &connectionService{
		registry:     params.Registry,
		tokenStore:   params.TokenStore,
		pendingRepo:  params.PendingRepo,
		txManager:    params.TxManager,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		stateTTL:     params.Config.OAuth.StateTTL,
		logger:       params.Logger,
		clock:        time.Now,
		stateFactory: generateState,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

// Initiate stores a pending authorization for a signed-in user and builds the consent URL.
func (s *connectionService) Initiate(ctx context.Context, auth *entity.AuthContext, provider string) (*usecase.ConnectionInitiation, error) {
	if err := requireRealUser(auth, domainerrors.ErrDemoModeReadOnly); err != nil {
		return nil, err
	}

	adapter, ok := s.registry.Get(provider)
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(provider)
	}

	state, err := s.stateFactory()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate oauth state")
	}

	now := s.clock()
	pending := &entity.PendingAuthorization{
		State:     state,
		UserID:    auth.UserID,
		Provider:  provider,
		CreatedAt: now,
		ExpiresAt: now.Add(s.stateTTL),
	}
	if err := s.pendingRepo.Save(ctx, pending); err != nil {
		return nil, errors.Wrap(err, "failed to save pending authorization")
	}

	s.log(ctx).Info("provider connection initiated",
		slog.String("provider", provider),
		slog.String("user_id", auth.UserID.String()),
	)

	return &usecase.ConnectionInitiation{
		Provider:         provider,
		UserID:           auth.UserID,
		State:            state,
		AuthorizationURL: adapter.AuthorizationURL(state),
		ExpiresAt:        pending.ExpiresAt,
		Status:           entity.ConnectionAwaitingCallback,
	}, nil
}

// HandleCallback validates the callback against the cookies and the pending record, then
// exchanges the code and stores the token together with the selection flag.
func (s *connectionService) HandleCallback(ctx context.Context, input *usecase.CallbackInput) *usecase.CallbackResult {
	result := s.handleCallback(ctx, input)

	outcome := outcomeConnected
	if !result.Connected() {
		outcome = string(result.Reason)
		s.log(ctx).Warn("provider connection failed",
			slog.String("provider", input.Provider),
			slog.String("reason", outcome),
			slog.String("provider_error", result.ProviderError),
		)
	}
	s.metrics.ObserveOAuthCallback(input.Provider, outcome)

	return result
}

func (s *connectionService) handleCallback(ctx context.Context, input *usecase.CallbackInput) *usecase.CallbackResult {
	adapter, ok := s.registry.Get(input.Provider)
	if !ok {
		return failed(input.Provider, entity.FailureUnsupportedProvider)
	}

	if input.Error != "" {
		res := failed(input.Provider, entity.FailureProviderDenied)
		res.ProviderError = sanitizeProviderError(input.Error)

		return res
	}

	if input.Code == "" || input.State == "" || input.CookieState == "" || input.CookieUser == "" {
		return failed(input.Provider, entity.FailureInvalidRequest)
	}

	userID, err := uuid.Parse(input.CookieUser)
	if err != nil {
		return failed(input.Provider, entity.FailureInvalidRequest)
	}

	pending, err := s.pendingRepo.Find(ctx, userID, input.Provider)
	if err != nil {
		if !errors.Is(err, repository.ErrPendingStateNotFound) {
			s.log(ctx).Error("failed to read pending authorization", slog.Any("error", err))
		}

		return failed(input.Provider, entity.FailureInvalidRequest)
	}

	if !constantTimeEqual(input.State, input.CookieState) || !constantTimeEqual(input.State, pending.State) {
		return failed(input.Provider, entity.FailureInvalidState)
	}

	consumed, err := s.pendingRepo.Consume(ctx, userID, input.Provider, input.State)
	if err != nil {
		s.log(ctx).Error("failed to consume pending authorization", slog.Any("error", err))

		return failed(input.Provider, entity.FailureConnectionFailed)
	}
	if !consumed {
		return failed(input.Provider, entity.FailureInvalidRequest)
	}

	if err := s.connect(ctx, adapter, userID, input.Code); err != nil {
		s.log(ctx).Error("failed to complete provider connection",
			slog.String("provider", input.Provider),
			slog.Any("error", err),
		)

		res := failed(input.Provider, entity.FailureConnectionFailed)
		res.UserID = userID

		return res
	}

	s.publishSync(ctx, userID, input.Provider)

	return &usecase.CallbackResult{
		Provider: input.Provider,
		UserID:   userID,
		Status:   entity.ConnectionConnected,
	}
}

func (s *connectionService) connect(ctx context.Context, adapter service.OAuthProvider, userID uuid.UUID, code string) error {
	tokenResp, err := adapter.ExchangeCode(ctx, code)
	if err != nil {
		return errors.Wrap(err, "code exchange failed")
	}

	profile, err := adapter.FetchUserProfile(ctx, tokenResp.AccessToken)
	if err != nil {
		return errors.Wrap(err, "profile fetch failed")
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tokens := s.tokenStore.WithRepository(factory.NewProviderTokenRepository())
		if _, err := tokens.Put(ctx, userID, adapter.ID(), tokenResp, profile); err != nil {
			return err
		}

		if err := factory.NewUserServiceRepository().SetConnected(ctx, userID, adapter.ID(), true); err != nil {
			return errors.Wrap(err, "failed to mark service connected")
		}

		return nil
	})
}

// publishSync asks the sync worker to rebuild the cache; failures only get logged.
func (s *connectionService) publishSync(ctx context.Context, userID uuid.UUID, provider string) {
	event := &service.SyncEvent{
		RequestID: deliverycontext.RequestIDFrom(ctx),
		Reason:    service.SyncReasonProviderConnected,
		UserID:    userID.String(),
	}

	if err := s.publisher.PublishSyncEvent(ctx, event); err != nil {
		s.log(ctx).Warn("failed to publish sync event",
			slog.String("provider", provider),
			slog.Any("error", err),
		)
	}
}

// Disconnect deletes the token and clears the flag in one transaction
func (s *connectionService) Disconnect(ctx context.Context, auth *entity.AuthContext, provider string) error {
	if err := requireRealUser(auth, domainerrors.ErrDemoModeReadOnly); err != nil {
		return err
	}

	if _, ok := entity.LookupProvider(provider); !ok {
		return domainerrors.ErrUnsupportedProvider.WithDetails(provider)
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tokens := s.tokenStore.WithRepository(factory.NewProviderTokenRepository())
		if err := tokens.Delete(ctx, auth.UserID, provider); err != nil {
			return err
		}

		if err := factory.NewUserServiceRepository().SetConnected(ctx, auth.UserID, provider, false); err != nil {
			return errors.Wrap(err, "failed to clear service connection")
		}

		s.log(ctx).Info("provider disconnected",
			slog.String("provider", provider),
			slog.String("user_id", auth.UserID.String()),
		)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to disconnect provider")
	}

	return nil
}

// requireRealUser rejects anonymous callers and demo sessions
func requireRealUser(auth *entity.AuthContext, demoErr *domainerrors.BaseError) error {
	if auth == nil {
		return domainerrors.ErrUnauthorized
	}
	if auth.IsDemo() {
		return demoErr
	}
	if !auth.IsReal() || auth.UserID == uuid.Nil {
		return domainerrors.ErrUnauthorized
	}

	return nil
}

func failed(provider string, reason entity.FailureReason) *usecase.CallbackResult {
	return &usecase.CallbackResult{
		Provider: provider,
		Status:   entity.ConnectionFailed,
		Reason:   reason,
	}
}

// sanitizeProviderError keeps a provider error code safe to echo into a redirect URL
func sanitizeProviderError(code string) string {
	if len(code) > maxProviderErrorChars || !providerErrorPattern.MatchString(code) {
		return string(entity.FailureProviderDenied)
	}

	return code
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func generateState() (string, error) {
	buf := make([]byte, stateBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.WithStack(err)
	}

	return hex.EncodeToString(buf), nil
}
