package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "television/internal/delivery/context"
	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"
	"television/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type serviceSelectionService struct {
	selectionRepo repository.UserServiceRepository
	tokenRepo     repository.ProviderTokenRepository
	logger        *slog.Logger
	clock         func() time.Time
}

// ServiceSelectionServiceParams holds dependencies for ServiceSelectionService, injected by Fx.
type ServiceSelectionServiceParams struct {
	fx.In

	SelectionRepo repository.UserServiceRepository
	TokenRepo     repository.ProviderTokenRepository
	Logger        *slog.Logger
}

// NewServiceSelectionService creates the service picker use case
func NewServiceSelectionService(params ServiceSelectionServiceParams) usecase.ServiceSelectionUsecase {
	return &serviceSelectionService{
		selectionRepo: params.SelectionRepo,
		tokenRepo:     params.TokenRepo,
		logger:        params.Logger,
		clock:         time.Now,
	}
}

func (s *serviceSelectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

// ListServices annotates the catalog. Demo sessions see their fixtures; for OAuth providers of
// real users a usable token decides the flag, not the stored selection.
func (s *serviceSelectionService) ListServices(ctx context.Context, auth *entity.AuthContext) ([]*entity.ServiceStatus, error) {
	if auth == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	catalog := entity.ProviderCatalog()
	statuses := make([]*entity.ServiceStatus, 0, len(catalog))

	if auth.IsDemo() {
		var demoServices []string
		if auth.Demo != nil {
			demoServices = auth.Demo.Services
		}
		for _, p := range catalog {
			statuses = append(statuses, &entity.ServiceStatus{
				StreamingProvider: p,
				Connected:         slices.Contains(demoServices, p.ID),
			})
		}

		return statuses, nil
	}

	if err := requireRealUser(auth, domainerrors.ErrForbidden); err != nil {
		return nil, err
	}

	selections, err := s.selectionRepo.ListByUser(ctx, auth.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service selections")
	}
	selected := make(map[string]bool, len(selections))
	for _, sel := range selections {
		selected[sel.ServiceName] = sel.Connected
	}

	for _, p := range catalog {
		connected := selected[p.ID]
		if p.IsOAuth() {
			connected, err = s.hasUsableToken(ctx, auth, p.ID)
			if err != nil {
				return nil, err
			}
		}

		statuses = append(statuses, &entity.ServiceStatus{StreamingProvider: p, Connected: connected})
	}

	return statuses, nil
}

func (s *serviceSelectionService) hasUsableToken(ctx context.Context, auth *entity.AuthContext, provider string) (bool, error) {
	token, err := s.tokenRepo.FindToken(ctx, auth.UserID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find provider token")
	}

	return !token.IsExpired(s.clock()) || token.CanRefresh(), nil
}

// SetConnected stores the flag of a provider linked without OAuth
func (s *serviceSelectionService) SetConnected(ctx context.Context, auth *entity.AuthContext, provider string, connected bool) (*entity.ServiceStatus, error) {
	if err := requireRealUser(auth, domainerrors.ErrDemoModeReadOnly); err != nil {
		return nil, err
	}

	p, ok := entity.LookupProvider(provider)
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(provider)
	}
	if p.IsOAuth() {
		return nil, domainerrors.ErrProviderNotToggleable.WithDetails(provider)
	}

	if err := s.selectionRepo.SetConnected(ctx, auth.UserID, provider, connected); err != nil {
		return nil, errors.Wrap(err, "failed to update service selection")
	}

	s.log(ctx).Info("service selection updated",
		slog.String("provider", provider),
		slog.Bool("connected", connected),
	)

	return &entity.ServiceStatus{StreamingProvider: p, Connected: connected}, nil
}
