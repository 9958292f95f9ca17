package impl

import (
	"context"
	"time"

	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/service"
	"television/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type libraryService struct {
	tokens  usecase.TokenStore
	clients map[string]service.LibraryClient
	clock   func() time.Time
}

// LibraryServiceParams holds dependencies for LibraryService, injected by Fx.
type LibraryServiceParams struct {
	fx.In

	Tokens  usecase.TokenStore
	Clients []service.LibraryClient `group:"library_clients"`
}

// NewLibraryService creates the provider library use case
func NewLibraryService(params LibraryServiceParams) usecase.LibraryUsecase {
	clients := make(map[string]service.LibraryClient, len(params.Clients))
	for _, c := range params.Clients {
		clients[c.Provider()] = c
	}

	return &libraryService{
		tokens:  params.Tokens,
		clients: clients,
		clock:   time.Now,
	}
}

// GetLibrary loads the caller's token, refreshing it if needed, and reads the library
func (s *libraryService) GetLibrary(ctx context.Context, auth *entity.AuthContext, provider string) ([]*entity.LibraryItem, error) {
	if err := requireRealUser(auth, domainerrors.ErrForbidden); err != nil {
		return nil, err
	}

	client, ok := s.clients[provider]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(provider)
	}

	token, err := s.tokens.Get(ctx, auth.UserID, provider)
	if err != nil {
		return nil, err
	}

	items, err := client.FetchLibrary(ctx, token.AccessToken, s.clock())
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch provider library")
	}

	return items, nil
}
