// Package oauth wires the per-provider OAuth adapters into a lookup table.
package oauth

import (
	"log/slog"

	"television/config"
	"television/internal/domain/entity"
	"television/internal/domain/service"
	"television/internal/infra/oauth/primevideo"
	"television/internal/infra/oauth/simulated"

	"go.uber.org/fx"
)

// Registry maps provider ids to adapters
type Registry struct {
	providers map[string]service.OAuthProvider
}

// NewRegistry builds a registry from explicit adapters
func NewRegistry(providers ...service.OAuthProvider) *Registry {
	r := &Registry{providers: make(map[string]service.OAuthProvider, len(providers))}
	for _, p := range providers {
		r.providers[p.ID()] = p
	}

	return r
}

// Get returns the adapter registered for id
func (r *Registry) Get(id string) (service.OAuthProvider, bool) {
	p, ok := r.providers[id]

	return p, ok
}

// RegistryParams holds dependencies for the registry, injected by Fx
type RegistryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewConfiguredRegistry registers every provider whose catalog auth type is oauth
func NewConfiguredRegistry(params RegistryParams) service.OAuthProviderRegistry {
	cfg := params.Config
	prime := cfg.Providers.PrimeVideo

	var primeProvider service.OAuthProvider
	if prime.IsSimulated() {
		params.Logger.Warn("Prime Video OAuth is simulated", slog.String("client_id", prime.ClientID))
		primeProvider = simulated.NewProvider(entity.ProviderPrimeVideo, prime.AuthEndpoint, prime.ClientID, prime.RedirectURI, prime.Scope)
	} else {
		primeProvider = primevideo.NewProvider(prime, cfg.OAuth.RequestTimeout)
	}

	return NewRegistry(primeProvider)
}

// Module provides the OAuth adapters FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewConfiguredRegistry),
)
