// Package simulated provides a deterministic stand-in for OAuth providers that are not wired
// to a real backend. It never performs network calls.
package simulated

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"television/internal/domain/service"
)

const (
	demoExpiresIn = 3600
	demoUserID    = "prime-demo-user-123"
	demoEmail     = "demo@primevideo.com"
	demoName      = "Demo Prime User"
)

// Provider answers every call with canned, clock-derived values
type Provider struct {
	id           string
	authEndpoint string
	clientID     string
	redirectURI  string
	scope        string
	now          func() time.Time
}

// Option customises a simulated provider
type Option func(*Provider)

// WithClock overrides the clock used to derive token values
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// NewProvider creates a simulated provider for id. The authorization URL still points at
// authEndpoint so the redirect flow can be exercised end to end.
func NewProvider(id, authEndpoint, clientID, redirectURI, scope string, opts ...Option) *Provider {
	p := &Provider{
		id:           id,
		authEndpoint: authEndpoint,
		clientID:     clientID,
		redirectURI:  redirectURI,
		scope:        scope,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

var _ service.OAuthProvider = (*Provider)(nil)

func (p *Provider) ID() string {
	return p.id
}

func (p *Provider) SupportsRefresh() bool {
	return true
}

func (p *Provider) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", p.clientID)
	params.Set("response_type", "code")
	params.Set("redirect_uri", p.redirectURI)
	params.Set("scope", p.scope)
	params.Set("state", state)

	return p.authEndpoint + "?" + params.Encode()
}

func (p *Provider) ExchangeCode(ctx context.Context, _ string) (*service.TokenResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stamp := p.stamp()

	return &service.TokenResponse{
		AccessToken:  "demo-access-token-" + stamp,
		RefreshToken: "demo-refresh-token-" + stamp,
		ExpiresIn:    demoExpiresIn,
		TokenType:    "Bearer",
	}, nil
}

// RefreshToken issues a new access token and hands back the same refresh token
func (p *Provider) RefreshToken(ctx context.Context, refreshToken string) (*service.TokenResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &service.TokenResponse{
		AccessToken:  "demo-access-token-" + p.stamp(),
		RefreshToken: refreshToken,
		ExpiresIn:    demoExpiresIn,
		TokenType:    "Bearer",
	}, nil
}

func (p *Provider) FetchUserProfile(ctx context.Context, _ string) (*service.ProviderProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &service.ProviderProfile{
		ID:    demoUserID,
		Email: demoEmail,
		Name:  demoName,
		Metadata: map[string]any{
			"subscription": "Prime",
			"region":       "US",
		},
	}, nil
}

func (p *Provider) stamp() string {
	return strconv.FormatInt(p.now().UnixMilli(), 10)
}
