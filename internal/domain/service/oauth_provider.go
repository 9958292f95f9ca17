package service

import (
	"context"
)

// TokenResponse is the result of a code exchange or refresh grant.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"` // Empty when the provider did not rotate it
	ExpiresIn    int    `json:"expires_in"`              // Seconds
	TokenType    string `json:"token_type"`
}

// ProviderProfile is the provider-side account the token belongs to.
type ProviderProfile struct {
	ID       string
	Email    string
	Name     string
	Metadata map[string]any // Raw profile snapshot
}

// OAuthProvider implements the authorization-code flow against one streaming provider.
// Real and simulated implementations are interchangeable.
type OAuthProvider interface {
	// ID returns the provider id, e.g. "prime-video".
	ID() string

	// AuthorizationURL builds the consent URL for state. It has no side effects.
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for tokens.
	ExchangeCode(ctx context.Context, code string) (*TokenResponse, error)

	// RefreshToken runs the refresh grant.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error)

	// FetchUserProfile reads the account profile with an access token.
	FetchUserProfile(ctx context.Context, accessToken string) (*ProviderProfile, error)

	// SupportsRefresh reports whether RefreshToken may be called.
	SupportsRefresh() bool
}

// OAuthProviderRegistry resolves provider ids to adapters.
type OAuthProviderRegistry interface {
	// Get returns the adapter for id, if one is registered.
	Get(id string) (OAuthProvider, bool)
}
