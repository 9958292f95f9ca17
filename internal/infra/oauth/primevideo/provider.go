// Package primevideo implements the Login with Amazon authorization-code flow used to link
// Prime Video accounts.
package primevideo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"television/config"
	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/service"

	"github.com/pkg/errors"
)

// maxErrorBody bounds how much of a failed upstream response is kept for diagnostics
const maxErrorBody = 4 << 10

// Provider talks to the Amazon OAuth endpoints
type Provider struct {
	clientID         string
	clientSecret     string
	redirectURI      string
	scope            string
	authEndpoint     string
	tokenEndpoint    string
	userInfoEndpoint string

	timeout    time.Duration
	httpClient *http.Client
}

// NewProvider creates the Prime Video adapter. Every outbound call is bounded by timeout.
func NewProvider(cfg *config.OAuthProviderConfig, timeout time.Duration) *Provider {
	return &Provider{
		clientID:         cfg.ClientID,
		clientSecret:     cfg.ClientSecret,
		redirectURI:      cfg.RedirectURI,
		scope:            cfg.Scope,
		authEndpoint:     cfg.AuthEndpoint,
		tokenEndpoint:    cfg.TokenEndpoint,
		userInfoEndpoint: cfg.UserInfoEndpoint,
		timeout:          timeout,
		httpClient:       &http.Client{Timeout: timeout},
	}
}

var _ service.OAuthProvider = (*Provider)(nil)

// ID returns the provider id
func (p *Provider) ID() string {
	return entity.ProviderPrimeVideo
}

// SupportsRefresh reports that Amazon issues refresh tokens
func (p *Provider) SupportsRefresh() bool {
	return true
}

// AuthorizationURL constructs the consent URL carrying the anti-CSRF state
func (p *Provider) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", p.clientID)
	params.Set("response_type", "code")
	params.Set("redirect_uri", p.redirectURI)
	params.Set("scope", p.scope)
	params.Set("state", state)

	return p.authEndpoint + "?" + params.Encode()
}

// ExchangeCode trades an authorization code for tokens
func (p *Provider) ExchangeCode(ctx context.Context, code string) (*service.TokenResponse, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", p.redirectURI)
	data.Set("client_id", p.clientID)
	data.Set("client_secret", p.clientSecret)

	token, status, err := p.postTokenForm(ctx, data)
	if err != nil {
		return nil, domainerrors.NewTokenExchangeError(p.ID(), status, err)
	}

	return token, nil
}

// RefreshToken runs the refresh grant
func (p *Provider) RefreshToken(ctx context.Context, refreshToken string) (*service.TokenResponse, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)
	data.Set("client_id", p.clientID)
	data.Set("client_secret", p.clientSecret)

	token, status, err := p.postTokenForm(ctx, data)
	if err != nil {
		return nil, domainerrors.NewTokenRefreshError(p.ID(), status, err)
	}

	return token, nil
}

// FetchUserProfile retrieves the Amazon account profile
func (p *Provider) FetchUserProfile(ctx context.Context, accessToken string) (*service.ProviderProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoEndpoint, nil)
	if err != nil {
		return nil, domainerrors.NewProfileFetchError(p.ID(), 0, errors.Wrap(err, "failed to create profile request"))
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewProfileFetchError(p.ID(), 0, errors.Wrap(err, "failed to get user profile"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.NewProfileFetchError(p.ID(), resp.StatusCode, upstreamBodyError(resp.Body))
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, domainerrors.NewProfileFetchError(p.ID(), resp.StatusCode, errors.Wrap(err, "failed to decode profile response"))
	}

	profile := &service.ProviderProfile{
		ID:       stringField(raw, "user_id"),
		Email:    stringField(raw, "email"),
		Name:     stringField(raw, "name"),
		Metadata: raw,
	}
	if profile.ID == "" {
		return nil, domainerrors.NewProfileFetchError(p.ID(), resp.StatusCode, errors.New("profile response has no user_id"))
	}

	return profile, nil
}

// postTokenForm posts to the token endpoint. The returned status is zero when no response arrived.
func (p *Provider) postTokenForm(ctx context.Context, data url.Values) (*service.TokenResponse, int, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenEndpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to create token request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, upstreamBodyError(resp.Body)
	}

	var token service.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "failed to decode token response")
	}
	if token.AccessToken == "" {
		return nil, resp.StatusCode, errors.New("token response has no access_token")
	}

	return &token, resp.StatusCode, nil
}

func upstreamBodyError(body io.Reader) error {
	b, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))

	return errors.Errorf("unexpected response: %s", strings.TrimSpace(string(b)))
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)

	return v
}
