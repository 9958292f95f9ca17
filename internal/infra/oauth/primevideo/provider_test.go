package primevideo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"television/config"
	domainerrors "television/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Provider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewProvider(&config.OAuthProviderConfig{
		ClientID:         "client-123",
		ClientSecret:     "secret-456",
		RedirectURI:      "http://localhost:8080/auth/callback/prime-video",
		Scope:            "profile video:access",
		AuthEndpoint:     "https://www.amazon.com/ap/oa",
		TokenEndpoint:    srv.URL + "/auth/o2/token",
		UserInfoEndpoint: srv.URL + "/user/profile",
	}, timeout)
}

func TestProvider_AuthorizationURL(t *testing.T) {
	p := newTestProvider(t, func(http.ResponseWriter, *http.Request) {}, time.Second)

	raw := p.AuthorizationURL("abc123")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "www.amazon.com", u.Host)
	assert.Equal(t, "/ap/oa", u.Path)

	q := u.Query()
	assert.Equal(t, "client-123", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "http://localhost:8080/auth/callback/prime-video", q.Get("redirect_uri"))
	assert.Equal(t, "profile video:access", q.Get("scope"))
	assert.Equal(t, "abc123", q.Get("state"))

	assert.Equal(t, raw, p.AuthorizationURL("abc123"), "construction must be deterministic")
}

func TestProvider_ExchangeCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "the-code", r.PostForm.Get("code"))
			assert.Equal(t, "client-123", r.PostForm.Get("client_id"))
			assert.Equal(t, "secret-456", r.PostForm.Get("client_secret"))
			assert.Equal(t, "http://localhost:8080/auth/callback/prime-video", r.PostForm.Get("redirect_uri"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "at",
				"refresh_token": "rt",
				"expires_in":    3600,
				"token_type":    "bearer",
			})
		}, time.Second)

		token, err := p.ExchangeCode(context.Background(), "the-code")
		require.NoError(t, err)
		assert.Equal(t, "at", token.AccessToken)
		assert.Equal(t, "rt", token.RefreshToken)
		assert.Equal(t, 3600, token.ExpiresIn)
	})

	t.Run("non-success status", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
		}, time.Second)

		_, err := p.ExchangeCode(context.Background(), "bad")
		require.Error(t, err)
		assert.True(t, domainerrors.IsUpstreamKind(err, domainerrors.UpstreamTokenExchange))

		var upstream *domainerrors.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusBadRequest, upstream.StatusCode())
	})

	t.Run("timeout surfaces as exchange error", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}, 20*time.Millisecond)

		_, err := p.ExchangeCode(context.Background(), "slow")
		require.Error(t, err)
		assert.True(t, domainerrors.IsUpstreamKind(err, domainerrors.UpstreamTokenExchange))
	})
}

func TestProvider_RefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			assert.Equal(t, "old-rt", r.PostForm.Get("refresh_token"))

			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "new-at", "expires_in": 3600, "token_type": "bearer"})
		}, time.Second)

		token, err := p.RefreshToken(context.Background(), "old-rt")
		require.NoError(t, err)
		assert.Equal(t, "new-at", token.AccessToken)
		assert.Empty(t, token.RefreshToken)
	})

	t.Run("failure", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}, time.Second)

		_, err := p.RefreshToken(context.Background(), "revoked")
		assert.True(t, domainerrors.IsUpstreamKind(err, domainerrors.UpstreamTokenRefresh))
	})
}

func TestProvider_FetchUserProfile(t *testing.T) {
	t.Run("maps user_id and keeps raw body", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"user_id":     "amzn1.account.XYZ",
				"email":       "viewer@example.com",
				"name":        "Viewer",
				"postal_code": "98101",
			})
		}, time.Second)

		profile, err := p.FetchUserProfile(context.Background(), "at")
		require.NoError(t, err)
		assert.Equal(t, "amzn1.account.XYZ", profile.ID)
		assert.Equal(t, "viewer@example.com", profile.Email)
		assert.Equal(t, "Viewer", profile.Name)
		assert.Equal(t, "98101", profile.Metadata["postal_code"])
	})

	t.Run("non-success status", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}, time.Second)

		_, err := p.FetchUserProfile(context.Background(), "at")
		assert.True(t, domainerrors.IsUpstreamKind(err, domainerrors.UpstreamProfileFetch))
	})
}
