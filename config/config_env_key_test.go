package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"providers": map[string]any{
			"primeVideo": map[string]any{
				"clientId": "",
			},
		},
		"oauth": map[string]any{
			"stateStore": "memory",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "PROVIDERS_PRIMEVIDEO_CLIENTID", want: "providers.primeVideo.clientId"},
		{envKey: "OAUTH_STATESTORE", want: "oauth.stateStore"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StateStoreMemory, cfg.OAuth.StateStore)
	assert.Equal(t, 10*time.Minute, cfg.OAuth.StateTTL)
	assert.Equal(t, 10*time.Second, cfg.OAuth.RequestTimeout)
	assert.Equal(t, "https://www.amazon.com/ap/oa", cfg.Providers.PrimeVideo.AuthEndpoint)
	assert.True(t, cfg.Providers.PrimeVideo.IsSimulated())
	assert.Equal(t, defaultTimeZone, cfg.Aggregator.TimeZone)
	assert.NotNil(t, cfg.Demo)
}

func TestOAuthProviderConfig_IsSimulated(t *testing.T) {
	real := &OAuthProviderConfig{ClientID: "amzn1.application-oa2-client.abc"}
	assert.False(t, real.IsSimulated())

	real.Simulate = true
	assert.True(t, real.IsSimulated())
}
