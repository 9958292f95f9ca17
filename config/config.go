package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultStateTTL           = 10 * time.Minute
	defaultRequestTimeout     = 10 * time.Second
	defaultFetchTimeout       = 10 * time.Second
	defaultTimeZone           = "America/New_York"
	defaultSettingsURL        = "http://localhost:3000/settings"
	defaultQRCodeSize         = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		// AutoMigrate creates or updates the tables on start-up
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs the pending OAuth state store when oauth.stateStore is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		// Session is the HS256 secret shared with the identity provider that issues user sessions
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	App *AppConfig `json:"app" yaml:"app"`

	OAuth *OAuthConfig `json:"oauth" yaml:"oauth"`

	Providers struct {
		PrimeVideo *OAuthProviderConfig `json:"primeVideo" yaml:"primeVideo"`
	} `json:"providers" yaml:"providers"`

	Aggregator *AggregatorConfig `json:"aggregator" yaml:"aggregator"`

	// Demo enables the demo-mode cookie and the fixtures served to demo sessions
	Demo *DemoConfig `json:"demo" yaml:"demo"`

	// PubSub configuration for sync event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for deep link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the connection used by the redis state store
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// AppConfig holds browser-facing URLs of the web app
type AppConfig struct {
	// SettingsURL is where OAuth callbacks redirect with provider_connected/provider_error
	SettingsURL string `json:"settingsUrl" yaml:"settingsUrl"`
	// AllowedOrigins enables credentialed CORS for the listed web app origins
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// OAuthConfig defines the provider connection flow settings
type OAuthConfig struct {
	// StateStore selects the pending state backend: memory, redis or postgres
	StateStore     string        `json:"stateStore" yaml:"stateStore"`
	StateTTL       time.Duration `json:"stateTtl" yaml:"stateTtl"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	SecureCookies  bool          `json:"secureCookies" yaml:"secureCookies"`
}

// OAuthProviderConfig describes one authorization-code provider
type OAuthProviderConfig struct {
	ClientID         string `json:"clientId" yaml:"clientId"`
	ClientSecret     string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI      string `json:"redirectUri" yaml:"redirectUri"`
	Scope            string `json:"scope" yaml:"scope"`
	AuthEndpoint     string `json:"authEndpoint" yaml:"authEndpoint"`
	TokenEndpoint    string `json:"tokenEndpoint" yaml:"tokenEndpoint"`
	UserInfoEndpoint string `json:"userInfoEndpoint" yaml:"userInfoEndpoint"`
	// Simulate swaps the real adapter for the deterministic simulated one
	Simulate bool `json:"simulate" yaml:"simulate"`
}

// AggregatorConfig defines content aggregation behaviour
type AggregatorConfig struct {
	FetchTimeout time.Duration `json:"fetchTimeout" yaml:"fetchTimeout"`
	// TimeZone is the IANA zone used to derive broadcast schedules
	TimeZone string `json:"timeZone" yaml:"timeZone"`
}

// DemoConfig defines demo sessions
type DemoConfig struct {
	Enabled  bool     `json:"enabled" yaml:"enabled"`
	UserID   string   `json:"userId" yaml:"userId"`
	Services []string `json:"services" yaml:"services"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the sync worker for development
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the audience expected in push OIDC tokens; empty uses the request URL
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME is mapped onto the YAML key path, e.g. PROVIDERS_PRIMEVIDEO_CLIENTID -> providers.primeVideo.clientId
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections so consumers never see nil pointers.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.App == nil {
		cfg.App = &AppConfig{}
	}
	if cfg.App.SettingsURL == "" {
		cfg.App.SettingsURL = defaultSettingsURL
	}

	if cfg.OAuth == nil {
		cfg.OAuth = &OAuthConfig{}
	}
	if cfg.OAuth.StateStore == "" {
		cfg.OAuth.StateStore = StateStoreMemory
	}
	if cfg.OAuth.StateTTL <= 0 {
		cfg.OAuth.StateTTL = defaultStateTTL
	}
	if cfg.OAuth.RequestTimeout <= 0 {
		cfg.OAuth.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Providers.PrimeVideo == nil {
		cfg.Providers.PrimeVideo = &OAuthProviderConfig{}
	}
	cfg.Providers.PrimeVideo.applyPrimeVideoDefaults()

	if cfg.Aggregator == nil {
		cfg.Aggregator = &AggregatorConfig{}
	}
	if cfg.Aggregator.FetchTimeout <= 0 {
		cfg.Aggregator.FetchTimeout = defaultFetchTimeout
	}
	if cfg.Aggregator.TimeZone == "" {
		cfg.Aggregator.TimeZone = defaultTimeZone
	}

	if cfg.Demo == nil {
		cfg.Demo = &DemoConfig{}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
}

func (p *OAuthProviderConfig) applyPrimeVideoDefaults() {
	if p.ClientID == "" {
		p.ClientID = DemoClientID
	}
	if p.ClientSecret == "" {
		p.ClientSecret = "demo-client-secret"
	}
	if p.RedirectURI == "" {
		p.RedirectURI = "http://localhost:8080/auth/callback/prime-video"
	}
	if p.Scope == "" {
		p.Scope = "profile video:access"
	}
	if p.AuthEndpoint == "" {
		p.AuthEndpoint = "https://www.amazon.com/ap/oa"
	}
	if p.TokenEndpoint == "" {
		p.TokenEndpoint = "https://api.amazon.com/auth/o2/token"
	}
	if p.UserInfoEndpoint == "" {
		p.UserInfoEndpoint = "https://api.amazon.com/user/profile"
	}
}

// IsSimulated reports whether the provider should run against the simulated adapter.
func (p *OAuthProviderConfig) IsSimulated() bool {
	return p.Simulate || p.ClientID == DemoClientID
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
