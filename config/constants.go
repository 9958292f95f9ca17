package config

const (
	// EnvDevelop is the env.env value used for local development
	EnvDevelop = "develop"

	// DemoClientID is the placeholder client id that implies the simulated OAuth adapter
	DemoClientID = "demo-client-id"
)

// Pending OAuth state backends
const (
	StateStoreMemory   = "memory"
	StateStoreRedis    = "redis"
	StateStorePostgres = "postgres"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
