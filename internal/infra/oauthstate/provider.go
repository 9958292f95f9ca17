package oauthstate

import (
	"context"
	"log/slog"

	"television/config"
	"television/internal/domain/lifecycle"
	"television/internal/domain/repository"
	"television/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// StoreParams holds dependencies for the pending state store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// NewPendingStateStore picks the backend named by oauth.stateStore
func NewPendingStateStore(params StoreParams) (repository.PendingStateRepository, error) {
	backend := params.Config.OAuth.StateStore
	logger := params.Logger.With(slog.String("state_store", backend))

	switch backend {
	case config.StateStoreMemory:
		logger.Info("Using in-process OAuth state store")

		return NewMemoryStore(), nil

	case config.StateStoreRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis.addr is required for the redis state store")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrapf(err, "failed to connect to Redis at %s", params.Config.Redis.Addr)
				}
				logger.Info("Redis OAuth state store connected", slog.String("addr", params.Config.Redis.Addr))

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisStore(client), nil

	case config.StateStorePostgres:
		if params.DB == nil {
			return nil, errors.New("postgres connection is required for the postgres state store")
		}
		logger.Info("Using PostgreSQL OAuth state store")

		return postgres.NewPendingStateRepository(params.DB), nil

	default:
		return nil, errors.Errorf("unknown oauth state store: %s", backend)
	}
}

// Module provides the pending state store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPendingStateStore),
)
