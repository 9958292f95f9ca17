package main

import (
	"context"
	"log/slog"
	"os"

	"television/config"
	"television/internal/delivery"
	"television/internal/delivery/api"
	"television/internal/delivery/api/middleware"
	"television/internal/delivery/api/router/handler"
	"television/internal/infra/auth"
	"television/internal/infra/content"
	logs "television/internal/infra/log"
	"television/internal/infra/metrics"
	"television/internal/infra/oauth"
	"television/internal/infra/oauthstate"
	"television/internal/infra/persistence/postgres"
	"television/internal/infra/pubsub"
	"television/internal/infra/qrcode"
	"television/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProviderTokenRepository,
			postgres.NewUserServiceRepository,
			postgres.NewGameCacheRepository,
			postgres.NewTransactionManager,
		),
		oauthstate.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSessionValidator,
		),
		oauth.Module,
		content.Module,
		pubsub.Module,
		qrcode.Module,
	)
}

func injectUsecase() fx.Option {
	return impl.Module
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOAuthHandler,
			handler.NewSportsHandler,
			handler.NewServicesHandler,
			handler.NewQRCodeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
