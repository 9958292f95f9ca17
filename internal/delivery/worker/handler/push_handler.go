// Package handler contains the Pub/Sub push handler of the sync worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"television/config"
	deliverycontext "television/internal/delivery/context"
	"television/internal/domain/service"
	"television/internal/errors"
	"television/internal/infra/pubsub"
	"television/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed OIDC token for the audience
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler runs a cache sync for each pushed SyncEvent
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  tokenValidator
	logger         *slog.Logger
	sportsUC       usecase.SportsUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	SportsUC usecase.SportsUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry an OIDC token; local development posts plain envelopes
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == config.PubSubProviderGoogle &&
		params.Config.Env.Env != config.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		sportsUC:       params.SportsUC,
	}
}

// HandlePush decodes the envelope and syncs the live games cache. A failed sync answers 503 so
// Pub/Sub redelivers the message; malformed messages answer 400.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("invalid Pub/Sub push token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.SyncEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("failed to parse sync event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	ctx = deliverycontext.Bind(ctx, requestID, h.logger)
	reqLogger := deliverycontext.Logger(ctx, h.logger)

	reqLogger.Info("processing sync event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("reason", event.Reason),
		slog.Any("services", event.Services),
	)

	result, err := h.sportsUC.SyncLiveGames(ctx, event.Services)
	if err != nil {
		reqLogger.Error("failed to sync live games", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("sync event processed",
		slog.Int("games", result.GamesCount),
		slog.Any("services", result.Services),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound request
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.SyncEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	const bearerPrefix = "Bearer "

	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing bearer token")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
