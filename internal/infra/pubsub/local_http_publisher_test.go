package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"television/config"
	"television/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishSyncEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := &service.SyncEvent{
		RequestID: "req-1",
		Reason:    service.SyncReasonProviderConnected,
		Services:  []string{"prime-video"},
	}
	require.NoError(t, publisher.PublishSyncEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, LocalSubscription, received.Subscription)
	assert.Equal(t, "prime-video", received.Message.Attributes["services"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.SyncEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishSyncEvent(context.Background(), &service.SyncEvent{Reason: service.SyncReasonScheduled})
	assert.Error(t, err)
}

func TestNewEventPublisher_NotConfigured(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.NoError(t, publisher.PublishSyncEvent(context.Background(), &service.SyncEvent{Reason: service.SyncReasonScheduled}))
	assert.NoError(t, publisher.Close())
}
