package service

import (
	"context"
)

// Sync reasons carried on SyncEvent
const (
	SyncReasonProviderConnected = "provider_connected"
	SyncReasonScheduled         = "scheduled"
)

// SyncEvent asks the sync worker to refresh the live games cache
type SyncEvent struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	Reason    string   `json:"reason"`
	Services  []string `json:"services,omitempty"` // Empty means every known service
	UserID    string   `json:"user_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSyncEvent publishes a sync request for async processing
	PublishSyncEvent(ctx context.Context, event *SyncEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
