package service

import (
	"context"
	"time"

	"television/internal/domain/entity"
)

// ContentProvider fetches the live and upcoming sports events one streaming service carries.
type ContentProvider interface {
	// ID returns the streaming service id the events are tagged with.
	ID() string

	// FetchEvents returns the service's events relative to now.
	FetchEvents(ctx context.Context, now time.Time) ([]*entity.SportsEvent, error)
}

// LibraryClient reads a user's provider library with their access token.
type LibraryClient interface {
	// Provider returns the provider id the client talks to.
	Provider() string

	// FetchLibrary returns live, upcoming and replay items.
	FetchLibrary(ctx context.Context, accessToken string, now time.Time) ([]*entity.LibraryItem, error)
}
