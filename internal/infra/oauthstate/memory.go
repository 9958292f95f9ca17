// Package oauthstate stores pending OAuth authorizations for the connection flow.
package oauthstate

import (
	"context"
	"sync"
	"time"

	"television/internal/domain/entity"
	"television/internal/domain/repository"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = time.Minute

// memoryStore keeps pending authorizations in process. It is only correct for a single
// API instance.
type memoryStore struct {
	mu    sync.Mutex
	items *gocache.Cache
	now   func() time.Time
}

// NewMemoryStore creates an in-process pending state store.
func NewMemoryStore() repository.PendingStateRepository {
	return newMemoryStore(time.Now)
}

func newMemoryStore(now func() time.Time) *memoryStore {
	return &memoryStore{
		items: gocache.New(gocache.NoExpiration, memoryCleanupInterval),
		now:   now,
	}
}

func (s *memoryStore) Save(_ context.Context, pending *entity.PendingAuthorization) error {
	ttl := pending.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	stored := *pending

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items.Set(pendingKey(pending.UserID, pending.Provider), &stored, ttl)

	return nil
}

func (s *memoryStore) Find(_ context.Context, userID uuid.UUID, provider string) (*entity.PendingAuthorization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.lookup(pendingKey(userID, provider))
	if !ok {
		return nil, repository.ErrPendingStateNotFound
	}

	found := *pending

	return &found, nil
}

func (s *memoryStore) Consume(_ context.Context, userID uuid.UUID, provider, state string) (bool, error) {
	key := pendingKey(userID, provider)

	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.lookup(key)
	if !ok || pending.State != state {
		return false, nil
	}

	s.items.Delete(key)

	return true, nil
}

// lookup must be called with mu held.
func (s *memoryStore) lookup(key string) (*entity.PendingAuthorization, bool) {
	v, ok := s.items.Get(key)
	if !ok {
		return nil, false
	}

	pending, _ := v.(*entity.PendingAuthorization)
	if pending == nil || pending.IsExpired(s.now()) {
		s.items.Delete(key)

		return nil, false
	}

	return pending, true
}

func pendingKey(userID uuid.UUID, provider string) string {
	return "oauth:pending:" + userID.String() + ":" + provider
}
