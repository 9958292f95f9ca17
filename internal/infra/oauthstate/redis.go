package oauthstate

import (
	"context"
	"time"

	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	fieldState     = "state"
	fieldCreatedAt = "created_at"
	fieldExpiresAt = "expires_at"
)

// consumeScript deletes the hash only if its state field still matches.
var consumeScript = redis.NewScript(`
if redis.call("HGET", KEYS[1], "state") == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisStore shares pending authorizations between API instances. Expiry is enforced by
// the key TTL.
type redisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a pending state store backed by Redis.
func NewRedisStore(client redis.UniversalClient) repository.PendingStateRepository {
	return &redisStore{client: client}
}

func (s *redisStore) Save(ctx context.Context, pending *entity.PendingAuthorization) error {
	key := pendingKey(pending.UserID, pending.Provider)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			fieldState, pending.State,
			fieldCreatedAt, pending.CreatedAt.UTC().Format(time.RFC3339Nano),
			fieldExpiresAt, pending.ExpiresAt.UTC().Format(time.RFC3339Nano),
		)
		pipe.PExpireAt(ctx, key, pending.ExpiresAt)

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save pending authorization to redis")
	}

	return nil
}

func (s *redisStore) Find(ctx context.Context, userID uuid.UUID, provider string) (*entity.PendingAuthorization, error) {
	fields, err := s.client.HGetAll(ctx, pendingKey(userID, provider)).Result()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read pending authorization from redis")
	}

	state := fields[fieldState]
	if state == "" {
		return nil, repository.ErrPendingStateNotFound
	}

	// Malformed timestamps decode to the zero time; the TTL still bounds the record.
	createdAt, _ := time.Parse(time.RFC3339Nano, fields[fieldCreatedAt])
	expiresAt, _ := time.Parse(time.RFC3339Nano, fields[fieldExpiresAt])

	return &entity.PendingAuthorization{
		State:     state,
		UserID:    userID,
		Provider:  provider,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *redisStore) Consume(ctx context.Context, userID uuid.UUID, provider, state string) (bool, error) {
	deleted, err := consumeScript.Run(ctx, s.client, []string{pendingKey(userID, provider)}, state).Int64()
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to consume pending authorization in redis")
	}

	return deleted == 1, nil
}
