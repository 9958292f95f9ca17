package postgres

import (
	"context"
	"time"

	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"
	"television/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pendingStateRepository stores pending OAuth authorizations in 'oauth_pending_states'.
type pendingStateRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPendingStateRepository is the constructor for pendingStateRepository.
func NewPendingStateRepository(db *gorm.DB) repository.PendingStateRepository {
	return &pendingStateRepository{
		db:  db,
		now: time.Now,
	}
}

// Save replaces any pending authorization for the same (user, provider).
func (repo *pendingStateRepository) Save(ctx context.Context, pending *entity.PendingAuthorization) error {
	row := &model.PendingStateModel{
		UserID:    pending.UserID,
		Provider:  pending.Provider,
		State:     pending.State,
		CreatedAt: pending.CreatedAt,
		ExpiresAt: pending.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "created_at", "expires_at"}),
		}).
		Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save pending authorization")
	}

	return nil
}

// Find returns the unexpired pending authorization of a (user, provider).
func (repo *pendingStateRepository) Find(ctx context.Context, userID uuid.UUID, provider string) (*entity.PendingAuthorization, error) {
	var row model.PendingStateModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ? AND expires_at > ?", userID, provider, repo.now()).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPendingStateNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pending authorization")
	}

	return &entity.PendingAuthorization{
		State:     row.State,
		UserID:    row.UserID,
		Provider:  row.Provider,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

// Consume deletes the row only when it still holds state and is unexpired. A single DELETE
// statement gives at-most-once consumption across concurrent callbacks.
func (repo *pendingStateRepository) Consume(ctx context.Context, userID uuid.UUID, provider, state string) (bool, error) {
	var removed []model.PendingStateModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("user_id = ? AND provider = ? AND state = ? AND expires_at > ?", userID, provider, state, repo.now()).
		Delete(&removed)

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume pending authorization")
	}

	return len(removed) == 1, nil
}
