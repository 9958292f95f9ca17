package postgres

import (
	"context"

	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"
	"television/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userServiceRepository implements the repository.UserServiceRepository interface.
type userServiceRepository struct {
	db *gorm.DB
}

// NewUserServiceRepository is the constructor for userServiceRepository.
func NewUserServiceRepository(db *gorm.DB) repository.UserServiceRepository {
	return &userServiceRepository{
		db: db,
	}
}

// ListByUser retrieves all selection rows of a user.
func (repo *userServiceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserServiceSelection, error) {
	var rows []*model.UserServiceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("service_name ASC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user services")
	}

	selections := make([]*entity.UserServiceSelection, 0, len(rows))
	for _, row := range rows {
		selections = append(selections, toUserServiceDomain(row))
	}

	return selections, nil
}

// SetConnected upserts the connected flag of a (user, service) pair.
func (repo *userServiceRepository) SetConnected(ctx context.Context, userID uuid.UUID, serviceName string, connected bool) error {
	row := &model.UserServiceModel{
		UserID:      userID,
		ServiceName: serviceName,
		Connected:   connected,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "service_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"connected", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set user service connection")
	}

	return nil
}

func toUserServiceDomain(data *model.UserServiceModel) *entity.UserServiceSelection {
	if data == nil {
		return nil
	}

	return &entity.UserServiceSelection{
		UserID:      data.UserID,
		ServiceName: data.ServiceName,
		Connected:   data.Connected,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
