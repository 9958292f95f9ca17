// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"
	"television/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// providerTokenRepository implements the repository.ProviderTokenRepository interface.
type providerTokenRepository struct {
	db *gorm.DB
}

// NewProviderTokenRepository is the constructor for providerTokenRepository.
func NewProviderTokenRepository(db *gorm.DB) repository.ProviderTokenRepository {
	return &providerTokenRepository{
		db: db,
	}
}

// FindToken retrieves the token of a (user, provider) pair.
func (repo *providerTokenRepository) FindToken(ctx context.Context, userID uuid.UUID, provider string) (*entity.ProviderToken, error) {
	var tokenM model.ProviderTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider_name = ?", userID, provider).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find provider token")
	}

	return toProviderTokenDomain(&tokenM), nil
}

// UpsertToken inserts the token or overwrites the existing row for the same (user, provider).
func (repo *providerTokenRepository) UpsertToken(ctx context.Context, token *entity.ProviderToken) error {
	tokenM := fromProviderTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider_name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"access_token",
				"refresh_token",
				"expires_at",
				"provider_user_id",
				"provider_email",
				"provider_metadata",
				"updated_at",
			}),
		}).
		Create(tokenM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert provider token")
	}

	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// DeleteToken removes the token of a (user, provider) pair.
func (repo *providerTokenRepository) DeleteToken(ctx context.Context, userID uuid.UUID, provider string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider_name = ?", userID, provider).
		Delete(&model.ProviderTokenModel{})

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete provider token")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toProviderTokenDomain(data *model.ProviderTokenModel) *entity.ProviderToken {
	if data == nil {
		return nil
	}

	var metadata map[string]any
	if data.ProviderMetadata != nil {
		metadata = map[string]any(data.ProviderMetadata)
	}

	return &entity.ProviderToken{
		UserID:           data.UserID,
		Provider:         data.ProviderName,
		AccessToken:      data.AccessToken,
		RefreshToken:     data.RefreshToken,
		ExpiresAt:        data.ExpiresAt,
		ProviderUserID:   data.ProviderUserID,
		ProviderEmail:    data.ProviderEmail,
		ProviderMetadata: metadata,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromProviderTokenDomain(data *entity.ProviderToken) *model.ProviderTokenModel {
	if data == nil {
		return nil
	}

	var metadata datatypes.JSONMap
	if data.ProviderMetadata != nil {
		metadata = datatypes.JSONMap(data.ProviderMetadata)
	}

	return &model.ProviderTokenModel{
		UserID:           data.UserID,
		ProviderName:     data.Provider,
		AccessToken:      data.AccessToken,
		RefreshToken:     data.RefreshToken,
		ExpiresAt:        data.ExpiresAt,
		ProviderUserID:   data.ProviderUserID,
		ProviderEmail:    data.ProviderEmail,
		ProviderMetadata: metadata,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
