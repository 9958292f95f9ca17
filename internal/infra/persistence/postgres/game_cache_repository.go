package postgres

import (
	"context"

	"television/internal/domain/entity"
	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"
	"television/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const liveGamesInsertBatchSize = 100

// gameCacheRepository implements the repository.GameCacheRepository interface.
type gameCacheRepository struct {
	db *gorm.DB
}

// NewGameCacheRepository is the constructor for gameCacheRepository.
func NewGameCacheRepository(db *gorm.DB) repository.GameCacheRepository {
	return &gameCacheRepository{
		db: db,
	}
}

// ListAll returns every cached event ordered by start time.
func (repo *gameCacheRepository) ListAll(ctx context.Context) ([]*entity.CachedEvent, error) {
	var rows []*model.LiveGameModel

	if err := repo.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list live games")
	}

	events := make([]*entity.CachedEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, toCachedEventDomain(row))
	}

	return events, nil
}

// DeleteAll empties the cache table.
func (repo *gameCacheRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.LiveGameModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear live games")
	}

	return result.RowsAffected, nil
}

// CreateBatch bulk-inserts cached events.
func (repo *gameCacheRepository) CreateBatch(ctx context.Context, events []*entity.CachedEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]*model.LiveGameModel, 0, len(events))
	for _, event := range events {
		rows = append(rows, fromCachedEventDomain(event))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(rows, liveGamesInsertBatchSize).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("cached event is missing required fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert live games")
	}

	for i, row := range rows {
		events[i].ID = row.ID
		events[i].CreatedAt = row.CreatedAt
	}

	return nil
}

func toCachedEventDomain(data *model.LiveGameModel) *entity.CachedEvent {
	if data == nil {
		return nil
	}

	return &entity.CachedEvent{
		ID:        data.ID,
		League:    data.League,
		Match:     data.Match,
		Network:   data.Network,
		App:       data.App,
		Link:      data.Link,
		StartTime: data.StartTime,
		IsLive:    data.IsLive,
		CreatedAt: data.CreatedAt,
	}
}

func fromCachedEventDomain(data *entity.CachedEvent) *model.LiveGameModel {
	if data == nil {
		return nil
	}

	return &model.LiveGameModel{
		ID:        data.ID,
		League:    data.League,
		Match:     data.Match,
		Network:   data.Network,
		App:       data.App,
		Link:      data.Link,
		StartTime: data.StartTime,
		IsLive:    data.IsLive,
		CreatedAt: data.CreatedAt,
	}
}
