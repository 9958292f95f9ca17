package postgres

import (
	"context"

	domainerrors "television/internal/domain/errors"
	"television/internal/domain/repository"
	"television/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewProviderTokenRepository creates a provider token repository bound to the transaction.
func (f *gormRepositoryFactory) NewProviderTokenRepository() repository.ProviderTokenRepository {
	return NewProviderTokenRepository(f.tx)
}

// NewUserServiceRepository creates a user service repository bound to the transaction.
func (f *gormRepositoryFactory) NewUserServiceRepository() repository.UserServiceRepository {
	return NewUserServiceRepository(f.tx)
}

// NewGameCacheRepository creates a live games cache repository bound to the transaction.
func (f *gormRepositoryFactory) NewGameCacheRepository() repository.GameCacheRepository {
	return NewGameCacheRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction, committing only when fn returns nil.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage(tx.Error.Error())
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	return nil
}
