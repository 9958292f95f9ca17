package usecase

import (
	"context"

	"television/internal/domain/entity"
)

// LibraryUsecase reads a user's provider library with their stored token
type LibraryUsecase interface {
	GetLibrary(ctx context.Context, auth *entity.AuthContext, provider string) ([]*entity.LibraryItem, error)
}
