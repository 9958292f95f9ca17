package usecase

import (
	"context"

	"television/internal/domain/entity"
)

// ServiceSelectionUsecase backs the onboarding and settings service pickers
type ServiceSelectionUsecase interface {
	// ListServices returns the provider catalog annotated with the caller's connection state
	ListServices(ctx context.Context, auth *entity.AuthContext) ([]*entity.ServiceStatus, error)

	// SetConnected toggles the flag of a provider that is not linked through OAuth
	SetConnected(ctx context.Context, auth *entity.AuthContext, provider string, connected bool) (*entity.ServiceStatus, error)
}
