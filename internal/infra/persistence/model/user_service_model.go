package model

import (
	"time"

	"github.com/google/uuid"
)

// UserServiceModel mirrors the 'user_services' table.
type UserServiceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_services_user_service,priority:1"`
	ServiceName string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_services_user_service,priority:2"`
	Connected   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserServiceModel) TableName() string {
	return "user_services"
}
