package model

import (
	"time"

	"github.com/google/uuid"
)

// PendingStateModel mirrors the 'oauth_pending_states' table.
type PendingStateModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Provider  string    `gorm:"type:varchar(64);primaryKey"`
	State     string    `gorm:"type:varchar(128);not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PendingStateModel) TableName() string {
	return "oauth_pending_states"
}
