// Package model holds the GORM row types, one per table.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProviderTokenModel mirrors the 'provider_tokens' table.
type ProviderTokenModel struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_provider_tokens_user_provider,priority:1"`
	ProviderName     string            `gorm:"type:varchar(64);not null;uniqueIndex:idx_provider_tokens_user_provider,priority:2"`
	AccessToken      string            `gorm:"type:text;not null"`
	RefreshToken     string            `gorm:"type:text"`
	ExpiresAt        time.Time         `gorm:"not null"`
	ProviderUserID   string            `gorm:"type:varchar(255)"`
	ProviderEmail    string            `gorm:"type:varchar(255)"`
	ProviderMetadata datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderTokenModel) TableName() string {
	return "provider_tokens"
}
