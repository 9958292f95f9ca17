package model

import (
	"time"

	"github.com/google/uuid"
)

// LiveGameModel mirrors the 'live_games' cache table.
type LiveGameModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	League    string    `gorm:"type:varchar(100);not null"`
	Match     string    `gorm:"type:varchar(255);not null"`
	Network   string    `gorm:"type:varchar(100)"`
	App       string    `gorm:"type:varchar(64);not null;index"`
	Link      string    `gorm:"type:text;not null"`
	StartTime time.Time `gorm:"not null;index"`
	IsLive    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LiveGameModel) TableName() string {
	return "live_games"
}
