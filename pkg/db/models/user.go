package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile document, keyed by the user-chosen handle. Points only
// grow through the progression updater; level is always derived from points.
type User struct {
	Handle    string    `gorm:"type:text;primaryKey"`
	Email     string    `gorm:"type:text;not null;uniqueIndex"`
	Name      string    `gorm:"type:text;not null"`
	ImageURL  string    `gorm:"column:image_url;not null"`
	Points    int       `gorm:"column:points;not null;default:0"`
	Level     int       `gorm:"column:level;not null;default:1"`
	Admin     bool      `gorm:"column:admin;not null;default:false"`
	AccountID uuid.UUID `gorm:"column:account_id;type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
