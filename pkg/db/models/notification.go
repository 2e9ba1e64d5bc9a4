package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/quintech/quintech-backend/pkg/enums"
)

// Notification is written by the task interaction flows and only listed here.
type Notification struct {
	ID        uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Recipient string                 `gorm:"type:text;not null;index"`
	Sender    string                 `gorm:"type:text;not null"`
	TaskID    uuid.UUID              `gorm:"column:task_id;type:uuid;not null"`
	Type      enums.NotificationType `gorm:"type:text;not null"`
	Read      bool                   `gorm:"column:read;not null;default:false"`
	CreatedAt time.Time              `gorm:"type:timestamptz;default:now()"`
}
