package notifications

import (
	"context"

	"github.com/quintech/quintech-backend/pkg/db/models"
	"gorm.io/gorm"
)

// RecentLimit caps how many notifications a profile view returns.
const RecentLimit = 10

// Repository exposes notification persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a notifications repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new notification.
func (r *Repository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// ListForRecipient returns the newest notifications addressed to the handle,
// newest first, capped at RecentLimit.
func (r *Repository) ListForRecipient(ctx context.Context, handle string) ([]models.Notification, error) {
	var items []models.Notification
	err := r.db.WithContext(ctx).
		Where("recipient = ?", handle).
		Order("created_at DESC").
		Limit(RecentLimit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
