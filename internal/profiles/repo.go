package profiles

import (
	"context"

	"github.com/google/uuid"
	"github.com/quintech/quintech-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes user profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a profiles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new profile and returns the persisted model.
func (r *Repository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByHandle retrieves the profile owning the given handle.
func (r *Repository) FindByHandle(ctx context.Context, handle string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "handle = ?", handle).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByAccountID retrieves the profile linked to the given account.
func (r *Repository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "account_id = ?", accountID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateImageURL overwrites the profile's image URL.
func (r *Repository) UpdateImageURL(ctx context.Context, handle, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("handle = ?", handle).
		UpdateColumn("image_url", imageURL).Error
}

// UpdateProgress writes the profile's points and level in a single update.
func (r *Repository) UpdateProgress(ctx context.Context, handle string, points, level int) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("handle = ?", handle).
		UpdateColumns(map[string]any{
			"points": points,
			"level":  level,
		}).Error
}
