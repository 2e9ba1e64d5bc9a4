package profiles

import (
	"time"

	"github.com/google/uuid"
	"github.com/quintech/quintech-backend/pkg/db/models"
)

// ProfileDTO is the transport shape that omits account credentials.
type ProfileDTO struct {
	Handle    string    `json:"handle"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	ImageURL  string    `json:"imageUrl"`
	Points    int       `json:"points"`
	Level     int       `json:"level"`
	Admin     bool      `json:"admin"`
	UserID    uuid.UUID `json:"userId"`
}

func FromModel(u *models.User) *ProfileDTO {
	if u == nil {
		return nil
	}

	return &ProfileDTO{
		Handle:    u.Handle,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		ImageURL:  u.ImageURL,
		Points:    u.Points,
		Level:     u.Level,
		Admin:     u.Admin,
		UserID:    u.AccountID,
	}
}
