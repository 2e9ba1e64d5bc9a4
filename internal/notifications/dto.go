package notifications

import (
	"time"

	"github.com/google/uuid"
	"github.com/quintech/quintech-backend/pkg/db/models"
	"github.com/quintech/quintech-backend/pkg/enums"
)

// NotificationDTO is the transport shape of a single notification.
type NotificationDTO struct {
	Recipient      string                 `json:"recipient"`
	Sender         string                 `json:"sender"`
	CreatedAt      time.Time              `json:"createdAt"`
	TaskID         uuid.UUID              `json:"taskId"`
	Type           enums.NotificationType `json:"type"`
	Read           bool                   `json:"read"`
	NotificationID uuid.UUID              `json:"notificationId"`
}

func FromModel(n *models.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}

	return &NotificationDTO{
		Recipient:      n.Recipient,
		Sender:         n.Sender,
		CreatedAt:      n.CreatedAt,
		TaskID:         n.TaskID,
		Type:           n.Type,
		Read:           n.Read,
		NotificationID: n.ID,
	}
}

func FromModels(items []models.Notification) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
