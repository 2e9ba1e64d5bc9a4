package enums

// NotificationType tags the interaction that produced a notification.
type NotificationType string

const (
	NotificationTypeComment NotificationType = "comment"
	NotificationTypeLike    NotificationType = "like"
)

func (n NotificationType) IsValid() bool {
	switch n {
	case NotificationTypeComment, NotificationTypeLike:
		return true
	}
	return false
}
