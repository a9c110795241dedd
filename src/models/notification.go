package models

type NotificationType string

const (
	NotificationMovement NotificationType = "movement"
	NotificationAudit    NotificationType = "audit"
	NotificationAlert    NotificationType = "alert"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationMovement, NotificationAudit, NotificationAlert:
		return true
	default:
		return false
	}
}

type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	Type    NotificationType `json:"type"`
	Read    bool             `json:"read"`
}
