package schemas

import "inventario/src/models"

type MovementResponse struct {
	Movement models.Movement `json:"movement"`
	Warning  string          `json:"warning,omitempty"`
}

type NotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

type ScanStartResponse struct {
	Result string `json:"result"`
}
