package controllers

import (
	"context"

	"inventario/src/schemas"
	"inventario/src/utils"
)

type INotificationsController interface {
	ListNotifications(ctx context.Context) (*schemas.NotificationsResponse, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

func (c *Controller) ListNotifications(ctx context.Context) (*schemas.NotificationsResponse, error) {
	return &schemas.NotificationsResponse{
		Notifications: c.Store.Notifications(),
		Unread:        c.Store.UnreadCount(),
	}, nil
}

func (c *Controller) MarkNotificationRead(ctx context.Context, id string) error {
	if !c.Store.MarkNotificationRead(id) {
		return utils.NotFound("notification not found")
	}
	return nil
}
