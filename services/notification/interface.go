// File: services/notification/interface.go
package notification

import (
	"context"

	notificationRepo "meetsync/database/repository/notification"
	"meetsync/models"
)

// NotificationService exposes the read side of notifications. Creation
// happens exclusively inside meeting transactions; only the read flag is
// ever mutated here.
type NotificationService interface {
	ListNotifications(ctx context.Context, userID string) ([]models.UserNotification, error)
	MarkAsRead(ctx context.Context, id, userID string) (*models.Notification, error)
	MarkAllAsRead(ctx context.Context, userID string) (int64, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}
