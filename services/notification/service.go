// File: services/notification/service.go
package notification

import (
	"context"

	"meetsync/models"
	"meetsync/utils"
)

func (s *DefaultNotificationService) ListNotifications(ctx context.Context, userID string) ([]models.UserNotification, error) {
	if userID == "" {
		return nil, utils.ValidationError{Field: "userId", Message: "is required"}
	}
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultNotificationService) MarkAsRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	if userID == "" {
		return nil, utils.ValidationError{Field: "userId", Message: "is required"}
	}
	n, err := s.Repo.MarkRead(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		// Absent or owned by someone else; the caller cannot tell which.
		return nil, utils.NotFoundError{Resource: "notification", ID: id}
	}
	return n, nil
}

func (s *DefaultNotificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, utils.ValidationError{Field: "userId", Message: "is required"}
	}
	return s.Repo.MarkAllRead(ctx, userID)
}
