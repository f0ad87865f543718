// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"

	"meetsync/models"
	"meetsync/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	// ListByUser returns the user's notifications newest first, each joined
	// with its referenced meeting's summary when that meeting resolves.
	ListByUser(ctx context.Context, userID string) ([]models.UserNotification, error)
	// MarkRead flips the read flag on one notification owned by userID and
	// returns the updated document, or nil when no owned notification matches.
	MarkRead(ctx context.Context, id, userID string) (*models.Notification, error)
	// MarkAllRead marks every unread notification for the user and returns
	// how many were affected.
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

type mongoNotificationRepo struct {
	notificationColl *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo(client *mongo.Client, dbName string) NotificationRepository {
	db := client.Database(dbName)
	repo := &mongoNotificationRepo{
		notificationColl: db.Collection("notifications"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("notification index creation failed", zap.Error(err))
	}
	return repo
}
