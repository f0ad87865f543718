// File: database/repository/meeting/interface.go
package meetingRepo

import (
	"context"
	"time"

	"meetsync/models"
	"meetsync/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MeetingRepository interface {
	// Create inserts the meeting and its invitation notification in one
	// transaction.
	Create(ctx context.Context, meeting *models.Meeting, notif *models.Notification) error
	// GetByID returns nil (no error) when no meeting matches.
	GetByID(ctx context.Context, id string) (*models.Meeting, error)
	ListByUser(ctx context.Context, userID string) ([]models.Meeting, error)
	// ListBookedBetween returns non-cancelled meetings where the user is
	// host or participant and startTime falls within [from, to].
	ListBookedBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Meeting, error)
	// HasOverlapping reports whether any non-cancelled meeting involving
	// one of the users overlaps [start, end) under strict inequality.
	HasOverlapping(ctx context.Context, userIDs []string, start, end time.Time) (bool, error)
	// Update replaces the meeting document and inserts the given
	// notifications in one transaction.
	Update(ctx context.Context, meeting *models.Meeting, notifs []models.Notification) error
}

type mongoMeetingRepo struct {
	meetingColl      *mongo.Collection
	notificationColl *mongo.Collection
}

// NewMongoMeetingRepo constructs a new MongoDB MeetingRepository.
func NewMongoMeetingRepo(client *mongo.Client, dbName string) MeetingRepository {
	db := client.Database(dbName)
	repo := &mongoMeetingRepo{
		meetingColl:      db.Collection("meetings"),
		notificationColl: db.Collection("notifications"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("meeting index creation failed", zap.Error(err))
	}
	return repo
}
