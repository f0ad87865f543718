// File: database/repository/meeting/crud.go
package meetingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"meetsync/models"
)

func (r *mongoMeetingRepo) Create(ctx context.Context, meeting *models.Meeting, notif *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := r.meetingColl.InsertOne(sc, meeting); err != nil {
			return fmt.Errorf("insert meeting failed: %w", err)
		}
		if _, err := r.notificationColl.InsertOne(sc, notif); err != nil {
			return fmt.Errorf("insert notification failed: %w", err)
		}
		return nil
	})
}

func (r *mongoMeetingRepo) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var meeting models.Meeting
	err := r.meetingColl.FindOne(ctx, bson.M{"id": id}).Decode(&meeting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (r *mongoMeetingRepo) Update(ctx context.Context, meeting *models.Meeting, notifs []models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := r.meetingColl.ReplaceOne(sc, bson.M{"id": meeting.ID}, meeting)
		if err != nil {
			return fmt.Errorf("replace meeting failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
		if len(notifs) == 0 {
			return nil
		}
		docs := make([]interface{}, len(notifs))
		for i, n := range notifs {
			docs[i] = n
		}
		if _, err := r.notificationColl.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert notifications failed: %w", err)
		}
		return nil
	})
}
