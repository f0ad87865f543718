// File: database/repository/meeting/queries.go
package meetingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"meetsync/models"
)

func (r *mongoMeetingRepo) ListByUser(ctx context.Context, userID string) ([]models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"hostId": userID},
			{"participantId": userID},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.meetingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing meetings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *mongoMeetingRepo) ListBookedBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"hostId": userID},
			{"participantId": userID},
		},
		"status":    bson.M{"$ne": models.MeetingStatusCancelled},
		"startTime": bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.meetingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing booked meetings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// HasOverlapping derives each meeting's end as startTime + duration minutes
// inside the filter; adjacency (slotStart == bookedEnd) is not a conflict.
func (r *mongoMeetingRepo) HasOverlapping(ctx context.Context, userIDs []string, start, end time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"hostId": bson.M{"$in": userIDs}},
			{"participantId": bson.M{"$in": userIDs}},
		},
		"status": bson.M{"$ne": models.MeetingStatusCancelled},
		"$expr": bson.M{"$and": bson.A{
			bson.M{"$lt": bson.A{"$startTime", end}},
			bson.M{"$gt": bson.A{
				bson.M{"$add": bson.A{"$startTime", bson.M{"$multiply": bson.A{"$duration", 60000}}}},
				start,
			}},
		}},
	}

	err := r.meetingColl.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("overlap check failed: %w", err)
	}
	return true, nil
}
