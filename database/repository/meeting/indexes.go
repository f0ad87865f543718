// File: database/repository/meeting/indexes.go
package meetingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the meetings collection.
func (r *mongoMeetingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on meeting ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound indexes for the day-window queries per participant role
		{
			Keys:    bson.D{{Key: "hostId", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetName("host_start_idx"),
		},
		{
			Keys:    bson.D{{Key: "participantId", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetName("participant_start_idx"),
		},
	}

	_, err := r.meetingColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create meeting indexes: %w", err)
	}
	return nil
}
