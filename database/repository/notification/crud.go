// File: database/repository/notification/crud.go
package notificationRepo

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

func (r *mongoNotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.UserNotification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "meetings",
			"localField":   "relatedId",
			"foreignField": "id",
			"as":           "meeting",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$meeting",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := r.notificationColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating notifications for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.UserNotification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *mongoNotificationRepo) MarkRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Scoping the filter by userId keeps one user from touching another
	// user's notifications.
	filter := bson.M{"id": id, "userId": userID}
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var notification models.Notification
	err := r.notificationColl.FindOneAndUpdate(ctx, filter, update, opts).Decode(&notification)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification %s as read: %w", id, err)
	}
	return &notification, nil
}

func (r *mongoNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "read": false}
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now().UTC()}}
	res, err := r.notificationColl.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read for user %s: %w", userID, err)
	}
	return res.ModifiedCount, nil
}
