// File: services/availability/service.go
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	meetingRepo "meetsync/database/repository/meeting"
	"meetsync/models"
	"meetsync/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service computes open slots for a user's day.
type Service interface {
	GetAvailability(ctx context.Context, userID, date, timezone string, durationMinutes int) (*models.AvailabilityResult, error)
	// InvalidateUser drops every cached availability response for the user.
	// Called after each meeting mutation.
	InvalidateUser(ctx context.Context, userID string)
}

// DefaultAvailabilityService reads booked meetings through the meeting
// repository and caches full responses in Redis for a short TTL. The cache
// is best effort: a cache failure never fails the request.
type DefaultAvailabilityService struct {
	MeetingRepo meetingRepo.MeetingRepository
	Cache       *redis.Client
	CacheTTL    time.Duration
}

func cacheKey(userID, date, timezone string, durationMinutes int) string {
	return fmt.Sprintf("avail:%s:%s:%s:%d", userID, date, timezone, durationMinutes)
}

func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, userID, date, timezone string, durationMinutes int) (*models.AvailabilityResult, error) {
	logger := utils.GetLogger()

	if userID == "" {
		return nil, utils.ValidationError{Field: "userId", Message: "is required"}
	}
	if date == "" {
		return nil, utils.ValidationError{Field: "date", Message: "is required"}
	}
	if timezone == "" {
		return nil, utils.ValidationError{Field: "timezone", Message: "is required"}
	}
	if durationMinutes == 0 {
		durationMinutes = DefaultSlotDuration
	}

	key := cacheKey(userID, date, timezone, durationMinutes)
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached models.AvailabilityResult
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	from, to, err := DayWindow(date, timezone)
	if err != nil {
		return nil, err
	}

	meetings, err := s.MeetingRepo.ListBookedBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked meetings: %w", err)
	}

	booked := make([]Interval, 0, len(meetings))
	for _, m := range meetings {
		booked = append(booked, Interval{Start: m.StartTime, End: m.EndTime()})
	}

	slots, err := ComputeSlots(date, timezone, durationMinutes, booked)
	if err != nil {
		return nil, err
	}

	result := &models.AvailabilityResult{
		AvailableSlots: slots,
		Timezone:       timezone,
		Date:           date,
	}

	if s.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
				logger.Debug("availability cache set failed", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return result, nil
}

func (s *DefaultAvailabilityService) InvalidateUser(ctx context.Context, userID string) {
	if s.Cache == nil || userID == "" {
		return
	}
	logger := utils.GetLogger()
	keys, err := s.Cache.Keys(ctx, "avail:"+userID+":*").Result()
	if err != nil {
		logger.Warn("availability cache scan failed", zap.String("userId", userID), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("availability cache invalidation failed", zap.String("userId", userID), zap.Error(err))
	}
}
