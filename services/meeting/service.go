// File: services/meeting/service.go
package meeting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"meetsync/models"
	"meetsync/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *DefaultMeetingService) CreateMeeting(ctx context.Context, input models.CreateMeetingInput) (*models.Meeting, error) {
	if input.HostID == "" {
		return nil, utils.ValidationError{Field: "hostId", Message: "is required"}
	}
	if input.ParticipantID == "" {
		return nil, utils.ValidationError{Field: "participantId", Message: "is required"}
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, utils.ValidationError{Field: "title", Message: "is required"}
	}
	if input.StartTime == "" {
		return nil, utils.ValidationError{Field: "startTime", Message: "is required"}
	}
	start, err := parseStartTime(input.StartTime)
	if err != nil {
		return nil, utils.ValidationError{Field: "startTime", Message: "could not be parsed: " + input.StartTime}
	}
	if input.Duration <= 0 {
		return nil, utils.ValidationError{Field: "duration", Message: "must be a positive number of minutes"}
	}
	timezone := input.Timezone
	if timezone == "" {
		timezone = "UTC"
	} else if _, err := time.LoadLocation(timezone); err != nil {
		return nil, utils.ValidationError{Field: "timezone", Message: "unknown IANA timezone: " + timezone}
	}

	end := start.Add(time.Duration(input.Duration) * time.Minute)
	// Best-effort pre-write check; a concurrent booking can still slip in
	// between this read and the insert.
	conflict, err := s.Repo.HasOverlapping(ctx, []string{input.HostID, input.ParticipantID}, start, end)
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if conflict {
		return nil, utils.ConflictError{Message: "an overlapping booking exists for the host or participant in the requested window"}
	}

	now := time.Now().UTC()
	m := &models.Meeting{
		ID:            uuid.New().String(),
		HostID:        input.HostID,
		ParticipantID: input.ParticipantID,
		StartTime:     start.UTC(),
		Duration:      input.Duration,
		Title:         input.Title,
		Description:   input.Description,
		Status:        models.MeetingStatusScheduled,
		Timezone:      timezone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	notif := newNotification(
		m.ParticipantID,
		models.NotificationTypeInvitation,
		"New Meeting Invitation",
		fmt.Sprintf("You have been invited to a meeting: %s", m.Title),
		m.ID,
	)

	if err := s.Repo.Create(ctx, m, &notif); err != nil {
		return nil, err
	}
	s.invalidateAvailability(ctx, m.HostID, m.ParticipantID)
	return m, nil
}

func (s *DefaultMeetingService) ListMeetings(ctx context.Context, userID string) ([]models.Meeting, error) {
	if userID == "" {
		return nil, utils.ValidationError{Field: "userId", Message: "is required"}
	}
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultMeetingService) GetMeeting(ctx context.Context, id string) (*models.Meeting, error) {
	m, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, utils.NotFoundError{Resource: "meeting", ID: id}
	}
	return m, nil
}

func (s *DefaultMeetingService) UpdateMeeting(ctx context.Context, id string, input models.UpdateMeetingInput) (*models.Meeting, error) {
	m, err := s.GetMeeting(ctx, id)
	if err != nil {
		return nil, err
	}

	timeChanged := false
	if input.StartTime != nil {
		start, err := parseStartTime(*input.StartTime)
		if err != nil {
			return nil, utils.ValidationError{Field: "startTime", Message: "could not be parsed: " + *input.StartTime}
		}
		m.StartTime = start.UTC()
		timeChanged = true
	}
	if input.Duration != nil {
		if *input.Duration <= 0 {
			return nil, utils.ValidationError{Field: "duration", Message: "must be a positive number of minutes"}
		}
		m.Duration = *input.Duration
		timeChanged = true
	}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, utils.ValidationError{Field: "title", Message: "must not be empty"}
		}
		m.Title = *input.Title
	}
	if input.Description != nil {
		m.Description = *input.Description
	}

	statusChanged := false
	if input.Status != nil && *input.Status != m.Status {
		switch *input.Status {
		case models.MeetingStatusCancelled:
		case models.MeetingStatusScheduled:
			// cancelled is terminal
			return nil, utils.ValidationError{Field: "status", Message: "a cancelled meeting cannot be rescheduled"}
		default:
			return nil, utils.ValidationError{Field: "status", Message: "must be one of: scheduled, cancelled"}
		}
		m.Status = *input.Status
		statusChanged = true
	}

	var notifs []models.Notification
	if statusChanged {
		if m.Status == models.MeetingStatusCancelled {
			notifs = append(notifs, newNotification(
				m.ParticipantID,
				models.NotificationTypeCancelled,
				"Meeting Cancelled",
				fmt.Sprintf("Meeting %q has been cancelled", m.Title),
				m.ID,
			))
		} else {
			notifs = append(notifs, newNotification(
				m.ParticipantID,
				models.NotificationTypeUpdate,
				"Meeting Update",
				fmt.Sprintf("Meeting %q has been %s", m.Title, m.Status),
				m.ID,
			))
		}
	}
	if timeChanged {
		notifs = append(notifs, newNotification(
			m.ParticipantID,
			models.NotificationTypeReschedule,
			"Meeting Rescheduled",
			fmt.Sprintf("Meeting %q has been rescheduled", m.Title),
			m.ID,
		))
	}

	m.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, m, notifs); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "meeting", ID: id}
		}
		return nil, err
	}
	s.invalidateAvailability(ctx, m.HostID, m.ParticipantID)
	return m, nil
}

func (s *DefaultMeetingService) CancelMeeting(ctx context.Context, id string) (*models.Meeting, error) {
	m, err := s.GetMeeting(ctx, id)
	if err != nil {
		return nil, err
	}
	// Repeated cancellation is idempotent and emits no second notification.
	if m.Status == models.MeetingStatusCancelled {
		return m, nil
	}

	m.Status = models.MeetingStatusCancelled
	m.UpdatedAt = time.Now().UTC()
	notif := newNotification(
		m.ParticipantID,
		models.NotificationTypeCancelled,
		"Meeting Cancelled",
		fmt.Sprintf("Meeting %q has been cancelled", m.Title),
		m.ID,
	)
	if err := s.Repo.Update(ctx, m, []models.Notification{notif}); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "meeting", ID: id}
		}
		return nil, err
	}
	s.invalidateAvailability(ctx, m.HostID, m.ParticipantID)
	return m, nil
}

func (s *DefaultMeetingService) invalidateAvailability(ctx context.Context, userIDs ...string) {
	if s.Availability == nil {
		return
	}
	for _, id := range userIDs {
		s.Availability.InvalidateUser(ctx, id)
	}
}

func newNotification(userID, notifType, title, message, relatedID string) models.Notification {
	now := time.Now().UTC()
	return models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// parseStartTime accepts RFC 3339 timestamps, with or without sub-second
// precision or an explicit offset.
func parseStartTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
