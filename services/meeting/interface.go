// File: services/meeting/interface.go
package meeting

import (
	"context"

	meetingRepo "meetsync/database/repository/meeting"
	"meetsync/models"
	"meetsync/services/availability"
)

// MeetingService owns the meeting lifecycle: scheduled -> cancelled,
// terminal. Every mutation fans out a notification to the participant
// within the same transaction as the meeting write.
type MeetingService interface {
	CreateMeeting(ctx context.Context, input models.CreateMeetingInput) (*models.Meeting, error)
	ListMeetings(ctx context.Context, userID string) ([]models.Meeting, error)
	GetMeeting(ctx context.Context, id string) (*models.Meeting, error)
	UpdateMeeting(ctx context.Context, id string, input models.UpdateMeetingInput) (*models.Meeting, error)
	CancelMeeting(ctx context.Context, id string) (*models.Meeting, error)
}

// DefaultMeetingService is the production implementation.
type DefaultMeetingService struct {
	Repo         meetingRepo.MeetingRepository
	Availability availability.Service
}
