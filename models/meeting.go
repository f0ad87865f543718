package models

import "time"

// Meeting statuses. The lifecycle is scheduled -> cancelled, terminal.
const (
	MeetingStatusScheduled = "scheduled"
	MeetingStatusCancelled = "cancelled"
)

// Meeting represents a scheduled meeting between a host and one participant.
type Meeting struct {
	ID            string    `bson:"id" json:"id"`
	HostID        string    `bson:"hostId" json:"hostId"`
	ParticipantID string    `bson:"participantId" json:"participantId"`
	StartTime     time.Time `bson:"startTime" json:"startTime"` // absolute instant, stored in UTC
	Duration      int       `bson:"duration" json:"duration"`   // minutes, always > 0
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Status        string    `bson:"status" json:"status"`
	Timezone      string    `bson:"timezone" json:"timezone"` // IANA name, informational only
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EndTime derives the end of the booked interval from startTime + duration;
// no end time is stored.
func (m Meeting) EndTime() time.Time {
	return m.StartTime.Add(time.Duration(m.Duration) * time.Minute)
}

// MeetingSummary is the reduced meeting view joined onto notifications.
type MeetingSummary struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	StartTime time.Time `bson:"startTime" json:"startTime"`
	Duration  int       `bson:"duration" json:"duration"`
	Status    string    `bson:"status" json:"status"`
}

// CreateMeetingInput is the payload for booking a new meeting.
type CreateMeetingInput struct {
	HostID        string `json:"hostId"`
	ParticipantID string `json:"participantId"`
	StartTime     string `json:"startTime"`
	Duration      int    `json:"duration"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Timezone      string `json:"timezone"`
}

// UpdateMeetingInput carries a partial update; nil fields keep their
// previous value.
type UpdateMeetingInput struct {
	StartTime   *string `json:"startTime"`
	Duration    *int    `json:"duration"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
