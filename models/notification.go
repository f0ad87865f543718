package models

import "time"

// Notification types, one per meeting lifecycle transition.
const (
	NotificationTypeInvitation = "MEETING_INVITATION"
	NotificationTypeUpdate     = "MEETING_UPDATE"
	NotificationTypeCancelled  = "MEETING_CANCELLED"
	NotificationTypeReschedule = "MEETING_RESCHEDULE"
)

// Notification is created as a side effect of a meeting mutation and
// addressed to the counterpart user. Only the read flag is ever updated.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	RelatedID string    `bson:"relatedId,omitempty" json:"relatedId,omitempty"` // lookup-only meeting reference, may be unresolvable
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserNotification is a notification joined with the summary of its
// referenced meeting, when that meeting still resolves.
type UserNotification struct {
	Notification `bson:",inline"`
	Meeting      *MeetingSummary `bson:"meeting,omitempty" json:"meeting,omitempty"`
}
