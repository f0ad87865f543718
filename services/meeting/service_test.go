package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"meetsync/models"
	"meetsync/utils"
)

// mockMeetingRepo is a map-backed stand-in for the mongo repository. It
// records notifications the way the transactional writes would.
type mockMeetingRepo struct {
	meetings      map[string]models.Meeting
	notifications []models.Notification
}

func newMockMeetingRepo() *mockMeetingRepo {
	return &mockMeetingRepo{meetings: make(map[string]models.Meeting)}
}

func (m *mockMeetingRepo) Create(ctx context.Context, meeting *models.Meeting, notif *models.Notification) error {
	m.meetings[meeting.ID] = *meeting
	m.notifications = append(m.notifications, *notif)
	return nil
}

func (m *mockMeetingRepo) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	mt, ok := m.meetings[id]
	if !ok {
		return nil, nil
	}
	return &mt, nil
}

func (m *mockMeetingRepo) ListByUser(ctx context.Context, userID string) ([]models.Meeting, error) {
	var out []models.Meeting
	for _, mt := range m.meetings {
		if mt.HostID == userID || mt.ParticipantID == userID {
			out = append(out, mt)
		}
	}
	return out, nil
}

func (m *mockMeetingRepo) ListBookedBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Meeting, error) {
	return nil, nil
}

func (m *mockMeetingRepo) HasOverlapping(ctx context.Context, userIDs []string, start, end time.Time) (bool, error) {
	users := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		users[id] = true
	}
	for _, mt := range m.meetings {
		if mt.Status == models.MeetingStatusCancelled {
			continue
		}
		if !users[mt.HostID] && !users[mt.ParticipantID] {
			continue
		}
		if mt.StartTime.Before(end) && mt.EndTime().After(start) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockMeetingRepo) Update(ctx context.Context, meeting *models.Meeting, notifs []models.Notification) error {
	if _, ok := m.meetings[meeting.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	m.meetings[meeting.ID] = *meeting
	m.notifications = append(m.notifications, notifs...)
	return nil
}

func validInput() models.CreateMeetingInput {
	return models.CreateMeetingInput{
		HostID:        "host-1",
		ParticipantID: "guest-1",
		StartTime:     "2024-06-10T10:00:00Z",
		Duration:      30,
		Title:         "Design review",
	}
}

func TestCreateMeeting(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	m, err := svc.CreateMeeting(context.Background(), validInput())
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	assert.Equal(t, models.MeetingStatusScheduled, m.Status)
	assert.Equal(t, "UTC", m.Timezone)
	assert.True(t, m.StartTime.Equal(time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)))

	require.Len(t, repo.notifications, 1)
	n := repo.notifications[0]
	assert.Equal(t, "guest-1", n.UserID)
	assert.Equal(t, models.NotificationTypeInvitation, n.Type)
	assert.Equal(t, m.ID, n.RelatedID)
	assert.False(t, n.Read)
}

func TestCreateMeetingValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CreateMeetingInput)
		field  string
	}{
		{"missing host", func(in *models.CreateMeetingInput) { in.HostID = "" }, "hostId"},
		{"missing participant", func(in *models.CreateMeetingInput) { in.ParticipantID = "" }, "participantId"},
		{"missing title", func(in *models.CreateMeetingInput) { in.Title = "  " }, "title"},
		{"missing start", func(in *models.CreateMeetingInput) { in.StartTime = "" }, "startTime"},
		{"bad start", func(in *models.CreateMeetingInput) { in.StartTime = "next tuesday" }, "startTime"},
		{"zero duration", func(in *models.CreateMeetingInput) { in.Duration = 0 }, "duration"},
		{"negative duration", func(in *models.CreateMeetingInput) { in.Duration = -15 }, "duration"},
		{"bad timezone", func(in *models.CreateMeetingInput) { in.Timezone = "Nowhere/Else" }, "timezone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockMeetingRepo()
			svc := &DefaultMeetingService{Repo: repo}

			in := validInput()
			tc.mutate(&in)

			_, err := svc.CreateMeeting(context.Background(), in)
			var ve utils.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
			assert.Empty(t, repo.meetings)
			assert.Empty(t, repo.notifications)
		})
	}
}

func TestCreateMeetingConflict(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	first, err := svc.CreateMeeting(context.Background(), validInput())
	require.NoError(t, err)

	// Same host, overlapping window.
	in := validInput()
	in.ParticipantID = "guest-2"
	in.StartTime = "2024-06-10T10:15:00Z"
	_, err = svc.CreateMeeting(context.Background(), in)

	var ce utils.ConflictError
	require.True(t, errors.As(err, &ce))

	// The original booking is untouched.
	require.Len(t, repo.meetings, 1)
	stored := repo.meetings[first.ID]
	assert.True(t, stored.StartTime.Equal(first.StartTime))
	assert.Equal(t, models.MeetingStatusScheduled, stored.Status)
}

func TestCreateMeetingBackToBackIsNotConflict(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	_, err := svc.CreateMeeting(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.StartTime = "2024-06-10T10:30:00Z"
	_, err = svc.CreateMeeting(context.Background(), in)
	require.NoError(t, err)
	assert.Len(t, repo.meetings, 2)
}

func TestUpdateMeetingPartial(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	created, err := svc.CreateMeeting(context.Background(), validInput())
	require.NoError(t, err)
	repo.notifications = nil

	title := "Design review (moved room)"
	updated, err := svc.UpdateMeeting(context.Background(), created.ID, models.UpdateMeetingInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	assert.True(t, updated.StartTime.Equal(created.StartTime))
	assert.Equal(t, created.Duration, updated.Duration)
	assert.Equal(t, created.Status, updated.Status)
	// Title-only edits do not notify anyone.
	assert.Empty(t, repo.notifications)
}

func TestUpdateMeetingReschedule(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	created, err := svc.CreateMeeting(context.Background(), validInput())
	require.NoError(t, err)
	repo.notifications = nil

	newStart := "2024-06-10T14:00:00Z"
	duration := 60
	updated, err := svc.UpdateMeeting(context.Background(), created.ID, models.UpdateMeetingInput{
		StartTime: &newStart,
		Duration:  &duration,
	})
	require.NoError(t, err)
	assert.True(t, updated.StartTime.Equal(time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, 60, updated.Duration)

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, models.NotificationTypeReschedule, repo.notifications[0].Type)
	assert.Equal(t, "guest-1", repo.notifications[0].UserID)
}

func TestUpdateMeetingStatusCancelled(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	created, err := svc.CreateMeeting(context.Background(), validInput())
	require.NoError(t, err)
	repo.notifications = nil

	status := models.MeetingStatusCancelled
	updated, err := svc.UpdateMeeting(context.Background(), created.ID, models.UpdateMeetingInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCancelled, updated.Status)

	// Exactly one cancellation notification, addressed to the participant.
	require.Len(t, repo.notifications, 1)
	assert.Equal(t, models.NotificationTypeCancelled, repo.notifications[0].Type)
	assert.Equal(t, "guest-1", repo.notifications[0].UserID)
}

func TestUpdateMeetingCancelledIsTerminal(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	created, err := svc.CreateMeeting(context.Background(), validInput())
	require.NoError(t, err)
	_, err = svc.CancelMeeting(context.Background(), created.ID)
	require.NoError(t, err)

	status := models.MeetingStatusScheduled
	_, err = svc.UpdateMeeting(context.Background(), created.ID, models.UpdateMeetingInput{Status: &status})
	var ve utils.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "status", ve.Field)
}

func TestUpdateMeetingNotFound(t *testing.T) {
	svc := &DefaultMeetingService{Repo: newMockMeetingRepo()}

	title := "ghost"
	_, err := svc.UpdateMeeting(context.Background(), "missing", models.UpdateMeetingInput{Title: &title})
	var nfe utils.NotFoundError
	require.True(t, errors.As(err, &nfe))
}

func TestCancelMeeting(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	created, err := svc.CreateMeeting(context.Background(), validInput())
	require.NoError(t, err)
	repo.notifications = nil

	cancelled, err := svc.CancelMeeting(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCancelled, cancelled.Status)
	require.Len(t, repo.notifications, 1)
	assert.Equal(t, models.NotificationTypeCancelled, repo.notifications[0].Type)

	// Cancelling again is idempotent: no duplicate notification.
	again, err := svc.CancelMeeting(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCancelled, again.Status)
	assert.Len(t, repo.notifications, 1)
}

func TestCancelMeetingNotFound(t *testing.T) {
	svc := &DefaultMeetingService{Repo: newMockMeetingRepo()}

	_, err := svc.CancelMeeting(context.Background(), "missing")
	var nfe utils.NotFoundError
	require.True(t, errors.As(err, &nfe))
}

func TestGetMeetingNotFound(t *testing.T) {
	svc := &DefaultMeetingService{Repo: newMockMeetingRepo()}

	_, err := svc.GetMeeting(context.Background(), "missing")
	var nfe utils.NotFoundError
	require.True(t, errors.As(err, &nfe))
}

func TestListMeetingsRequiresUser(t *testing.T) {
	svc := &DefaultMeetingService{Repo: newMockMeetingRepo()}

	_, err := svc.ListMeetings(context.Background(), "")
	var ve utils.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "userId", ve.Field)
}
