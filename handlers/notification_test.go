package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meetsync/models"
	"meetsync/utils"
)

// stubNotificationService returns canned results per call.
type stubNotificationService struct {
	notifications []models.UserNotification
	notification  *models.Notification
	count         int64
	err           error
}

func (s *stubNotificationService) ListNotifications(ctx context.Context, userID string) ([]models.UserNotification, error) {
	return s.notifications, s.err
}

func (s *stubNotificationService) MarkAsRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.notification, nil
}

func (s *stubNotificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	return s.count, s.err
}

func notificationRouter(svc *stubNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNotificationHandler(svc, zap.NewNop())
	r := gin.New()
	api := r.Group("/api/notifications")
	api.GET("", h.GetNotifications)
	api.PUT("/read-all", h.MarkAllAsRead)
	api.PUT("/:id/read", h.MarkAsRead)
	return r
}

func TestGetNotificationsHandlerRequiresUser(t *testing.T) {
	r := notificationRouter(&stubNotificationService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNotificationsHandlerEmptyResult(t *testing.T) {
	r := notificationRouter(&stubNotificationService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notifications?userId=u1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"notifications":[]}`, w.Body.String())
}

func TestMarkAsReadHandlerForeignUser(t *testing.T) {
	svc := &stubNotificationService{err: utils.NotFoundError{Resource: "notification", ID: "n-1"}}
	r := notificationRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/notifications/n-1/read?userId=intruder", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkAsReadHandlerRequiresUser(t *testing.T) {
	r := notificationRouter(&stubNotificationService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/notifications/n-1/read", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkAllAsReadHandler(t *testing.T) {
	svc := &stubNotificationService{count: 3}
	r := notificationRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/notifications/read-all?userId=u1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":3`)
}
