// File: handlers/notification.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetsync/models"
	"meetsync/services/notification"
	"meetsync/utils"
)

// NotificationHandler serves the notification read endpoints.
type NotificationHandler struct {
	Service notification.NotificationService
	Logger  *zap.Logger
}

func NewNotificationHandler(svc notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Service: svc, Logger: logger}
}

// GetNotifications returns the user's notifications newest first, joined
// with their referenced meeting summaries.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required parameter", "userId is required")
		return
	}

	notifications, err := h.Service.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if notifications == nil {
		notifications = []models.UserNotification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkAsRead marks a single notification read, scoped to its owner.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id := c.Param("id")
	userID := c.Query("userId")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required parameter", "userId is required")
		return
	}

	n, err := h.Service.MarkAsRead(c.Request.Context(), id, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Notification marked as read",
		"notification": n,
	})
}

// MarkAllAsRead marks every unread notification for the user.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required parameter", "userId is required")
		return
	}

	count, err := h.Service.MarkAllAsRead(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	h.Logger.Info("Notifications marked as read",
		zap.String("userId", userID), zap.Int64("count", count))
	c.JSON(http.StatusOK, gin.H{
		"message": "All notifications marked as read",
		"count":   count,
	})
}
