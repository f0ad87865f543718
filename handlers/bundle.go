// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Meeting endpoints
	ListMeetingsHandler  gin.HandlerFunc
	GetMeetingHandler    gin.HandlerFunc
	CreateMeetingHandler gin.HandlerFunc
	UpdateMeetingHandler gin.HandlerFunc
	DeleteMeetingHandler gin.HandlerFunc

	// Availability endpoint
	GetAvailabilityHandler gin.HandlerFunc

	// Notification endpoints
	GetNotificationsHandler         gin.HandlerFunc
	MarkNotificationReadHandler     gin.HandlerFunc
	MarkAllNotificationsReadHandler gin.HandlerFunc
}
