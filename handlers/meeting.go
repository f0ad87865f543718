// File: handlers/meeting.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetsync/models"
	"meetsync/services/meeting"
	"meetsync/utils"
)

// MeetingHandler serves the meeting CRUD endpoints.
type MeetingHandler struct {
	Service meeting.MeetingService
	Logger  *zap.Logger
}

func NewMeetingHandler(svc meeting.MeetingService, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{Service: svc, Logger: logger}
}

// ListMeetings returns all meetings for a user, ascending by start time.
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required parameter", "userId is required")
		return
	}

	meetings, err := h.Service.ListMeetings(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if meetings == nil {
		meetings = []models.Meeting{}
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// GetMeeting returns one meeting by id.
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	id := c.Param("id")
	m, err := h.Service.GetMeeting(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meeting": m})
}

// CreateMeeting books a new meeting and notifies the participant.
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var input models.CreateMeetingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Warn("Invalid meeting creation request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	m, err := h.Service.CreateMeeting(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	h.Logger.Info("Meeting created",
		zap.String("meetingId", m.ID),
		zap.String("hostId", m.HostID),
		zap.String("participantId", m.ParticipantID))
	c.JSON(http.StatusCreated, gin.H{"meeting": m})
}

// UpdateMeeting applies a partial update; omitted fields keep their
// previous values.
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	id := c.Param("id")
	var input models.UpdateMeetingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Warn("Invalid meeting update request", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	m, err := h.Service.UpdateMeeting(c.Request.Context(), id, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meeting": m})
}

// DeleteMeeting soft-cancels the meeting and notifies the participant.
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.Service.CancelMeeting(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting cancelled successfully"})
}
