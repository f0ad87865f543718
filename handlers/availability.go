// File: handlers/availability.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetsync/services/availability"
	"meetsync/utils"
)

// AvailabilityHandler serves the open-slot computation endpoint.
type AvailabilityHandler struct {
	Service availability.Service
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc availability.Service, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetAvailability returns the open slots for one user, day and timezone.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	timezone := c.Query("timezone")
	if userID == "" || date == "" || timezone == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required parameters",
			"userId, date and timezone are required")
		return
	}

	durationMinutes := 0
	if raw := c.Query("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid duration",
				"duration must be a positive number of minutes")
			return
		}
		durationMinutes = parsed
	}

	result, err := h.Service.GetAvailability(c.Request.Context(), userID, date, timezone, durationMinutes)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	h.Logger.Debug("Availability computed",
		zap.String("userId", userID),
		zap.String("date", date),
		zap.Int("slots", len(result.AvailableSlots)))
	c.JSON(http.StatusOK, result)
}
