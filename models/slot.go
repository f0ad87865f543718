package models

import "time"

// Slot is a candidate, unbooked interval within working hours. Slots are
// computed per request and never persisted.
type Slot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  int       `json:"duration"` // minutes
}

// AvailabilityResult is the availability response for one user and day.
type AvailabilityResult struct {
	AvailableSlots []Slot `json:"availableSlots"`
	Timezone       string `json:"timezone"`
	Date           string `json:"date"`
}
