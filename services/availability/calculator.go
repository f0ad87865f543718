// File: services/availability/calculator.go
package availability

import (
	"time"

	"meetsync/models"
	"meetsync/utils"
)

// Working window is fixed at 09:00-17:00 in the requester's local timezone.
const (
	workDayStartHour = 9
	workDayEndHour   = 17

	// DefaultSlotDuration applies when a request omits the duration.
	DefaultSlotDuration = 30
)

const dateLayout = "2006-01-02"

// Interval is a booked time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// overlaps uses strict inequality on both ends, so back-to-back adjacency
// is not a conflict.
func (iv Interval) overlaps(start, end time.Time) bool {
	return start.Before(iv.End) && end.After(iv.Start)
}

// ComputeSlots generates the candidate slots for one calendar day in the
// given timezone and drops every slot that overlaps a booked interval.
// Slot boundaries are computed in the requester's local time, never UTC.
// The result is in ascending start order; a fully booked day yields an
// empty slice, not an error.
func ComputeSlots(day, timezone string, durationMinutes int, booked []Interval) ([]models.Slot, error) {
	if durationMinutes <= 0 {
		return nil, utils.ValidationError{Field: "duration", Message: "must be a positive number of minutes"}
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, utils.ValidationError{Field: "timezone", Message: "unknown IANA timezone: " + timezone}
	}

	date, err := time.ParseInLocation(dateLayout, day, loc)
	if err != nil {
		return nil, utils.ValidationError{Field: "date", Message: "must be formatted as YYYY-MM-DD"}
	}

	windowStart := time.Date(date.Year(), date.Month(), date.Day(), workDayStartHour, 0, 0, 0, loc)
	windowEnd := time.Date(date.Year(), date.Month(), date.Day(), workDayEndHour, 0, 0, 0, loc)
	step := time.Duration(durationMinutes) * time.Minute

	// Generation order already yields ascending start times; no sort needed.
	slots := make([]models.Slot, 0)
	for t := windowStart; !t.Add(step).After(windowEnd); t = t.Add(step) {
		slotEnd := t.Add(step)
		if overlapsAny(t, slotEnd, booked) {
			continue
		}
		slots = append(slots, models.Slot{
			StartTime: t,
			EndTime:   slotEnd,
			Duration:  durationMinutes,
		})
	}
	return slots, nil
}

func overlapsAny(start, end time.Time, booked []Interval) bool {
	for _, iv := range booked {
		if iv.overlaps(start, end) {
			return true
		}
	}
	return false
}

// DayWindow returns the [startOfDay, endOfDay] bounds of the given calendar
// day in the given timezone, used to query booked meetings.
func DayWindow(day, timezone string) (time.Time, time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ValidationError{Field: "timezone", Message: "unknown IANA timezone: " + timezone}
	}
	date, err := time.ParseInLocation(dateLayout, day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ValidationError{Field: "date", Message: "must be formatted as YYYY-MM-DD"}
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end, nil
}
