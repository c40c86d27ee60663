package get_available_slots

import (
	"time"

	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// Request asks for the free slots of one day.
type Request struct {
	TenantID       int64
	Date           time.Time
	ServiceIDs     []int64
	ProfessionalID *int64
}

// Slot is one bookable interval.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response lists the day's free slots in ascending start order.
type Response struct {
	Date            string
	DurationMinutes int
	Slots           []Slot
}
