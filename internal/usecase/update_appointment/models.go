package update_appointment

import (
	"time"

	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// Request is the use case input for rescheduling an existing appointment.
// It carries the full desired state; the client of record never changes.
type Request struct {
	TenantID        int64
	AppointmentID   int64
	ProfessionalID  *int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int // 0 = derive from services (default 60 without services)
	ServiceIDs      []int64
	Notes           *string
}

// Response is the updated appointment.
type Response struct {
	ID              int64
	TenantID        int64
	ClientID        int64
	ClientName      string
	ProfessionalID  *int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	ServiceIDs      []int64
	ServiceNames    []string
	TotalPrice      float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
