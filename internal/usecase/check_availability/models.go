package check_availability

import (
	"time"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// Request is a dry-run availability question: would this slot be accepted?
type Request struct {
	TenantID        int64
	AppointmentID   *int64 // set when re-checking an existing appointment's new slot
	ProfessionalID  *int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	ServiceIDs      []int64
}

// Response reports the verdict. Reason and Conflicting are only set when
// the slot is unavailable.
type Response struct {
	Available       bool
	Reason          string
	Conflicting     *ConflictingAppointment
	DurationMinutes int
}

// ConflictingAppointment identifies the blocking appointment without
// exposing the full record on a public endpoint.
type ConflictingAppointment struct {
	ID         int64
	ClientName string
	Date       string
	Time       string
}

func conflictSummary(appt *domain.Appointment) *ConflictingAppointment {
	if appt == nil {
		return nil
	}
	return &ConflictingAppointment{
		ID:         appt.ID,
		ClientName: appt.ClientName,
		Date:       appt.Date.Format(domain.DateFormat),
		Time:       appt.StartTime.String(),
	}
}
