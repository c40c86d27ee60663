package availability

import (
	"time"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// Candidate is a proposed appointment under evaluation.
type Candidate struct {
	// AppointmentID is set when editing an existing appointment so its own
	// prior record is excluded from the conflict scan.
	AppointmentID *int64

	// ProfessionalID scopes the candidate to one professional's calendar.
	// When nil the candidate lives on the tenant-wide unassigned timeline;
	// assigned and unassigned appointments never block each other.
	ProfessionalID *int64

	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	ServiceIDs      []int64
}

// FindConflict returns the first existing appointment overlapping the
// candidate, or nil when the slot is free. Cancelled appointments and
// appointments on a different professional timeline never conflict.
// Adjacent appointments do not conflict: intervals are half-open.
func FindConflict(cand Candidate, existing []*domain.Appointment, catalog map[int64]*domain.Service) *domain.Appointment {
	candStart, err := cand.StartTime.Minutes()
	if err != nil {
		return nil
	}

	for _, appt := range existing {
		if appt == nil || appt.IsCancelled() {
			continue
		}
		if cand.AppointmentID != nil && appt.ID == *cand.AppointmentID {
			continue
		}
		if !sameDay(cand.Date, appt.Date) {
			continue
		}
		if !sameTimeline(cand.ProfessionalID, appt.ProfessionalID) {
			continue
		}

		apptStart, err := appt.StartTime.Minutes()
		if err != nil {
			continue
		}

		if Overlaps(candStart, cand.DurationMinutes, apptStart, appointmentDuration(appt, catalog)) {
			return appt
		}
	}

	return nil
}

// appointmentDuration resolves the effective duration of a stored
// appointment: the persisted value when positive, otherwise the aggregate of
// its attached services, otherwise the 60-minute default.
func appointmentDuration(appt *domain.Appointment, catalog map[int64]*domain.Service) int {
	if appt.DurationMinutes > 0 {
		return appt.DurationMinutes
	}
	if len(appt.ServiceIDs) > 0 {
		return DurationForServiceIDs(appt.ServiceIDs, catalog)
	}
	return domain.DefaultDurationMinutes
}

// sameTimeline applies the professional matching rule: two assigned
// appointments conflict only on the same professional, and unassigned
// appointments only among themselves.
func sameTimeline(a, b *int64) bool {
	if a == nil && b == nil {
		return true
	}
	if a != nil && b != nil {
		return *a == *b
	}
	return false
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
