package domain

import (
	"time"

	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked appointment within a tenant.
// Appointments are assumed same-day: start time plus duration is never
// validated against midnight rollover.
type Appointment struct {
	ID             int64
	TenantID       int64
	ClientID       int64
	ProfessionalID *int64 // nil = unassigned, lives on the tenant-wide timeline
	Date           time.Time
	StartTime      types.TimeString
	DurationMinutes int
	Status         AppointmentStatus
	ServiceIDs     []int64

	// Denormalized at creation time for history and conflict summaries
	ClientName   string
	ServiceNames []string
	TotalPrice   float64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled reports whether the appointment has been cancelled.
// Cancelled appointments never participate in conflict checks.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled reports whether the appointment may still be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeUpdated reports whether the appointment may still be edited.
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanTransitionTo validates a status-transition action.
// scheduled -> confirmed -> completed; cancellation goes through Cancel.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch next {
	case StatusConfirmed:
		return a.Status == StatusScheduled
	case StatusCompleted:
		return a.Status == StatusScheduled || a.Status == StatusConfirmed
	default:
		return false
	}
}

// TenantAppointmentsFilter selects appointments of one tenant.
type TenantAppointmentsFilter struct {
	TenantID       int64
	Date           *time.Time         // nil = any date
	ProfessionalID *int64             // nil = any professional
	Status         *AppointmentStatus // nil = any status
	IncludeCancelled bool             // ignored when Status is set
}
