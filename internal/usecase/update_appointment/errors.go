package update_appointment

import (
	"errors"
	"fmt"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
)

var (
	// ErrAppointmentNotFound - no appointment with this id for the tenant.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrNotEditable - the appointment's status does not allow editing.
	ErrNotEditable = errors.New("appointment cannot be edited in its current status")
	// ErrClientNotFound - unknown client id.
	ErrClientNotFound = errors.New("client not found")
	// ErrProfessionalNotFound - unknown professional id.
	ErrProfessionalNotFound = errors.New("professional not found")
	// ErrServiceNotOffered - professional does not perform one of the services.
	ErrServiceNotOffered = errors.New("service not offered by professional")
	// ErrOutsideBusinessHours - requested window falls outside the tenant's hours.
	ErrOutsideBusinessHours = errors.New("outside business hours")
	// ErrInvalidInput - request failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal - infrastructure failure.
	ErrInternal = errors.New("internal error")
)

// ConflictError carries the appointment that blocked the update.
type ConflictError struct {
	Conflicting *domain.Appointment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("appointment conflict with appointment %d", e.Conflicting.ID)
}
