package create_appointment

import (
	"errors"
	"fmt"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
)

var (
	// ErrClientNotFound is returned when the client does not exist.
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrProfessionalNotFound is returned when the professional does not exist.
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotOffered is returned when the professional does not
	// perform one of the requested services.
	ErrServiceNotOffered = errors.New("create_appointment: service not offered by professional")

	// ErrOutsideBusinessHours is returned when the requested interval does
	// not fit the relevant schedule.
	ErrOutsideBusinessHours = errors.New("create_appointment: outside business hours")

	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned for internal failures.
	ErrInternal = errors.New("create_appointment: internal error")
)

// ConflictError carries the overlapping appointment so the handler can put
// its summary into the 409 response body.
type ConflictError struct {
	Conflicting *domain.Appointment
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("create_appointment: time slot conflicts with appointment id=%d", e.Conflicting.ID)
}
