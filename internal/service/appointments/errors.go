package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel is returned when the appointment's status forbids cancellation.
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidTransition is returned on a status change the lifecycle forbids.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned when the status string is unknown.
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("service: internal error")
)
