package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound - unknown professional id.
	ErrProfessionalNotFound = errors.New("professional not found")
	// ErrInvalidInput - request failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal - infrastructure failure.
	ErrInternal = errors.New("internal error")
)
