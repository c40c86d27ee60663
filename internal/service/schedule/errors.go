package schedule

import "errors"

var (
	// ErrInvalidDayOfWeek is returned when dayOfWeek is outside 0..6.
	ErrInvalidDayOfWeek = errors.New("invalid day of week")

	// ErrInvalidTimeRange is returned when startTime >= endTime or a time
	// string is malformed.
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("service: internal error")
)
