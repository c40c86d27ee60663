package professional

import "errors"

var (
	// ErrProfessionalNotFound is returned when no professional matches.
	ErrProfessionalNotFound = errors.New("professional.repository: professional not found")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("professional.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("professional.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails.
	ErrScanRow = errors.New("professional.repository: failed to scan row")
)
