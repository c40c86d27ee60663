package businesshours

import "errors"

var (
	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("businesshours.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("businesshours.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails.
	ErrScanRow = errors.New("businesshours.repository: failed to scan row")
)
