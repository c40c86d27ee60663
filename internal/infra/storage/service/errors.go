package service

import "errors"

var (
	// ErrServiceNotFound is returned when no service matches.
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails.
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
