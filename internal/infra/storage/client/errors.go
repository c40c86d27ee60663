package client

import "errors"

var (
	// ErrClientNotFound is returned when no client matches.
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrScanRow is returned when result scanning fails.
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
