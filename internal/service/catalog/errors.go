package catalog

import "errors"

var (
	// ErrInternal is returned on infrastructure failures.
	ErrInternal = errors.New("service: internal error")
)
