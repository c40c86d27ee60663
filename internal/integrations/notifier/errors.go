package notifier

import "errors"

var (
	// ErrInternal is returned when the request cannot be built or sent.
	ErrInternal = errors.New("notifier client: internal error")

	// ErrUnexpectedStatus is returned when the webhook answers non-2xx.
	ErrUnexpectedStatus = errors.New("notifier client: unexpected status code")
)
