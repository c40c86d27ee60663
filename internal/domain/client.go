package domain

import "time"

// Client is a tenant customer. The scheduling service only reads clients to
// denormalize the client name into appointments at booking time.
type Client struct {
	ID       int64
	TenantID int64
	Name     string
	Phone    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
