package catalog

import (
	"context"
	"time"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
)

// ServiceRepository is the catalog persistence surface.
type ServiceRepository interface {
	ListByTenant(ctx context.Context, tenantID int64, onlyActive bool) ([]*domain.Service, error)
}

// TimeProvider supplies "today" for promotion resolution.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current wall-clock time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
