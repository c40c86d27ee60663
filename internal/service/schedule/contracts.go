package schedule

import (
	"context"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
)

// BusinessHoursRepository is the schedule persistence surface.
type BusinessHoursRepository interface {
	GetByTenant(ctx context.Context, tenantID int64) ([]*domain.BusinessHours, error)
	ReplaceForDay(ctx context.Context, tenantID int64, dayOfWeek int, rows []*domain.BusinessHours) error
}

// TransactionManager wraps the delete+insert of a weekday replacement.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
