package appointments

import (
	"context"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/internal/integrations/notifier"
)

// AppointmentRepository is the persistence surface of the lifecycle service.
type AppointmentRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Appointment, error)
	GetByTenantWithFilter(ctx context.Context, filter domain.TenantAppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, tenantID, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, tenantID, id int64, reason string) error
}

// Notifier delivers best-effort appointment events to external automations.
type Notifier interface {
	Send(ctx context.Context, event notifier.AppointmentEvent) error
}

// Logger is the logging surface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
