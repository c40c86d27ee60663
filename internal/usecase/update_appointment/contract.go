package update_appointment

import (
	"context"
	"time"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
)

// AppointmentRepository is the appointment persistence surface of this use case.
type AppointmentRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Appointment, error)
	GetByTenantWithFilter(ctx context.Context, filter domain.TenantAppointmentsFilter) ([]*domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) error
}

// BusinessHoursRepository reads tenant business hours.
type BusinessHoursRepository interface {
	GetByTenantAndDay(ctx context.Context, tenantID int64, dayOfWeek int) ([]*domain.BusinessHours, error)
	HasAny(ctx context.Context, tenantID int64) (bool, error)
}

// ServiceRepository resolves catalog services.
type ServiceRepository interface {
	GetByIDs(ctx context.Context, tenantID int64, ids []int64) ([]*domain.Service, error)
}

// ProfessionalRepository resolves professionals and their schedules.
type ProfessionalRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Professional, error)
}

// TransactionManager serializes the check-then-update sequence.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface of this use case.
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
