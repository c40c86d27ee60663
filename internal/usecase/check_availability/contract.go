package check_availability

import (
	"context"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
)

// AppointmentRepository reads the day's appointments.
type AppointmentRepository interface {
	GetByTenantWithFilter(ctx context.Context, filter domain.TenantAppointmentsFilter) ([]*domain.Appointment, error)
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

// Logger is the logging surface of this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
