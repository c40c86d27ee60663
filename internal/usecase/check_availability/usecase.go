package check_availability

import (
	"context"
	"fmt"

	"github.com/rafaelruch/agendapro-sub002/internal/availability"
	"github.com/rafaelruch/agendapro-sub002/internal/domain"
)

// UseCase answers availability questions without holding locks: it reads a
// point-in-time snapshot, so a positive answer is advisory. Booking itself
// re-checks inside a serializable transaction.
type UseCase struct {
	appointmentRepo   AppointmentRepository
	businessHoursRepo BusinessHoursRepository
	serviceRepo       ServiceRepository
	professionalRepo  ProfessionalRepository
	logger            Logger

	allowUnconfiguredHours bool
}

// NewUseCase wires the use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	businessHoursRepo BusinessHoursRepository,
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	allowUnconfiguredHours bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:        appointmentRepo,
		businessHoursRepo:      businessHoursRepo,
		serviceRepo:            serviceRepo,
		professionalRepo:       professionalRepo,
		logger:                 logger,
		allowUnconfiguredHours: allowUnconfiguredHours,
	}
}

// Execute evaluates the candidate slot against hours and existing bookings.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, req.TenantID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to fetch services: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch services: %v", ErrInternal, err)
	}
	catalog := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		catalog[svc.ID] = svc
	}

	var professional *domain.Professional
	if req.ProfessionalID != nil {
		professional, err = uc.professionalRepo.GetByID(ctx, req.TenantID, *req.ProfessionalID)
		if err != nil {
			uc.logger.Warn("CheckAvailability: professional id=%d not found: %v", *req.ProfessionalID, err)
			return nil, ErrProfessionalNotFound
		}
	}

	weekday := int(req.Date.Weekday())

	hoursConfigured, err := uc.businessHoursRepo.HasAny(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to check business hours presence: %v", err)
		return nil, fmt.Errorf("%w: failed to check business hours: %v", ErrInternal, err)
	}

	dayRows, err := uc.businessHoursRepo.GetByTenantAndDay(ctx, req.TenantID, weekday)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to fetch business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch business hours: %v", ErrInternal, err)
	}

	existing, err := uc.appointmentRepo.GetByTenantWithFilter(ctx, domain.TenantAppointmentsFilter{
		TenantID:         req.TenantID,
		Date:             &req.Date,
		IncludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to fetch appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
	}

	cctx := availability.Context{
		BusinessHours:          dayRows,
		HoursConfigured:        hoursConfigured,
		AllowUnconfiguredHours: uc.allowUnconfiguredHours,
		Appointments:           existing,
		Services:               catalog,
	}

	if professional != nil {
		cctx.ProfessionalSchedule = professional.SchedulesFor(weekday)
		cctx.ProfessionalConfigured = len(professional.Schedules) > 0
	}

	result := availability.Check(availability.Candidate{
		AppointmentID:   req.AppointmentID,
		ProfessionalID:  req.ProfessionalID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		ServiceIDs:      req.ServiceIDs,
	}, cctx)

	resp := &Response{
		Available:       result.Available,
		Reason:          string(result.Reason),
		DurationMinutes: result.DurationMinutes,
	}
	if result.Conflicting != nil {
		resp.Conflicting = conflictSummary(result.Conflicting)
	}

	return resp, nil
}

func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}
	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes exceeds %d", ErrInvalidInput, domain.MaxDurationMinutes)
	}
	return nil
}
