package update_appointment

import (
	"context"
	"fmt"

	"github.com/rafaelruch/agendapro-sub002/internal/availability"
	"github.com/rafaelruch/agendapro-sub002/internal/domain"
)

// UseCase reschedules an existing appointment. The availability check and
// the write happen in one serializable transaction, and the appointment's
// own current slot is excluded from the conflict scan so moving it within
// its own window is allowed.
type UseCase struct {
	appointmentRepo   AppointmentRepository
	businessHoursRepo BusinessHoursRepository
	serviceRepo       ServiceRepository
	professionalRepo  ProfessionalRepository
	txManager         TransactionManager
	timeProvider      TimeProvider
	logger            Logger

	allowUnconfiguredHours bool
}

// NewUseCase wires the use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	businessHoursRepo BusinessHoursRepository,
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	allowUnconfiguredHours bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:        appointmentRepo,
		businessHoursRepo:      businessHoursRepo,
		serviceRepo:            serviceRepo,
		professionalRepo:       professionalRepo,
		txManager:              txManager,
		timeProvider:           &RealTimeProvider{},
		logger:                 logger,
		allowUnconfiguredHours: allowUnconfiguredHours,
	}
}

// Execute applies the new schedule to the appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: tenant=%d, appointment=%d, date=%s, time=%s",
		req.TenantID, req.AppointmentID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	today := uc.timeProvider.Now().Format(domain.DateFormat)

	services, err := uc.serviceRepo.GetByIDs(ctx, req.TenantID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to fetch services: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch services: %v", ErrInternal, err)
	}
	catalog := indexServices(services)
	warnMissingServices(uc.logger, "UpdateAppointment", req.ServiceIDs, catalog)

	var professional *domain.Professional
	if req.ProfessionalID != nil {
		professional, err = uc.professionalRepo.GetByID(ctx, req.TenantID, *req.ProfessionalID)
		if err != nil {
			uc.logger.Warn("UpdateAppointment: professional id=%d not found: %v", *req.ProfessionalID, err)
			return nil, ErrProfessionalNotFound
		}
		if err := validateProfessionalServices(professional, req.ServiceIDs); err != nil {
			uc.logger.Warn("UpdateAppointment: %v", err)
			return nil, err
		}
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.appointmentRepo.GetByID(txCtx, req.TenantID, req.AppointmentID)
		if err != nil {
			uc.logger.Warn("UpdateAppointment: appointment id=%d not found: %v", req.AppointmentID, err)
			return ErrAppointmentNotFound
		}

		if !existing.CanBeUpdated() {
			uc.logger.Warn("UpdateAppointment: appointment id=%d has status %s and cannot be edited",
				existing.ID, existing.Status)
			return ErrNotEditable
		}

		checkResult, err := uc.checkAvailability(txCtx, req, professional, catalog)
		if err != nil {
			return err
		}

		if !checkResult.Available {
			switch checkResult.Reason {
			case availability.ReasonConflict:
				uc.logger.Warn("UpdateAppointment: new slot conflicts with appointment id=%d", checkResult.Conflicting.ID)
				return &ConflictError{Conflicting: checkResult.Conflicting}
			default:
				uc.logger.Warn("UpdateAppointment: requested time is outside business hours")
				return ErrOutsideBusinessHours
			}
		}

		existing.ProfessionalID = req.ProfessionalID
		existing.Date = req.Date
		existing.StartTime = req.StartTime
		existing.DurationMinutes = checkResult.DurationMinutes
		existing.ServiceIDs = req.ServiceIDs
		existing.ServiceNames = serviceNames(req.ServiceIDs, catalog)
		existing.TotalPrice = totalEffectivePrice(req.ServiceIDs, catalog, today)
		existing.Notes = req.Notes

		if err := uc.appointmentRepo.Update(txCtx, existing); err != nil {
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", existing.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = existing
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return toResponse(result), nil
}

// checkAvailability loads the schedule context under the transaction and
// runs the availability engine with the appointment excluding itself.
func (uc *UseCase) checkAvailability(
	ctx context.Context,
	req *Request,
	professional *domain.Professional,
	catalog map[int64]*domain.Service,
) (availability.Result, error) {
	weekday := int(req.Date.Weekday())

	hoursConfigured, err := uc.businessHoursRepo.HasAny(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to check business hours presence: %v", err)
		return availability.Result{}, fmt.Errorf("%w: failed to check business hours: %v", ErrInternal, err)
	}

	dayRows, err := uc.businessHoursRepo.GetByTenantAndDay(ctx, req.TenantID, weekday)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to fetch business hours: %v", err)
		return availability.Result{}, fmt.Errorf("%w: failed to fetch business hours: %v", ErrInternal, err)
	}

	existing, err := uc.appointmentRepo.GetByTenantWithFilter(ctx, domain.TenantAppointmentsFilter{
		TenantID:         req.TenantID,
		Date:             &req.Date,
		IncludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to fetch appointments: %v", err)
		return availability.Result{}, fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
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

	cand := availability.Candidate{
		AppointmentID:   &req.AppointmentID,
		ProfessionalID:  req.ProfessionalID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		ServiceIDs:      req.ServiceIDs,
	}

	return availability.Check(cand, cctx), nil
}

// indexServices builds the catalog lookup the availability engine expects.
func indexServices(services []*domain.Service) map[int64]*domain.Service {
	catalog := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		catalog[svc.ID] = svc
	}
	return catalog
}

// warnMissingServices logs ids the catalog could not resolve.
func warnMissingServices(log Logger, op string, ids []int64, catalog map[int64]*domain.Service) {
	for _, id := range ids {
		if _, ok := catalog[id]; !ok {
			log.Warn("%s: service id=%d not found in catalog, using default duration", op, id)
		}
	}
}

// serviceNames collects the resolved service names, in request order.
func serviceNames(ids []int64, catalog map[int64]*domain.Service) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if svc, ok := catalog[id]; ok {
			names = append(names, svc.Name)
		}
	}
	return names
}

// totalEffectivePrice sums the effective (promotion-aware) price of the
// resolved services on the given date.
func totalEffectivePrice(ids []int64, catalog map[int64]*domain.Service, today string) float64 {
	total := 0.0
	for _, id := range ids {
		if svc, ok := catalog[id]; ok {
			total += availability.EffectiveValue(svc, today)
		}
	}
	return total
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		TenantID:        appt.TenantID,
		ClientID:        appt.ClientID,
		ClientName:      appt.ClientName,
		ProfessionalID:  appt.ProfessionalID,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceIDs:      appt.ServiceIDs,
		ServiceNames:    appt.ServiceNames,
		TotalPrice:      appt.TotalPrice,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
