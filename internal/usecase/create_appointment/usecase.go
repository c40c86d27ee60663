package create_appointment

import (
	"context"
	"fmt"

	"github.com/rafaelruch/agendapro-sub002/internal/availability"
	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/internal/integrations/notifier"
)

// UseCase books a new appointment: availability is checked and the row
// inserted inside one serializable transaction, so two concurrent requests
// for the same slot cannot both pass the check against a stale snapshot.
type UseCase struct {
	appointmentRepo  AppointmentRepository
	businessHoursRepo BusinessHoursRepository
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	clientRepo       ClientRepository
	notifierClient   Notifier
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger

	allowUnconfiguredHours bool
}

// NewUseCase wires the use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	businessHoursRepo BusinessHoursRepository,
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	clientRepo ClientRepository,
	notifierClient Notifier,
	txManager TransactionManager,
	allowUnconfiguredHours bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:        appointmentRepo,
		businessHoursRepo:      businessHoursRepo,
		serviceRepo:            serviceRepo,
		professionalRepo:       professionalRepo,
		clientRepo:             clientRepo,
		notifierClient:         notifierClient,
		txManager:              txManager,
		timeProvider:           &RealTimeProvider{},
		logger:                 logger,
		allowUnconfiguredHours: allowUnconfiguredHours,
	}
}

// Execute books the appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: tenant=%d, client=%d, date=%s, time=%s",
		req.TenantID, req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	today := uc.timeProvider.Now().Format(domain.DateFormat)

	// Collaborator lookups happen outside the transaction: they are
	// read-only and do not participate in the slot race.
	client, err := uc.clientRepo.GetByID(ctx, req.TenantID, req.ClientID)
	if err != nil {
		uc.logger.Warn("CreateAppointment: client id=%d not found: %v", req.ClientID, err)
		return nil, ErrClientNotFound
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, req.TenantID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to fetch services: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch services: %v", ErrInternal, err)
	}
	catalog := indexServices(services)
	warnMissingServices(uc.logger, "CreateAppointment", req.ServiceIDs, catalog)

	var professional *domain.Professional
	if req.ProfessionalID != nil {
		professional, err = uc.professionalRepo.GetByID(ctx, req.TenantID, *req.ProfessionalID)
		if err != nil {
			uc.logger.Warn("CreateAppointment: professional id=%d not found: %v", *req.ProfessionalID, err)
			return nil, ErrProfessionalNotFound
		}
		if err := validateProfessionalServices(professional, req.ServiceIDs); err != nil {
			uc.logger.Warn("CreateAppointment: %v", err)
			return nil, err
		}
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		checkResult, err := uc.checkAvailability(txCtx, req, professional, catalog)
		if err != nil {
			return err
		}

		if !checkResult.Available {
			switch checkResult.Reason {
			case availability.ReasonConflict:
				uc.logger.Warn("CreateAppointment: slot conflicts with appointment id=%d", checkResult.Conflicting.ID)
				return &ConflictError{Conflicting: checkResult.Conflicting}
			default:
				uc.logger.Warn("CreateAppointment: requested time is outside business hours")
				return ErrOutsideBusinessHours
			}
		}

		appt := &domain.Appointment{
			TenantID:        req.TenantID,
			ClientID:        client.ID,
			ClientName:      client.Name,
			ProfessionalID:  req.ProfessionalID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: checkResult.DurationMinutes,
			Status:          domain.StatusScheduled,
			ServiceIDs:      req.ServiceIDs,
			ServiceNames:    serviceNames(req.ServiceIDs, catalog),
			TotalPrice:      totalEffectivePrice(req.ServiceIDs, catalog, today),
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	uc.notify(ctx, result)

	return toResponse(result), nil
}

// checkAvailability loads the schedule context under the transaction (the
// day's appointments are read FOR UPDATE) and runs the availability engine.
func (uc *UseCase) checkAvailability(
	ctx context.Context,
	req *Request,
	professional *domain.Professional,
	catalog map[int64]*domain.Service,
) (availability.Result, error) {
	weekday := int(req.Date.Weekday())

	hoursConfigured, err := uc.businessHoursRepo.HasAny(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check business hours presence: %v", err)
		return availability.Result{}, fmt.Errorf("%w: failed to check business hours: %v", ErrInternal, err)
	}

	dayRows, err := uc.businessHoursRepo.GetByTenantAndDay(ctx, req.TenantID, weekday)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to fetch business hours: %v", err)
		return availability.Result{}, fmt.Errorf("%w: failed to fetch business hours: %v", ErrInternal, err)
	}

	existing, err := uc.appointmentRepo.GetByTenantWithFilter(ctx, domain.TenantAppointmentsFilter{
		TenantID:         req.TenantID,
		Date:             &req.Date,
		IncludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to fetch appointments: %v", err)
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
		ProfessionalID:  req.ProfessionalID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		ServiceIDs:      req.ServiceIDs,
	}

	return availability.Check(cand, cctx), nil
}

// notify delivers the booked event, best-effort.
func (uc *UseCase) notify(ctx context.Context, appt *domain.Appointment) {
	event := notifier.AppointmentEvent{
		Event:    notifier.EventAppointmentBooked,
		TenantID: appt.TenantID,
		Appointment: notifier.AppointmentSummary{
			ID:         appt.ID,
			ClientName: appt.ClientName,
			Date:       appt.Date.Format(domain.DateFormat),
			Time:       appt.StartTime.String(),
		},
	}

	if err := uc.notifierClient.Send(ctx, event); err != nil {
		uc.logger.Error("CreateAppointment: webhook delivery failed for appointment id=%d: %v", appt.ID, err)
	}
}

// indexServices builds the catalog lookup the availability engine expects.
func indexServices(services []*domain.Service) map[int64]*domain.Service {
	catalog := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		catalog[svc.ID] = svc
	}
	return catalog
}

// warnMissingServices logs ids the catalog could not resolve. Booking
// proceeds with default durations for them; see the availability engine.
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
// resolved services on the given date. Unresolvable services contribute
// nothing to the price.
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
