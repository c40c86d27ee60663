package get_available_slots

import (
	"context"
	"fmt"
	"sort"

	"github.com/rafaelruch/agendapro-sub002/internal/availability"
	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// minutesPerDay bounds the synthetic window used for tenants running
// without configured hours.
const minutesPerDay = 24 * 60

// UseCase generates the bookable slots of a day: the relevant schedule's
// active windows are walked on a fixed grid and every position where the
// aggregated service duration fits without a conflict becomes a slot.
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

// window is a half-open working interval in minutes since midnight.
type window struct {
	start int
	end   int
}

// Execute lists the free slots of the requested day.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%d, date=%s, services=%v",
		req.TenantID, req.Date.Format(domain.DateFormat), req.ServiceIDs)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, req.TenantID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch services: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch services: %v", ErrInternal, err)
	}
	catalog := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		catalog[svc.ID] = svc
	}

	duration := availability.DurationForServiceIDs(req.ServiceIDs, catalog)
	if duration <= 0 {
		duration = domain.DefaultDurationMinutes
	}

	var professional *domain.Professional
	if req.ProfessionalID != nil {
		professional, err = uc.professionalRepo.GetByID(ctx, req.TenantID, *req.ProfessionalID)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found: %v", *req.ProfessionalID, err)
			return nil, ErrProfessionalNotFound
		}
	}

	windows, err := uc.scheduleWindows(ctx, req, professional)
	if err != nil {
		return nil, err
	}

	existing, err := uc.appointmentRepo.GetByTenantWithFilter(ctx, domain.TenantAppointmentsFilter{
		TenantID:         req.TenantID,
		Date:             &req.Date,
		IncludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
	}

	slots := uc.generateSlots(req, windows, duration, existing, catalog)

	uc.logger.Info("GetAvailableSlots: %d slots for tenant=%d on %s",
		len(slots), req.TenantID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date.Format(domain.DateFormat),
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

// scheduleWindows resolves the working windows that govern the day: the
// professional's schedule when one is named and configured, the tenant's
// active business hours otherwise. A tenant without any configured hours
// gets the whole day when the deployment policy allows it, nothing when
// it does not.
func (uc *UseCase) scheduleWindows(ctx context.Context, req *Request, professional *domain.Professional) ([]window, error) {
	weekday := int(req.Date.Weekday())

	if professional != nil && len(professional.Schedules) > 0 {
		windows := make([]window, 0)
		for _, entry := range professional.SchedulesFor(weekday) {
			w, ok := toWindow(entry.StartTime, entry.EndTime)
			if ok {
				windows = append(windows, w)
			}
		}
		return windows, nil
	}

	hoursConfigured, err := uc.businessHoursRepo.HasAny(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check business hours presence: %v", err)
		return nil, fmt.Errorf("%w: failed to check business hours: %v", ErrInternal, err)
	}

	if !hoursConfigured {
		if uc.allowUnconfiguredHours {
			return []window{{start: 0, end: minutesPerDay}}, nil
		}
		return nil, nil
	}

	dayRows, err := uc.businessHoursRepo.GetByTenantAndDay(ctx, req.TenantID, weekday)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch business hours: %v", ErrInternal, err)
	}

	windows := make([]window, 0, len(dayRows))
	for _, row := range dayRows {
		if !row.Active {
			continue
		}
		w, ok := toWindow(row.StartTime, row.EndTime)
		if ok {
			windows = append(windows, w)
		}
	}
	return windows, nil
}

// generateSlots walks each window on the slot grid and keeps the positions
// where the duration fits and no existing appointment conflicts.
func (uc *UseCase) generateSlots(
	req *Request,
	windows []window,
	duration int,
	existing []*domain.Appointment,
	catalog map[int64]*domain.Service,
) []Slot {
	sort.Slice(windows, func(i, j int) bool { return windows[i].start < windows[j].start })

	slots := make([]Slot, 0)
	for _, w := range windows {
		for start := w.start; start+duration <= w.end; start += domain.SlotStepMinutes {
			startTS, err := types.NewTimeStringFromMinutes(start)
			if err != nil {
				continue
			}
			endTS, err := types.NewTimeStringFromMinutes(start + duration)
			if err != nil {
				// A slot ending exactly at midnight has no HH:MM label.
				continue
			}

			cand := availability.Candidate{
				ProfessionalID:  req.ProfessionalID,
				Date:            req.Date,
				StartTime:       startTS,
				DurationMinutes: duration,
			}
			if availability.FindConflict(cand, existing, catalog) != nil {
				continue
			}
			slots = append(slots, Slot{StartTime: startTS, EndTime: endTS})
		}
	}
	return slots
}

func toWindow(start, end types.TimeString) (window, bool) {
	startMin, err := start.Minutes()
	if err != nil {
		return window{}, false
	}
	endMin, err := end.Minutes()
	if err != nil {
		return window{}, false
	}
	if endMin <= startMin {
		return window{}, false
	}
	return window{start: startMin, end: endMin}, true
}

func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	return nil
}
