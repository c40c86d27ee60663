package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	appointmentRepo "github.com/rafaelruch/agendapro-sub002/internal/infra/storage/appointment"
	"github.com/rafaelruch/agendapro-sub002/internal/integrations/notifier"
	"github.com/rafaelruch/agendapro-sub002/internal/service/appointments/models"
)

// Service handles the read and lifecycle side of appointments: fetching,
// listing with filters, cancellation and confirm/complete transitions.
// Booking and rescheduling live in their own use cases because they need
// the availability engine.
type Service struct {
	appointmentRepo AppointmentRepository
	notifierClient  Notifier
	logger          Logger
}

// NewService creates the appointment lifecycle service.
func NewService(
	appointmentRepo AppointmentRepository,
	notifierClient Notifier,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifierClient:  notifierClient,
		logger:          logger,
	}
}

// GetByID fetches one appointment of the tenant.
func (s *Service) GetByID(ctx context.Context, tenantID, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for tenant=%d", id, tenantID)

	appt, err := s.appointmentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found for tenant=%d", id, tenantID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List fetches the tenant's appointments with optional date, professional
// and status filters. Cancelled rows are excluded unless explicitly asked
// for or selected by status.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("List: fetching appointments for tenant=%d", req.TenantID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.ProfessionalID != nil {
		logMsg += fmt.Sprintf(", professional=%d", *req.ProfessionalID)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status=%s for tenant=%d", *req.Status, req.TenantID)
		return nil, fmt.Errorf("%w: unknown status", ErrInvalidStatus)
	}

	appts, err := s.appointmentRepo.GetByTenantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for tenant=%d", len(appts), req.TenantID)
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel cancels a scheduled or confirmed appointment and fires the
// cancellation webhook.
func (s *Service) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d for tenant=%d", req.AppointmentID, req.TenantID)

	if strings.TrimSpace(req.CancellationReason) == "" {
		s.logger.Warn("Cancel: empty cancellation reason for appointment id=%d", req.AppointmentID)
		return nil, fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, req.TenantID, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found for tenant=%d", req.AppointmentID, req.TenantID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d has status %s and cannot be cancelled", appt.ID, appt.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, req.TenantID, req.AppointmentID, req.CancellationReason); err != nil {
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.appointmentRepo.GetByID(ctx, req.TenantID, req.AppointmentID)
	if err != nil {
		s.logger.Error("Cancel: failed to re-fetch appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", cancelled.ID)

	event := notifier.AppointmentEvent{
		Event:    notifier.EventAppointmentCancelled,
		TenantID: cancelled.TenantID,
		Appointment: notifier.AppointmentSummary{
			ID:         cancelled.ID,
			ClientName: cancelled.ClientName,
			Date:       cancelled.Date.Format(domain.DateFormat),
			Time:       cancelled.StartTime.String(),
		},
	}
	if err := s.notifierClient.Send(ctx, event); err != nil {
		s.logger.Error("Cancel: webhook delivery failed for appointment id=%d: %v", cancelled.ID, err)
	}

	return models.FromDomainAppointment(cancelled), nil
}

// UpdateStatus applies a confirm or complete transition.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d -> %s for tenant=%d", req.AppointmentID, req.Status, req.TenantID)

	next, ok := domain.ParseStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: unknown status=%s", req.Status)
		return nil, ErrInvalidStatus
	}

	appt, err := s.appointmentRepo.GetByID(ctx, req.TenantID, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found for tenant=%d", req.AppointmentID, req.TenantID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !appt.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s forbidden for appointment id=%d",
			appt.Status, next, appt.ID)
		return nil, ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, req.TenantID, req.AppointmentID, next); err != nil {
		s.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	appt.Status = next

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", appt.ID, next)
	return models.FromDomainAppointment(appt), nil
}
