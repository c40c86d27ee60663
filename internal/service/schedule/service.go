package schedule

import (
	"context"
	"fmt"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/internal/service/schedule/models"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// Service manages the tenant's weekly business hours. Replacing a weekday
// is transactional: the old rows and the new ones never coexist.
type Service struct {
	hoursRepo BusinessHoursRepository
	txManager TransactionManager
	logger    Logger
}

// NewService creates the schedule service.
func NewService(hoursRepo BusinessHoursRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetWeek returns the tenant's configured hours grouped by weekday.
func (s *Service) GetWeek(ctx context.Context, tenantID int64) (*models.WeekResponse, error) {
	s.logger.Info("GetWeek: fetching business hours for tenant=%d", tenantID)

	rows, err := s.hoursRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeek(rows), nil
}

// ReplaceDay validates and replaces every interval of one weekday.
// An empty entry list clears the day (the tenant is closed).
func (s *Service) ReplaceDay(ctx context.Context, req *models.ReplaceDayRequest) (*models.DayResponse, error) {
	s.logger.Info("ReplaceDay: tenant=%d, day=%d, entries=%d", req.TenantID, req.DayOfWeek, len(req.Entries))

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		s.logger.Warn("ReplaceDay: dayOfWeek=%d out of range", req.DayOfWeek)
		return nil, ErrInvalidDayOfWeek
	}

	rows, err := s.toDomainRows(req)
	if err != nil {
		s.logger.Warn("ReplaceDay: %v", err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.hoursRepo.ReplaceForDay(txCtx, req.TenantID, req.DayOfWeek, rows)
	})
	if err != nil {
		s.logger.Error("ReplaceDay: failed for tenant=%d, day=%d: %v", req.TenantID, req.DayOfWeek, err)
		return nil, fmt.Errorf("%w: ReplaceDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceDay: replaced day=%d for tenant=%d", req.DayOfWeek, req.TenantID)
	return &models.DayResponse{DayOfWeek: req.DayOfWeek, Entries: req.Entries}, nil
}

// toDomainRows validates each entry: well-formed HH:MM times, start < end.
func (s *Service) toDomainRows(req *models.ReplaceDayRequest) ([]*domain.BusinessHours, error) {
	rows := make([]*domain.BusinessHours, 0, len(req.Entries))
	for _, entry := range req.Entries {
		start, err := types.NewTimeStringFromString(entry.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: startTime %q", ErrInvalidTimeRange, entry.StartTime)
		}
		end, err := types.NewTimeStringFromString(entry.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: endTime %q", ErrInvalidTimeRange, entry.EndTime)
		}
		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: startTime %s must be before endTime %s",
				ErrInvalidTimeRange, entry.StartTime, entry.EndTime)
		}

		rows = append(rows, &domain.BusinessHours{
			TenantID:  req.TenantID,
			DayOfWeek: req.DayOfWeek,
			StartTime: start,
			EndTime:   end,
			Active:    entry.Active,
		})
	}
	return rows, nil
}
