package catalog

import (
	"context"
	"fmt"

	"github.com/rafaelruch/agendapro-sub002/internal/availability"
	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/internal/service/catalog/models"
)

// Service exposes the tenant's service catalog with promotion-resolved
// prices, so clients see what a booking would actually cost today.
type Service struct {
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the catalog service.
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List returns the tenant's services. Inactive services are only included
// when includeInactive is set.
func (s *Service) List(ctx context.Context, tenantID int64, includeInactive bool) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services for tenant=%d, includeInactive=%t", tenantID, includeInactive)

	services, err := s.serviceRepo.ListByTenant(ctx, tenantID, !includeInactive)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	today := s.timeProvider.Now().Format(domain.DateFormat)

	list := make([]models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		list = append(list, models.ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Category:        svc.Category,
			Value:           svc.Value,
			EffectiveValue:  availability.EffectiveValue(svc, today),
			InPromotion:     availability.IsInPromotion(svc, today),
			DurationMinutes: svc.DurationMinutes,
			Active:          svc.Active,
		})
	}

	s.logger.Info("List: fetched %d services for tenant=%d", len(list), tenantID)
	return &models.ServiceListResponse{Services: list, Total: len(list)}, nil
}
