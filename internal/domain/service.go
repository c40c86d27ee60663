package domain

import "time"

// Service represents a bookable service from the tenant catalog.
// Promotional fields are all-or-nothing: either none of PromotionalValue,
// PromotionStartDate and PromotionEndDate is set, or all three are, with
// PromotionEndDate >= PromotionStartDate. Dates are inclusive YYYY-MM-DD.
type Service struct {
	ID              int64
	TenantID        int64
	Name            string
	Category        string
	Value           float64
	DurationMinutes int
	Active          bool

	PromotionalValue   *float64
	PromotionStartDate *string
	PromotionEndDate   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPromotion reports whether all promotional fields are present.
func (s *Service) HasPromotion() bool {
	return s.PromotionalValue != nil && s.PromotionStartDate != nil && s.PromotionEndDate != nil
}
