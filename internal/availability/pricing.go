package availability

import "github.com/rafaelruch/agendapro-sub002/internal/domain"

// Promotional pricing resolution. The reference date is always passed in
// explicitly as a canonical YYYY-MM-DD string so callers stay deterministic
// and testable; lexicographic comparison is valid for that format.

// IsInPromotion reports whether the service's promotional price applies on
// the given date. All three promotional fields must be present and the date
// must fall inside the inclusive window; a window whose start equals its end
// is a valid single-day promotion.
func IsInPromotion(svc *domain.Service, today string) bool {
	if !svc.HasPromotion() {
		return false
	}
	return *svc.PromotionStartDate <= today && today <= *svc.PromotionEndDate
}

// EffectiveValue returns the price actually charged on the given date:
// the promotional value while the promotion is active, the standard value
// otherwise.
func EffectiveValue(svc *domain.Service, today string) float64 {
	if IsInPromotion(svc, today) {
		return *svc.PromotionalValue
	}
	return svc.Value
}
