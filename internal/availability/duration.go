package availability

import "github.com/rafaelruch/agendapro-sub002/internal/domain"

// TotalDuration sums the durations of the given services in minutes.
// A record without a positive duration counts as the 60-minute default.
// Returns 0 for an empty list; the caller decides what a service-less
// appointment defaults to (see Check).
func TotalDuration(services []*domain.Service) int {
	total := 0
	for _, svc := range services {
		if svc == nil || svc.DurationMinutes <= 0 {
			total += domain.DefaultDurationMinutes
			continue
		}
		total += svc.DurationMinutes
	}
	return total
}

// DurationForServiceIDs resolves service ids against the catalog and sums
// their durations. An id the catalog cannot resolve counts as the 60-minute
// default rather than failing, keeping booking resilient to partially
// deleted catalog data.
func DurationForServiceIDs(serviceIDs []int64, catalog map[int64]*domain.Service) int {
	total := 0
	for _, id := range serviceIDs {
		svc, ok := catalog[id]
		if !ok || svc == nil || svc.DurationMinutes <= 0 {
			total += domain.DefaultDurationMinutes
			continue
		}
		total += svc.DurationMinutes
	}
	return total
}
