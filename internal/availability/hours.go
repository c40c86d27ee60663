package availability

import (
	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// IsOpenFor reports whether [start, start+duration) fits entirely inside a
// single active business-hours interval of the given weekday rows. Shifts
// are not unioned: a request straddling the gap between a morning and an
// afternoon shift is rejected even though both ends touch valid shifts.
// Zero active rows means closed.
func IsOpenFor(start types.TimeString, durationMinutes int, hoursForDay []*domain.BusinessHours) bool {
	startMin, err := start.Minutes()
	if err != nil {
		return false
	}

	for _, row := range hoursForDay {
		if row == nil || !row.Active {
			continue
		}
		if fitsWindow(startMin, durationMinutes, row.StartTime, row.EndTime) {
			return true
		}
	}
	return false
}

// ScheduleAllows is the per-professional counterpart of IsOpenFor, gating
// against a professional's own weekday schedule entries.
func ScheduleAllows(start types.TimeString, durationMinutes int, entries []domain.ScheduleEntry) bool {
	startMin, err := start.Minutes()
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if fitsWindow(startMin, durationMinutes, entry.StartTime, entry.EndTime) {
			return true
		}
	}
	return false
}

// fitsWindow checks containment of [startMin, startMin+duration) in the
// window delimited by the two clock times. Malformed window times close the
// window rather than failing the whole check.
func fitsWindow(startMin, duration int, windowStart, windowEnd types.TimeString) bool {
	winStart, err := windowStart.Minutes()
	if err != nil {
		return false
	}
	winEnd, err := windowEnd.Minutes()
	if err != nil {
		return false
	}
	return IsWithin(startMin, duration, winStart, winEnd)
}
