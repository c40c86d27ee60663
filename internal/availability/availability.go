// Package availability implements the appointment availability engine:
// half-open interval math, service duration aggregation, promotional price
// resolution, the business-hours gate, the conflict detector and the
// orchestrating Check entry point. Everything in this package is pure and
// synchronous; callers pre-fetch the data and pass it in, which keeps every
// rule unit-testable without a database.
package availability

import "github.com/rafaelruch/agendapro-sub002/internal/domain"

// Reason explains why a candidate was rejected.
type Reason string

const (
	// ReasonOutsideBusinessHours: the requested interval does not fit any
	// active shift of the relevant schedule.
	ReasonOutsideBusinessHours Reason = "outside_business_hours"

	// ReasonConflict: the requested interval overlaps an existing
	// non-cancelled appointment on the same timeline.
	ReasonConflict Reason = "conflict"
)

// Context carries the pre-fetched data one availability check needs.
type Context struct {
	// BusinessHours holds the tenant rows for the candidate's weekday,
	// active and inactive alike.
	BusinessHours []*domain.BusinessHours

	// HoursConfigured is true when the tenant has configured at least one
	// business-hours row on any weekday. A tenant that never configured
	// hours is governed by AllowUnconfiguredHours; a day whose rows exist
	// but are all inactive is always closed.
	HoursConfigured bool

	// AllowUnconfiguredHours is the deployment policy for tenants without
	// any configured hours (scheduling.allow_unconfigured_hours).
	AllowUnconfiguredHours bool

	// ProfessionalSchedule holds the named professional's entries for the
	// candidate's weekday. Consulted only when the candidate names a
	// professional and that professional has a configured schedule.
	ProfessionalSchedule []domain.ScheduleEntry

	// ProfessionalConfigured is true when the named professional has at
	// least one schedule entry on any weekday. Without one the professional
	// inherits the tenant business hours.
	ProfessionalConfigured bool

	// Appointments holds the tenant's same-day appointments, cancelled rows
	// included; filtering by status is the conflict detector's job.
	Appointments []*domain.Appointment

	// Services is the catalog lookup used for duration aggregation.
	Services map[int64]*domain.Service
}

// Result is the discriminated outcome of an availability check. Business
// rejections are values, not errors: callers must branch on Available.
type Result struct {
	Available   bool
	Reason      Reason
	Conflicting *domain.Appointment

	// DurationMinutes is the effective duration the check ran with, after
	// service aggregation and defaulting. Callers persist this value.
	DurationMinutes int
}

// Check decides whether the candidate appointment may be booked.
// Evaluation order: resolve the effective duration, gate against the
// relevant schedule, then scan for conflicts.
func Check(cand Candidate, cctx Context) Result {
	duration := resolveDuration(cand, cctx.Services)
	cand.DurationMinutes = duration

	if !isOpen(cand, cctx) {
		return Result{
			Available:       false,
			Reason:          ReasonOutsideBusinessHours,
			DurationMinutes: duration,
		}
	}

	if conflict := FindConflict(cand, cctx.Appointments, cctx.Services); conflict != nil {
		return Result{
			Available:       false,
			Reason:          ReasonConflict,
			Conflicting:     conflict,
			DurationMinutes: duration,
		}
	}

	return Result{Available: true, DurationMinutes: duration}
}

// resolveDuration applies the duration rules: an explicit positive duration
// wins, then the aggregate of the attached services, then the 60-minute
// default for a service-less candidate.
func resolveDuration(cand Candidate, catalog map[int64]*domain.Service) int {
	if cand.DurationMinutes > 0 {
		return cand.DurationMinutes
	}
	if len(cand.ServiceIDs) > 0 {
		return DurationForServiceIDs(cand.ServiceIDs, catalog)
	}
	return domain.DefaultDurationMinutes
}

// isOpen gates the candidate against the professional schedule when one is
// named and configured, otherwise against the tenant business hours.
func isOpen(cand Candidate, cctx Context) bool {
	if cand.ProfessionalID != nil && cctx.ProfessionalConfigured {
		return ScheduleAllows(cand.StartTime, cand.DurationMinutes, cctx.ProfessionalSchedule)
	}

	if !cctx.HoursConfigured {
		return cctx.AllowUnconfiguredHours
	}
	return IsOpenFor(cand.StartTime, cand.DurationMinutes, cctx.BusinessHours)
}
