package domain

import (
	"time"

	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// Professional is a staff member with an individual weekly schedule.
// When an appointment names a professional, availability is gated on that
// professional's schedule instead of the tenant-wide business hours.
type Professional struct {
	ID         int64
	TenantID   int64
	Name       string
	ServiceIDs []int64
	Schedules  []ScheduleEntry
	Active     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleEntry is one working interval of a professional on a weekday,
// analogous to BusinessHours.
type ScheduleEntry struct {
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
}

// SchedulesFor returns the professional's intervals on the given weekday.
func (p *Professional) SchedulesFor(dayOfWeek int) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0)
	for _, s := range p.Schedules {
		if s.DayOfWeek == dayOfWeek {
			entries = append(entries, s)
		}
	}
	return entries
}

// CanPerform reports whether the professional offers the given service.
func (p *Professional) CanPerform(serviceID int64) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
