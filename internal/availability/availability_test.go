package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/ptr"
)

func TestCheckAvailableOnOpenDay(t *testing.T) {
	// Monday 09:00-18:00, no existing appointments, services totaling 45min.
	cctx := Context{
		BusinessHours: []*domain.BusinessHours{
			hoursRow(t, "09:00", "18:00", true),
		},
		HoursConfigured: true,
		Services: map[int64]*domain.Service{
			1: {ID: 1, DurationMinutes: 30},
			2: {ID: 2, DurationMinutes: 15},
		},
	}
	cand := Candidate{
		Date:       testDate,
		StartTime:  ts(t, "10:00"),
		ServiceIDs: []int64{1, 2},
	}

	result := Check(cand, cctx)
	assert.True(t, result.Available)
	assert.Equal(t, 45, result.DurationMinutes)
}

func TestCheckRejectsInactiveDay(t *testing.T) {
	cctx := Context{
		BusinessHours: []*domain.BusinessHours{
			hoursRow(t, "09:00", "18:00", false),
		},
		HoursConfigured: true,
	}
	cand := Candidate{Date: testDate, StartTime: ts(t, "10:00"), ServiceIDs: []int64{1}}

	result := Check(cand, cctx)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonOutsideBusinessHours, result.Reason)
}

func TestCheckReportsConflictDetails(t *testing.T) {
	existing := appt(t, 42, "14:00", 60, domain.StatusConfirmed, nil)

	cctx := Context{
		BusinessHours:   []*domain.BusinessHours{hoursRow(t, "09:00", "18:00", true)},
		HoursConfigured: true,
		Appointments:    []*domain.Appointment{existing},
	}
	cand := Candidate{Date: testDate, StartTime: ts(t, "14:30"), DurationMinutes: 30}

	result := Check(cand, cctx)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonConflict, result.Reason)
	require.NotNil(t, result.Conflicting)
	assert.Equal(t, int64(42), result.Conflicting.ID)
	assert.Equal(t, "Maria Souza", result.Conflicting.ClientName)
}

func TestCheckBusinessHoursBeforeConflict(t *testing.T) {
	// Outside hours wins over a would-be conflict.
	existing := appt(t, 1, "20:00", 60, domain.StatusScheduled, nil)

	cctx := Context{
		BusinessHours:   []*domain.BusinessHours{hoursRow(t, "09:00", "18:00", true)},
		HoursConfigured: true,
		Appointments:    []*domain.Appointment{existing},
	}
	cand := Candidate{Date: testDate, StartTime: ts(t, "20:00"), DurationMinutes: 60}

	result := Check(cand, cctx)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonOutsideBusinessHours, result.Reason)
	assert.Nil(t, result.Conflicting)
}

func TestCheckDurationDefaultsWithoutServices(t *testing.T) {
	cctx := Context{
		BusinessHours:   []*domain.BusinessHours{hoursRow(t, "09:00", "18:00", true)},
		HoursConfigured: true,
	}
	cand := Candidate{Date: testDate, StartTime: ts(t, "10:00")}

	result := Check(cand, cctx)
	assert.True(t, result.Available)
	assert.Equal(t, domain.DefaultDurationMinutes, result.DurationMinutes)
}

func TestCheckDurationDefaultAppliesToHoursGate(t *testing.T) {
	// 17:30 + default 60min spills past closing.
	cctx := Context{
		BusinessHours:   []*domain.BusinessHours{hoursRow(t, "09:00", "18:00", true)},
		HoursConfigured: true,
	}
	cand := Candidate{Date: testDate, StartTime: ts(t, "17:30")}

	result := Check(cand, cctx)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonOutsideBusinessHours, result.Reason)
}

func TestCheckUnconfiguredTenantPolicy(t *testing.T) {
	cand := Candidate{Date: testDate, StartTime: ts(t, "10:00"), DurationMinutes: 30}

	closed := Check(cand, Context{HoursConfigured: false})
	assert.False(t, closed.Available)
	assert.Equal(t, ReasonOutsideBusinessHours, closed.Reason)

	open := Check(cand, Context{HoursConfigured: false, AllowUnconfiguredHours: true})
	assert.True(t, open.Available)
}

func TestCheckProfessionalScheduleOverridesTenantHours(t *testing.T) {
	profID := ptr.Ptr(int64(5))

	cctx := Context{
		// Tenant open all day; professional only works mornings.
		BusinessHours:   []*domain.BusinessHours{hoursRow(t, "09:00", "18:00", true)},
		HoursConfigured: true,
		ProfessionalSchedule: []domain.ScheduleEntry{
			{DayOfWeek: 1, StartTime: ts(t, "09:00"), EndTime: ts(t, "12:00")},
		},
		ProfessionalConfigured: true,
	}

	morning := Candidate{Date: testDate, StartTime: ts(t, "10:00"), DurationMinutes: 60, ProfessionalID: profID}
	assert.True(t, Check(morning, cctx).Available)

	afternoon := Candidate{Date: testDate, StartTime: ts(t, "14:00"), DurationMinutes: 60, ProfessionalID: profID}
	result := Check(afternoon, cctx)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonOutsideBusinessHours, result.Reason)
}

func TestCheckProfessionalWithoutScheduleInheritsTenantHours(t *testing.T) {
	profID := ptr.Ptr(int64(5))

	cctx := Context{
		BusinessHours:          []*domain.BusinessHours{hoursRow(t, "09:00", "18:00", true)},
		HoursConfigured:        true,
		ProfessionalConfigured: false,
	}

	cand := Candidate{Date: testDate, StartTime: ts(t, "10:00"), DurationMinutes: 60, ProfessionalID: profID}
	assert.True(t, Check(cand, cctx).Available)
}

func TestTotalDuration(t *testing.T) {
	assert.Equal(t, 0, TotalDuration(nil))
	assert.Equal(t, 75, TotalDuration([]*domain.Service{
		{DurationMinutes: 30},
		{DurationMinutes: 45},
	}))
	// Missing duration falls back to 60 per service
	assert.Equal(t, 90, TotalDuration([]*domain.Service{
		{DurationMinutes: 30},
		{},
	}))
}

func TestDurationForServiceIDs(t *testing.T) {
	catalog := map[int64]*domain.Service{
		1: {ID: 1, DurationMinutes: 30},
	}

	// Unresolvable id degrades to the 60-minute default, not an error
	assert.Equal(t, 90, DurationForServiceIDs([]int64{1, 99}, catalog))
	assert.Equal(t, 0, DurationForServiceIDs(nil, catalog))
}
