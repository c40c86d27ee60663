package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	parsed, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return parsed
}

func hoursRow(t *testing.T, start, end string, active bool) *domain.BusinessHours {
	t.Helper()
	return &domain.BusinessHours{
		TenantID:  1,
		DayOfWeek: 1,
		StartTime: ts(t, start),
		EndTime:   ts(t, end),
		Active:    active,
	}
}

func TestIsOpenFor(t *testing.T) {
	splitShift := func(t *testing.T) []*domain.BusinessHours {
		return []*domain.BusinessHours{
			hoursRow(t, "09:00", "12:00", true),
			hoursRow(t, "13:00", "18:00", true),
		}
	}

	tests := []struct {
		name     string
		start    string
		duration int
		rows     func(t *testing.T) []*domain.BusinessHours
		expected bool
	}{
		{
			name:  "fits inside the morning shift",
			start: "10:00", duration: 45,
			rows:     splitShift,
			expected: true,
		},
		{
			name:  "fits inside the afternoon shift",
			start: "13:00", duration: 300,
			rows:     splitShift,
			expected: true,
		},
		{
			name:  "straddling the lunch gap is rejected",
			start: "12:30", duration: 30,
			rows:     splitShift,
			expected: false,
		},
		{
			name:  "spanning morning end into lunch is rejected",
			start: "11:30", duration: 60,
			rows:     splitShift,
			expected: false,
		},
		{
			name:  "ends exactly at shift end",
			start: "17:00", duration: 60,
			rows:     splitShift,
			expected: true,
		},
		{
			name:  "inactive rows are ignored",
			start: "10:00", duration: 30,
			rows: func(t *testing.T) []*domain.BusinessHours {
				return []*domain.BusinessHours{hoursRow(t, "09:00", "18:00", false)}
			},
			expected: false,
		},
		{
			name:  "no rows means closed",
			start: "10:00", duration: 30,
			rows: func(t *testing.T) []*domain.BusinessHours {
				return nil
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsOpenFor(ts(t, tt.start), tt.duration, tt.rows(t))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestScheduleAllows(t *testing.T) {
	entries := []domain.ScheduleEntry{
		{DayOfWeek: 1, StartTime: ts(t, "08:00"), EndTime: ts(t, "14:00")},
	}

	assert.True(t, ScheduleAllows(ts(t, "08:00"), 60, entries))
	assert.True(t, ScheduleAllows(ts(t, "13:00"), 60, entries))
	assert.False(t, ScheduleAllows(ts(t, "13:30"), 60, entries))
	assert.False(t, ScheduleAllows(ts(t, "10:00"), 30, nil))
}
