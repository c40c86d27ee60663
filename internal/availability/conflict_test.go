package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/ptr"
)

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // a Monday

func appt(t *testing.T, id int64, start string, duration int, status domain.AppointmentStatus, professionalID *int64) *domain.Appointment {
	t.Helper()
	return &domain.Appointment{
		ID:              id,
		TenantID:        1,
		ClientID:        10,
		ClientName:      "Maria Souza",
		ProfessionalID:  professionalID,
		Date:            testDate,
		StartTime:       ts(t, start),
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestFindConflict(t *testing.T) {
	tests := []struct {
		name       string
		candidate  Candidate
		existing   []*domain.Appointment
		expectedID *int64
	}{
		{
			name: "simple overlap detected",
			candidate: Candidate{
				Date: testDate, StartTime: ts(t, "14:30"), DurationMinutes: 30,
			},
			existing: []*domain.Appointment{
				appt(t, 1, "14:00", 60, domain.StatusScheduled, nil),
			},
			expectedID: ptr.Ptr(int64(1)),
		},
		{
			name: "cancelled appointments never conflict",
			candidate: Candidate{
				Date: testDate, StartTime: ts(t, "14:00"), DurationMinutes: 60,
			},
			existing: []*domain.Appointment{
				appt(t, 1, "14:00", 60, domain.StatusCancelled, nil),
			},
			expectedID: nil,
		},
		{
			name: "half-open adjacency allowed",
			candidate: Candidate{
				Date: testDate, StartTime: ts(t, "11:00"), DurationMinutes: 30,
			},
			existing: []*domain.Appointment{
				appt(t, 1, "10:00", 60, domain.StatusConfirmed, nil),
			},
			expectedID: nil,
		},
		{
			name: "professional isolation",
			candidate: Candidate{
				Date: testDate, StartTime: ts(t, "14:00"), DurationMinutes: 60,
				ProfessionalID: ptr.Ptr(int64(2)),
			},
			existing: []*domain.Appointment{
				appt(t, 1, "14:00", 60, domain.StatusScheduled, ptr.Ptr(int64(1))),
			},
			expectedID: nil,
		},
		{
			name: "same professional blocks",
			candidate: Candidate{
				Date: testDate, StartTime: ts(t, "14:00"), DurationMinutes: 60,
				ProfessionalID: ptr.Ptr(int64(1)),
			},
			existing: []*domain.Appointment{
				appt(t, 1, "14:00", 60, domain.StatusScheduled, ptr.Ptr(int64(1))),
			},
			expectedID: ptr.Ptr(int64(1)),
		},
		{
			name: "unassigned candidate ignores professional appointments",
			candidate: Candidate{
				Date: testDate, StartTime: ts(t, "14:00"), DurationMinutes: 60,
			},
			existing: []*domain.Appointment{
				appt(t, 1, "14:00", 60, domain.StatusScheduled, ptr.Ptr(int64(1))),
			},
			expectedID: nil,
		},
		{
			name: "assigned candidate ignores unassigned appointments",
			candidate: Candidate{
				Date: testDate, StartTime: ts(t, "14:00"), DurationMinutes: 60,
				ProfessionalID: ptr.Ptr(int64(1)),
			},
			existing: []*domain.Appointment{
				appt(t, 1, "14:00", 60, domain.StatusScheduled, nil),
			},
			expectedID: nil,
		},
		{
			name: "different date never conflicts",
			candidate: Candidate{
				Date: testDate.AddDate(0, 0, 1), StartTime: ts(t, "14:00"), DurationMinutes: 60,
			},
			existing: []*domain.Appointment{
				appt(t, 1, "14:00", 60, domain.StatusScheduled, nil),
			},
			expectedID: nil,
		},
		{
			name: "editing excludes own prior record",
			candidate: Candidate{
				AppointmentID: ptr.Ptr(int64(1)),
				Date:          testDate, StartTime: ts(t, "14:00"), DurationMinutes: 60,
			},
			existing: []*domain.Appointment{
				appt(t, 1, "14:00", 60, domain.StatusScheduled, nil),
			},
			expectedID: nil,
		},
		{
			name: "editing still detects other conflicts",
			candidate: Candidate{
				AppointmentID: ptr.Ptr(int64(1)),
				Date:          testDate, StartTime: ts(t, "14:00"), DurationMinutes: 60,
			},
			existing: []*domain.Appointment{
				appt(t, 1, "14:00", 60, domain.StatusScheduled, nil),
				appt(t, 2, "14:30", 60, domain.StatusScheduled, nil),
			},
			expectedID: ptr.Ptr(int64(2)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict := FindConflict(tt.candidate, tt.existing, nil)
			if tt.expectedID == nil {
				assert.Nil(t, conflict)
			} else {
				require.NotNil(t, conflict)
				assert.Equal(t, *tt.expectedID, conflict.ID)
			}
		})
	}
}

func TestFindConflictDerivesDurationFromServices(t *testing.T) {
	catalog := map[int64]*domain.Service{
		7: {ID: 7, DurationMinutes: 90},
	}

	// Stored row without a duration: 90 minutes come from its service,
	// so 15:00 still falls inside it.
	existing := appt(t, 1, "14:00", 0, domain.StatusScheduled, nil)
	existing.ServiceIDs = []int64{7}

	cand := Candidate{Date: testDate, StartTime: ts(t, "15:00"), DurationMinutes: 30}
	conflict := FindConflict(cand, []*domain.Appointment{existing}, catalog)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(1), conflict.ID)
}

func TestFindConflictDefaultDurationForBareAppointment(t *testing.T) {
	// No stored duration and no services: the 60-minute default applies.
	existing := appt(t, 1, "14:00", 0, domain.StatusScheduled, nil)

	cand := Candidate{Date: testDate, StartTime: ts(t, "14:45"), DurationMinutes: 30}
	require.NotNil(t, FindConflict(cand, []*domain.Appointment{existing}, nil))

	after := Candidate{Date: testDate, StartTime: ts(t, "15:00"), DurationMinutes: 30}
	assert.Nil(t, FindConflict(after, []*domain.Appointment{existing}, nil))
}
