package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/ptr"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByTenantWithFilter(_ context.Context, _ domain.TenantAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeBusinessHoursRepo struct {
	rows   []*domain.BusinessHours
	hasAny bool
}

func (f *fakeBusinessHoursRepo) GetByTenantAndDay(_ context.Context, _ int64, _ int) ([]*domain.BusinessHours, error) {
	return f.rows, nil
}

func (f *fakeBusinessHoursRepo) HasAny(_ context.Context, _ int64) (bool, error) {
	return f.hasAny, nil
}

type fakeServiceRepo struct {
	services []*domain.Service
}

func (f *fakeServiceRepo) GetByIDs(_ context.Context, _ int64, _ []int64) ([]*domain.Service, error) {
	return f.services, nil
}

type fakeProfessionalRepo struct {
	prof *domain.Professional
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _, _ int64) (*domain.Professional, error) {
	return f.prof, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// testDate is a Monday.
var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func newOpenDayUseCase(t *testing.T, appts *fakeAppointmentRepo) *UseCase {
	t.Helper()
	return NewUseCase(
		appts,
		&fakeBusinessHoursRepo{
			rows: []*domain.BusinessHours{
				{TenantID: 1, DayOfWeek: 1, StartTime: mustTime(t, "09:00"), EndTime: mustTime(t, "18:00"), Active: true},
			},
			hasAny: true,
		},
		&fakeServiceRepo{services: []*domain.Service{
			{ID: 10, Name: "Corte", Value: 80, DurationMinutes: 45, Active: true},
		}},
		&fakeProfessionalRepo{},
		false,
		nopLogger{},
	)
}

func TestExecute_Available(t *testing.T) {
	uc := newOpenDayUseCase(t, &fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:   1,
		Date:       testDate,
		StartTime:  mustTime(t, "10:00"),
		ServiceIDs: []int64{10},
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.Reason)
	assert.Nil(t, resp.Conflicting)
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestExecute_ConflictCarriesSummary(t *testing.T) {
	uc := newOpenDayUseCase(t, &fakeAppointmentRepo{existing: []*domain.Appointment{
		{
			ID:              42,
			TenantID:        1,
			ClientName:      "Ana Lima",
			Date:            testDate,
			StartTime:       mustTime(t, "10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
	}})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:   1,
		Date:       testDate,
		StartTime:  mustTime(t, "10:30"),
		ServiceIDs: []int64{10},
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, "conflict", resp.Reason)
	require.NotNil(t, resp.Conflicting)
	assert.Equal(t, int64(42), resp.Conflicting.ID)
	assert.Equal(t, "Ana Lima", resp.Conflicting.ClientName)
	assert.Equal(t, "2025-03-10", resp.Conflicting.Date)
	assert.Equal(t, "10:00", resp.Conflicting.Time)
}

func TestExecute_OutsideHoursIsValueNotError(t *testing.T) {
	uc := newOpenDayUseCase(t, &fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:   1,
		Date:       testDate,
		StartTime:  mustTime(t, "19:00"),
		ServiceIDs: []int64{10},
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, "outside_business_hours", resp.Reason)
	assert.Nil(t, resp.Conflicting)
}

func TestExecute_SelfExclusionOnRecheck(t *testing.T) {
	uc := newOpenDayUseCase(t, &fakeAppointmentRepo{existing: []*domain.Appointment{
		{
			ID:              7,
			TenantID:        1,
			Date:            testDate,
			StartTime:       mustTime(t, "10:00"),
			DurationMinutes: 45,
			Status:          domain.StatusScheduled,
		},
	}})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:      1,
		AppointmentID: ptr.Ptr(int64(7)),
		Date:          testDate,
		StartTime:     mustTime(t, "10:15"),
		ServiceIDs:    []int64{10},
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_RejectsBadInput(t *testing.T) {
	uc := newOpenDayUseCase(t, &fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{TenantID: 0, Date: testDate, StartTime: mustTime(t, "10:00")})
	require.ErrorIs(t, err, ErrInvalidInput)
}
