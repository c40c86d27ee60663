package update_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/pkg/ptr"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// --- fakes ---

type fakeAppointmentRepo struct {
	byID     map[int64]*domain.Appointment
	existing []*domain.Appointment
	updated  *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, errors.New("appointment not found")
	}
	stored := *appt
	return &stored, nil
}

func (f *fakeAppointmentRepo) GetByTenantWithFilter(_ context.Context, _ domain.TenantAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appt *domain.Appointment) error {
	f.updated = appt
	return nil
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
	err  error
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _, _ int64) (*domain.Professional, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.prof, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- fixture ---

// testDate is a Monday.
var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

type fixture struct {
	appointments  *fakeAppointmentRepo
	businessHours *fakeBusinessHoursRepo
	services      *fakeServiceRepo
	professionals *fakeProfessionalRepo
	uc            *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	current := &domain.Appointment{
		ID:              7,
		TenantID:        1,
		ClientID:        5,
		ClientName:      "Maria Souza",
		Date:            testDate,
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 45,
		Status:          domain.StatusScheduled,
		ServiceIDs:      []int64{10},
	}

	f := &fixture{
		appointments: &fakeAppointmentRepo{
			byID:     map[int64]*domain.Appointment{7: current},
			existing: []*domain.Appointment{current},
		},
		businessHours: &fakeBusinessHoursRepo{
			rows: []*domain.BusinessHours{
				{TenantID: 1, DayOfWeek: 1, StartTime: mustTime(t, "09:00"), EndTime: mustTime(t, "18:00"), Active: true},
			},
			hasAny: true,
		},
		services: &fakeServiceRepo{services: []*domain.Service{
			{ID: 10, TenantID: 1, Name: "Corte Feminino", Value: 80, DurationMinutes: 45, Active: true},
		}},
		professionals: &fakeProfessionalRepo{},
	}
	f.uc = NewUseCase(
		f.appointments,
		f.businessHours,
		f.services,
		f.professionals,
		&fakeTxManager{},
		false,
		nopLogger{},
	)
	return f
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		TenantID:      1,
		AppointmentID: 7,
		Date:          testDate,
		StartTime:     mustTime(t, "11:00"),
		ServiceIDs:    []int64{10},
	}
}

// --- tests ---

func TestExecute_Reschedule(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "11:00", resp.StartTime.String())
	assert.Equal(t, 45, resp.DurationMinutes)
	require.NotNil(t, f.appointments.updated)
	assert.Equal(t, "11:00", f.appointments.updated.StartTime.String())
}

func TestExecute_OwnSlotDoesNotBlock(t *testing.T) {
	f := newFixture(t)

	// Move the appointment 15 minutes later; the new interval still overlaps
	// the appointment's own current row, which must be excluded.
	req := validRequest(t)
	req.StartTime = mustTime(t, "10:15")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "10:15", resp.StartTime.String())
}

func TestExecute_OtherAppointmentBlocks(t *testing.T) {
	f := newFixture(t)
	f.appointments.existing = append(f.appointments.existing, &domain.Appointment{
		ID:              8,
		TenantID:        1,
		ClientName:      "Ana Lima",
		Date:            testDate,
		StartTime:       mustTime(t, "11:00"),
		DurationMinutes: 60,
		Status:          domain.StatusScheduled,
	})

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	require.Error(t, err)

	var conflictErr *ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, int64(8), conflictErr.Conflicting.ID)
	assert.Nil(t, f.appointments.updated)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.AppointmentID = 999

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_CompletedNotEditable(t *testing.T) {
	f := newFixture(t)
	f.appointments.byID[7].Status = domain.StatusCompleted

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrNotEditable)
	assert.Nil(t, f.appointments.updated)
}

func TestExecute_CancelledNotEditable(t *testing.T) {
	f := newFixture(t)
	f.appointments.byID[7].Status = domain.StatusCancelled

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrNotEditable)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.StartTime = mustTime(t, "17:30") // 45 min does not fit before 18:00

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_AssignProfessional(t *testing.T) {
	f := newFixture(t)
	f.professionals.prof = &domain.Professional{
		ID:         3,
		TenantID:   1,
		Name:       "Carla Dias",
		ServiceIDs: []int64{10},
	}

	req := validRequest(t)
	req.ProfessionalID = ptr.Ptr(int64(3))

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.ProfessionalID)
	assert.Equal(t, int64(3), *resp.ProfessionalID)
}

func TestExecute_ProfessionalCannotPerformService(t *testing.T) {
	f := newFixture(t)
	f.professionals.prof = &domain.Professional{
		ID:         3,
		TenantID:   1,
		Name:       "Carla Dias",
		ServiceIDs: []int64{99},
	}

	req := validRequest(t)
	req.ProfessionalID = ptr.Ptr(int64(3))

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrServiceNotOffered)
}
