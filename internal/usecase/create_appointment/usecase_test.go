package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	"github.com/rafaelruch/agendapro-sub002/internal/integrations/notifier"
	"github.com/rafaelruch/agendapro-sub002/pkg/ptr"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

// --- fakes ---

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	created   *domain.Appointment
	createErr error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *appt
	stored.ID = 101
	stored.CreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
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
	err  error
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _, _ int64) (*domain.Professional, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.prof, nil
}

type fakeClientRepo struct {
	client *domain.Client
	err    error
}

func (f *fakeClientRepo) GetByID(_ context.Context, _, _ int64) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

type fakeNotifier struct {
	events []notifier.AppointmentEvent
	err    error
}

func (f *fakeNotifier) Send(_ context.Context, event notifier.AppointmentEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- fixture ---

type fixture struct {
	appointments  *fakeAppointmentRepo
	businessHours *fakeBusinessHoursRepo
	services      *fakeServiceRepo
	professionals *fakeProfessionalRepo
	clients       *fakeClientRepo
	notifier      *fakeNotifier
	uc            *UseCase
}

// testDate is a Monday.
var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func mondayHours(t *testing.T) []*domain.BusinessHours {
	t.Helper()
	return []*domain.BusinessHours{
		{
			ID:        1,
			TenantID:  1,
			DayOfWeek: 1,
			StartTime: mustTime(t, "09:00"),
			EndTime:   mustTime(t, "18:00"),
			Active:    true,
		},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		appointments:  &fakeAppointmentRepo{},
		businessHours: &fakeBusinessHoursRepo{rows: mondayHours(t), hasAny: true},
		services: &fakeServiceRepo{services: []*domain.Service{
			{ID: 10, TenantID: 1, Name: "Corte Feminino", Value: 80, DurationMinutes: 45, Active: true},
		}},
		professionals: &fakeProfessionalRepo{},
		clients:       &fakeClientRepo{client: &domain.Client{ID: 5, TenantID: 1, Name: "Maria Souza"}},
		notifier:      &fakeNotifier{},
	}
	f.uc = NewUseCase(
		f.appointments,
		f.businessHours,
		f.services,
		f.professionals,
		f.clients,
		f.notifier,
		&fakeTxManager{},
		false,
		nopLogger{},
	)
	f.uc.timeProvider = &fixedClock{now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	return f
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		TenantID:   1,
		ClientID:   5,
		Date:       testDate,
		StartTime:  mustTime(t, "10:00"),
		ServiceIDs: []int64{10},
	}
}

// --- tests ---

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "Maria Souza", resp.ClientName)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, 45, resp.DurationMinutes, "duration comes from the service catalog")
	assert.Equal(t, []string{"Corte Feminino"}, resp.ServiceNames)
	assert.Equal(t, 80.0, resp.TotalPrice)

	require.Len(t, f.notifier.events, 1)
	event := f.notifier.events[0]
	assert.Equal(t, notifier.EventAppointmentBooked, event.Event)
	assert.Equal(t, int64(101), event.Appointment.ID)
	assert.Equal(t, "Maria Souza", event.Appointment.ClientName)
	assert.Equal(t, "2025-03-10", event.Appointment.Date)
	assert.Equal(t, "10:00", event.Appointment.Time)
}

func TestExecute_Conflict(t *testing.T) {
	f := newFixture(t)
	f.appointments.existing = []*domain.Appointment{
		{
			ID:              42,
			TenantID:        1,
			ClientID:        7,
			ClientName:      "Ana Lima",
			Date:            testDate,
			StartTime:       mustTime(t, "10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	require.Error(t, err)

	var conflictErr *ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, int64(42), conflictErr.Conflicting.ID)
	assert.Equal(t, "Ana Lima", conflictErr.Conflicting.ClientName)

	assert.Nil(t, f.appointments.created, "nothing persisted on conflict")
	assert.Empty(t, f.notifier.events, "no webhook on conflict")
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	f.appointments.existing = []*domain.Appointment{
		{
			ID:              42,
			TenantID:        1,
			Date:            testDate,
			StartTime:       mustTime(t, "10:00"),
			DurationMinutes: 60,
			Status:          domain.StatusCancelled,
		},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.StartTime = mustTime(t, "19:00")

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrOutsideBusinessHours)
	assert.Nil(t, f.appointments.created)
	assert.Empty(t, f.notifier.events)
}

func TestExecute_ClientNotFound(t *testing.T) {
	f := newFixture(t)
	f.clients.client = nil
	f.clients.err = errors.New("sql: no rows in result set")

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	f := newFixture(t)
	f.professionals.err = errors.New("sql: no rows in result set")

	req := validRequest(t)
	req.ProfessionalID = ptr.Ptr(int64(3))

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotOffered(t *testing.T) {
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

func TestExecute_DefaultDurationWithoutServices(t *testing.T) {
	f := newFixture(t)
	f.services.services = nil

	req := validRequest(t)
	req.ServiceIDs = nil

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
}

func TestExecute_ExplicitDurationWins(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.DurationMinutes = 90

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
}

func TestExecute_PromotionalPriceApplied(t *testing.T) {
	f := newFixture(t)
	f.services.services = []*domain.Service{
		{
			ID:                 10,
			TenantID:           1,
			Name:               "Corte Feminino",
			Value:              80,
			DurationMinutes:    45,
			Active:             true,
			PromotionalValue:   ptr.Ptr(60.0),
			PromotionStartDate: ptr.Ptr("2025-03-01"),
			PromotionEndDate:   ptr.Ptr("2025-03-31"),
		},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, 60.0, resp.TotalPrice, "booking date falls inside the promotion window")
}

func TestExecute_PromotionExpired(t *testing.T) {
	f := newFixture(t)
	f.uc.timeProvider = &fixedClock{now: time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)}
	f.services.services = []*domain.Service{
		{
			ID:                 10,
			TenantID:           1,
			Name:               "Corte Feminino",
			Value:              80,
			DurationMinutes:    45,
			Active:             true,
			PromotionalValue:   ptr.Ptr(60.0),
			PromotionStartDate: ptr.Ptr("2025-03-01"),
			PromotionEndDate:   ptr.Ptr("2025-03-31"),
		},
	}

	req := validRequest(t)
	req.Date = time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC) // Monday after the promotion

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 80.0, resp.TotalPrice)
}

func TestExecute_UnconfiguredTenantClosedByDefault(t *testing.T) {
	f := newFixture(t)
	f.businessHours.rows = nil
	f.businessHours.hasAny = false

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_ValidationRejectsBadInput(t *testing.T) {
	f := newFixture(t)

	req := validRequest(t)
	req.TenantID = 0

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_WebhookFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("connection refused")

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}
