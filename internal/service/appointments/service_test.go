package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelruch/agendapro-sub002/internal/domain"
	appointmentRepo "github.com/rafaelruch/agendapro-sub002/internal/infra/storage/appointment"
	"github.com/rafaelruch/agendapro-sub002/internal/integrations/notifier"
	"github.com/rafaelruch/agendapro-sub002/internal/service/appointments/models"
	"github.com/rafaelruch/agendapro-sub002/pkg/ptr"
	"github.com/rafaelruch/agendapro-sub002/pkg/types"
)

type fakeRepo struct {
	byID       map[int64]*domain.Appointment
	lastFilter domain.TenantAppointmentsFilter
	listed     []*domain.Appointment
	cancelled  bool
	newStatus  *domain.AppointmentStatus
}

func (f *fakeRepo) GetByID(_ context.Context, _, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	stored := *appt
	return &stored, nil
}

func (f *fakeRepo) GetByTenantWithFilter(_ context.Context, filter domain.TenantAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.listed, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _, id int64, status domain.AppointmentStatus) error {
	f.newStatus = &status
	f.byID[id].Status = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, _, id int64, reason string) error {
	f.cancelled = true
	appt := f.byID[id]
	appt.Status = domain.StatusCancelled
	appt.CancellationReason = &reason
	now := time.Now()
	appt.CancelledAt = &now
	return nil
}

type fakeNotifier struct {
	events []notifier.AppointmentEvent
}

func (f *fakeNotifier) Send(_ context.Context, event notifier.AppointmentEvent) error {
	f.events = append(f.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func scheduledAppointment(t *testing.T) *domain.Appointment {
	t.Helper()
	return &domain.Appointment{
		ID:              7,
		TenantID:        1,
		ClientID:        5,
		ClientName:      "Maria Souza",
		Date:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 45,
		Status:          domain.StatusScheduled,
	}
}

func newService(t *testing.T) (*Service, *fakeRepo, *fakeNotifier) {
	t.Helper()
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{7: scheduledAppointment(t)}}
	n := &fakeNotifier{}
	return NewService(repo, n, nopLogger{}), repo, n
}

func TestGetByID(t *testing.T) {
	svc, _, _ := newService(t)

	resp, err := svc.GetByID(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.GetByID(context.Background(), 1, 999)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_StatusFilter(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.listed = []*domain.Appointment{scheduledAppointment(t)}

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		TenantID: 1,
		Status:   ptr.Ptr("scheduled"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusScheduled, *repo.lastFilter.Status)
}

func TestList_UnknownStatusRejected(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		TenantID: 1,
		Status:   ptr.Ptr("pending"),
	})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCancel(t *testing.T) {
	svc, repo, n := newService(t)

	resp, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		TenantID:           1,
		AppointmentID:      7,
		CancellationReason: "cliente desmarcou",
	})
	require.NoError(t, err)

	assert.True(t, repo.cancelled)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "cliente desmarcou", *resp.CancellationReason)

	require.Len(t, n.events, 1)
	assert.Equal(t, notifier.EventAppointmentCancelled, n.events[0].Event)
	assert.Equal(t, "Maria Souza", n.events[0].Appointment.ClientName)
}

func TestCancel_EmptyReasonRejected(t *testing.T) {
	svc, repo, _ := newService(t)

	_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		TenantID:           1,
		AppointmentID:      7,
		CancellationReason: "  ",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, repo.cancelled)
}

func TestCancel_CompletedRejected(t *testing.T) {
	svc, repo, n := newService(t)
	repo.byID[7].Status = domain.StatusCompleted

	_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		TenantID:           1,
		AppointmentID:      7,
		CancellationReason: "motivo",
	})
	require.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, n.events)
}

func TestUpdateStatus_Confirm(t *testing.T) {
	svc, repo, _ := newService(t)

	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		TenantID:      1,
		AppointmentID: 7,
		Status:        "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, repo.newStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.newStatus)
}

func TestUpdateStatus_CompletedIsTerminal(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.byID[7].Status = domain.StatusCompleted

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		TenantID:      1,
		AppointmentID: 7,
		Status:        "confirmed",
	})
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_CancellationGoesThroughCancel(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		TenantID:      1,
		AppointmentID: 7,
		Status:        "cancelled",
	})
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		TenantID:      1,
		AppointmentID: 7,
		Status:        "done",
	})
	require.ErrorIs(t, err, ErrInvalidStatus)
}
