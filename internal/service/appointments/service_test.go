package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WPS-DockService/internal/domain"
	appointmentRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/appointment"
	"github.com/m04kA/WPS-DockService/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	byID       map[int64]*domain.Appointment
	week       []*domain.Appointment
	checkInErr error

	deletedID int64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeAppointmentRepo) GetByWeek(_ context.Context, _ domain.WeekFilter) ([]*domain.Appointment, error) {
	return f.week, nil
}

func (f *fakeAppointmentRepo) GetBySupplier(_ context.Context, _ int64) ([]*domain.Appointment, error) {
	return f.week, nil
}

func (f *fakeAppointmentRepo) SetCheckedIn(_ context.Context, id int64, at time.Time) error {
	if f.checkInErr != nil {
		return f.checkInErr
	}
	a := f.byID[id]
	a.Status = domain.StatusCheckedIn
	a.CheckInTime = &at
	return nil
}

func (f *fakeAppointmentRepo) SetCheckedOut(_ context.Context, id int64, at time.Time) error {
	a := f.byID[id]
	a.Status = domain.StatusCheckedOut
	a.CheckOutTime = &at
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	delete(f.byID, id)
	return nil
}

type fakeSupplierRepo struct {
	supplier *domain.Supplier
	err      error
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, _ int64) (*domain.Supplier, error) {
	return f.supplier, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func scheduledAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:            9,
		SupplierID:    1,
		Date:          time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Time:          "10:00",
		Status:        domain.StatusScheduled,
		PurchaseOrder: "PO-4511",
		TruckPlate:    "ABC-1D23",
		DriverName:    "João Pereira",
	}
}

func newTestService(appointments *fakeAppointmentRepo, suppliers *fakeSupplierRepo) *Service {
	s := NewService(appointments, suppliers, nopLogger{})
	s.timeProvider = fixedTimeProvider{now: time.Date(2025, 6, 5, 10, 12, 0, 0, time.UTC)}
	return s
}

func TestService_CheckIn_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{9: scheduledAppointment()}}
	suppliers := &fakeSupplierRepo{supplier: &domain.Supplier{
		ID:       1,
		TaxID:    "12.345.678/0001-90",
		Name:     "Transportes Andrade",
		IsActive: true,
	}}
	s := newTestService(repo, suppliers)

	resp, err := s.CheckIn(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCheckedIn), resp.Appointment.Status)
	require.NotNil(t, resp.Appointment.CheckInTime)

	require.NotNil(t, resp.ERPPayload)
	assert.Equal(t, int64(9), resp.ERPPayload.AppointmentID)
	assert.Equal(t, "12.345.678/0001-90", resp.ERPPayload.SupplierTaxID)
	assert.Equal(t, "Transportes Andrade", resp.ERPPayload.SupplierName)
	assert.Equal(t, "PO-4511", resp.ERPPayload.PurchaseOrder)
	assert.Equal(t, "2025-06-05", resp.ERPPayload.ScheduledDate)
	assert.Equal(t, "10:00", resp.ERPPayload.ScheduledTime)
	assert.Equal(t, string(domain.StatusCheckedIn), resp.ERPPayload.Status)
	require.NotNil(t, resp.ERPPayload.CheckInTime)
	assert.Equal(t, "2025-06-05T10:12:00Z", *resp.ERPPayload.CheckInTime)
}

func TestService_CheckIn_DoubleCheckIn(t *testing.T) {
	checkedIn := scheduledAppointment()
	checkedIn.Status = domain.StatusCheckedIn
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{9: checkedIn}}
	s := newTestService(repo, &fakeSupplierRepo{})

	_, err := s.CheckIn(context.Background(), 9)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_CheckIn_ConcurrentTransition(t *testing.T) {
	repo := &fakeAppointmentRepo{
		byID:       map[int64]*domain.Appointment{9: scheduledAppointment()},
		checkInErr: appointmentRepo.ErrNoTransition,
	}
	s := newTestService(repo, &fakeSupplierRepo{})

	_, err := s.CheckIn(context.Background(), 9)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_CheckIn_NotFound(t *testing.T) {
	s := newTestService(&fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}}, &fakeSupplierRepo{})

	_, err := s.CheckIn(context.Background(), 9)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_CheckOut_Success(t *testing.T) {
	checkedIn := scheduledAppointment()
	checkedIn.Status = domain.StatusCheckedIn
	in := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)
	checkedIn.CheckInTime = &in
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{9: checkedIn}}
	s := newTestService(repo, &fakeSupplierRepo{})

	resp, err := s.CheckOut(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCheckedOut), resp.Status)
	require.NotNil(t, resp.CheckOutTime)
}

func TestService_CheckOut_FromScheduled(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{9: scheduledAppointment()}}
	s := newTestService(repo, &fakeSupplierRepo{})

	_, err := s.CheckOut(context.Background(), 9)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Delete_Scheduled(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{9: scheduledAppointment()}}
	s := newTestService(repo, &fakeSupplierRepo{})

	err := s.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), repo.deletedID)
}

func TestService_Delete_CheckedInForbidden(t *testing.T) {
	checkedIn := scheduledAppointment()
	checkedIn.Status = domain.StatusCheckedIn
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{9: checkedIn}}
	s := newTestService(repo, &fakeSupplierRepo{})

	err := s.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrCannotDelete)
}

func TestService_Delete_CheckedOutAllowed(t *testing.T) {
	done := scheduledAppointment()
	done.Status = domain.StatusCheckedOut
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{9: done}}
	s := newTestService(repo, &fakeSupplierRepo{})

	err := s.Delete(context.Background(), 9)
	assert.NoError(t, err)
}

func TestService_GetWeek(t *testing.T) {
	repo := &fakeAppointmentRepo{week: []*domain.Appointment{scheduledAppointment()}}
	s := newTestService(repo, &fakeSupplierRepo{})

	resp, err := s.GetWeek(context.Background(), &models.GetWeekRequest{
		WeekStart: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "2025-06-05", resp.Appointments[0].Date)
}

func TestService_GetWeek_ZeroWeekStart(t *testing.T) {
	s := newTestService(&fakeAppointmentRepo{}, &fakeSupplierRepo{})

	_, err := s.GetWeek(context.Background(), &models.GetWeekRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetBySupplier_DeactivatedSupplierKeepsHistory(t *testing.T) {
	// Деактивация поставщика блокирует только новые агендирования:
	// существующие записи остаются доступными для просмотра.
	second := scheduledAppointment()
	second.ID = 10
	second.Time = "14:00"
	repo := &fakeAppointmentRepo{week: []*domain.Appointment{scheduledAppointment(), second}}
	deactivated := &domain.Supplier{ID: 1, Name: "Transportes Andrade", IsActive: false}
	s := newTestService(repo, &fakeSupplierRepo{supplier: deactivated})

	resp, err := s.GetBySupplier(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, int64(1), resp.Appointments[0].SupplierID)
	assert.Equal(t, "14:00", resp.Appointments[1].Time)
}

func TestService_GetBySupplier_InvalidID(t *testing.T) {
	s := newTestService(&fakeAppointmentRepo{}, &fakeSupplierRepo{})

	_, err := s.GetBySupplier(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
