package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WPS-DockService/internal/domain"
	appointmentRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/appointment"
	supplierRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/supplier"
	"github.com/m04kA/WPS-DockService/pkg/ptr"
	"github.com/m04kA/WPS-DockService/pkg/types"
)

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *a
	out.ID = 42
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeSupplierRepo struct {
	supplier *domain.Supplier
	err      error
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, _ int64) (*domain.Supplier, error) {
	return f.supplier, f.err
}

type fakeScheduleRepo struct {
	weeklyRules []*domain.WeeklyRule
	exceptions  []*domain.DateException
}

func (f *fakeScheduleRepo) GetWeeklyRulesForWeekday(_ context.Context, _ int) ([]*domain.WeeklyRule, error) {
	return f.weeklyRules, nil
}

func (f *fakeScheduleRepo) ListDateExceptions(_ context.Context, _ time.Time) ([]*domain.DateException, error) {
	return f.exceptions, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func activeSupplier() *domain.Supplier {
	return &domain.Supplier{
		ID:       1,
		TaxID:    "12.345.678/0001-90",
		Name:     "Transportes Andrade",
		IsActive: true,
	}
}

func validRequest() *Request {
	return &Request{
		SupplierID:    1,
		Date:          time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Time:          "10:00",
		PurchaseOrder: "PO-4511",
		TruckPlate:    "ABC-1D23",
		DriverName:    "João Pereira",
	}
}

func newTestUseCase(
	appointments *fakeAppointmentRepo,
	suppliers *fakeSupplierRepo,
	schedule *fakeScheduleRepo,
) *UseCase {
	uc := NewUseCase(appointments, suppliers, schedule, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	appointments := &fakeAppointmentRepo{}
	uc := newTestUseCase(appointments, &fakeSupplierRepo{supplier: activeSupplier()}, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Transportes Andrade", resp.SupplierName)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	require.NotNil(t, appointments.created)
	assert.Equal(t, types.TimeString("10:00"), appointments.created.Time)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"zero supplier", func(r *Request) { r.SupplierID = 0 }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"empty time", func(r *Request) { r.Time = "" }, ErrInvalidInput},
		{"malformed time", func(r *Request) { r.Time = "10h00" }, ErrInvalidInput},
		{"time outside catalog", func(r *Request) { r.Time = "19:00" }, ErrInvalidTimeSlot},
		{"half hour not in catalog", func(r *Request) { r.Time = "10:30" }, ErrInvalidTimeSlot},
		{"empty purchase order", func(r *Request) { r.PurchaseOrder = "  " }, ErrInvalidInput},
		{"empty truck plate", func(r *Request) { r.TruckPlate = "" }, ErrInvalidInput},
		{"empty driver name", func(r *Request) { r.DriverName = "" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeSupplierRepo{supplier: activeSupplier()}, &fakeScheduleRepo{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeSupplierRepo{supplier: activeSupplier()}, &fakeScheduleRepo{})
	req := validRequest()
	req.Date = time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_TodayNearMidnightNonUTCClock(t *testing.T) {
	// Дата запроса парсится в UTC, часы сервера идут в UTC-5: агендирование
	// на сегодняшний день незадолго до местной полуночи не считается прошлым.
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeSupplierRepo{supplier: activeSupplier()}, &fakeScheduleRepo{})
	uc.timeProvider = fixedTimeProvider{
		now: time.Date(2025, 6, 5, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60)),
	}
	req := validRequest()
	req.Date = time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestUseCase_Execute_SupplierNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeSupplierRepo{err: supplierRepo.ErrSupplierNotFound}, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestUseCase_Execute_SupplierInactive(t *testing.T) {
	inactive := activeSupplier()
	inactive.IsActive = false
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeSupplierRepo{supplier: inactive}, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSupplierInactive)
}

func TestUseCase_Execute_SlotBlockedByWeeklyRule(t *testing.T) {
	schedule := &fakeScheduleRepo{
		weeklyRules: []*domain.WeeklyRule{
			{DayOfWeek: nil, Time: "10:00", IsAvailable: false, Reason: "Manutenção"},
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeSupplierRepo{supplier: activeSupplier()}, schedule)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_ExceptionReopensBlockedSlot(t *testing.T) {
	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	schedule := &fakeScheduleRepo{
		weeklyRules: []*domain.WeeklyRule{
			{DayOfWeek: ptr.Ptr(int(time.Thursday)), Time: "10:00", IsAvailable: false, Reason: "Inventário"},
		},
		exceptions: []*domain.DateException{
			{Date: date, Time: "10:00", IsAvailable: true},
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeSupplierRepo{supplier: activeSupplier()}, schedule)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_SlotOccupied(t *testing.T) {
	appointments := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{ID: 5, Time: "10:00", Status: domain.StatusScheduled},
		},
	}
	uc := newTestUseCase(appointments, &fakeSupplierRepo{supplier: activeSupplier()}, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_ConcurrentInsertMapsToSlotNotAvailable(t *testing.T) {
	appointments := &fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}
	uc := newTestUseCase(appointments, &fakeSupplierRepo{supplier: activeSupplier()}, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
