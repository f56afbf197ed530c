package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WPS-DockService/internal/domain"
	appointmentRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/appointment"
	"github.com/m04kA/WPS-DockService/pkg/ptr"
	"github.com/m04kA/WPS-DockService/pkg/types"
)

type fakeAppointmentRepo struct {
	current    *domain.Appointment
	getErr     error
	sameDay    []*domain.Appointment
	updateErr  error
	updated    *domain.Appointment
	slotsAsked bool
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.updated != nil {
		out := *f.updated
		return &out, nil
	}
	out := *f.current
	return &out, nil
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	f.slotsAsked = true
	return f.sameDay, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, a *domain.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	out := *a
	out.UpdatedAt = time.Now()
	f.updated = &out
	return nil
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

func newTestUseCase(appointments *fakeAppointmentRepo, schedule *fakeScheduleRepo) *UseCase {
	uc := NewUseCase(appointments, schedule, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_EditDetailsSkipsSlotCheck(t *testing.T) {
	appointments := &fakeAppointmentRepo{current: scheduledAppointment()}
	uc := newTestUseCase(appointments, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:         9,
		DriverName: ptr.Ptr("Maria Costa"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Costa", resp.DriverName)
	assert.Equal(t, types.TimeString("10:00"), resp.Time)
	assert.False(t, appointments.slotsAsked, "detail-only edits must not re-check the slot")
}

func TestUseCase_Execute_RescheduleChecksTargetSlot(t *testing.T) {
	appointments := &fakeAppointmentRepo{current: scheduledAppointment()}
	uc := newTestUseCase(appointments, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:   9,
		Time: ptr.Ptr(types.TimeString("14:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("14:00"), resp.Time)
	assert.True(t, appointments.slotsAsked)
}

func TestUseCase_Execute_RescheduleToBlockedSlot(t *testing.T) {
	appointments := &fakeAppointmentRepo{current: scheduledAppointment()}
	schedule := &fakeScheduleRepo{
		weeklyRules: []*domain.WeeklyRule{
			{DayOfWeek: nil, Time: "12:00", IsAvailable: false, Reason: "Almoço"},
		},
	}
	uc := newTestUseCase(appointments, schedule)

	_, err := uc.Execute(context.Background(), &Request{
		ID:   9,
		Time: ptr.Ptr(types.TimeString("12:00")),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_RescheduleToOccupiedSlot(t *testing.T) {
	appointments := &fakeAppointmentRepo{
		current: scheduledAppointment(),
		sameDay: []*domain.Appointment{
			{ID: 11, Time: "14:00", Status: domain.StatusScheduled},
		},
	}
	uc := newTestUseCase(appointments, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:   9,
		Time: ptr.Ptr(types.TimeString("14:00")),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_OwnSlotDoesNotConflict(t *testing.T) {
	// Перенос даты при том же часе: собственная запись не считается конфликтом.
	appointments := &fakeAppointmentRepo{
		current: scheduledAppointment(),
		sameDay: []*domain.Appointment{
			{ID: 9, Time: "10:00", Status: domain.StatusScheduled},
		},
	}
	uc := newTestUseCase(appointments, &fakeScheduleRepo{})

	newDate := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		ID:   9,
		Date: &newDate,
	})
	assert.NoError(t, err)
}

func TestUseCase_Execute_EditsAllowedInAnyStatus(t *testing.T) {
	// Сам движок правок статус не ограничивает: данные завершенного
	// агендирования можно поправить задним числом.
	checkedOut := scheduledAppointment()
	checkedOut.Status = domain.StatusCheckedOut
	appointments := &fakeAppointmentRepo{current: checkedOut}
	uc := newTestUseCase(appointments, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:         9,
		DriverName: ptr.Ptr("Maria Costa"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Costa", resp.DriverName)
	assert.Equal(t, string(domain.StatusCheckedOut), resp.Status)
}

func TestUseCase_Execute_ScheduledOnlyPolicy(t *testing.T) {
	checkedIn := scheduledAppointment()
	checkedIn.Status = domain.StatusCheckedIn
	appointments := &fakeAppointmentRepo{current: checkedIn}
	uc := newTestUseCase(appointments, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:                   9,
		DriverName:           ptr.Ptr("Maria Costa"),
		EnforceScheduledOnly: true,
	})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	past := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		appointments *fakeAppointmentRepo
		req          *Request
		wantErr      error
	}{
		{
			name:         "zero id",
			appointments: &fakeAppointmentRepo{current: scheduledAppointment()},
			req:          &Request{DriverName: ptr.Ptr("X")},
			wantErr:      ErrInvalidInput,
		},
		{
			name:         "no fields",
			appointments: &fakeAppointmentRepo{current: scheduledAppointment()},
			req:          &Request{ID: 9},
			wantErr:      ErrInvalidInput,
		},
		{
			name:         "time outside catalog",
			appointments: &fakeAppointmentRepo{current: scheduledAppointment()},
			req:          &Request{ID: 9, Time: ptr.Ptr(types.TimeString("07:00"))},
			wantErr:      ErrInvalidTimeSlot,
		},
		{
			name:         "not found",
			appointments: &fakeAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound},
			req:          &Request{ID: 9, DriverName: ptr.Ptr("X")},
			wantErr:      ErrAppointmentNotFound,
		},
		{
			name:         "past date",
			appointments: &fakeAppointmentRepo{current: scheduledAppointment()},
			req:          &Request{ID: 9, Date: &past},
			wantErr:      ErrInvalidDate,
		},
		{
			name:         "concurrent slot conflict",
			appointments: &fakeAppointmentRepo{current: scheduledAppointment(), updateErr: appointmentRepo.ErrSlotTaken},
			req:          &Request{ID: 9, Time: ptr.Ptr(types.TimeString("15:00"))},
			wantErr:      ErrSlotNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.appointments, &fakeScheduleRepo{})
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
