package get_day_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WPS-DockService/internal/domain"
)

type fakeScheduleRepo struct {
	weeklyRules []*domain.WeeklyRule
	exceptions  []*domain.DateException
	weeklyErr   error
	excErr      error

	gotWeekday int
}

func (f *fakeScheduleRepo) GetWeeklyRulesForWeekday(_ context.Context, weekday int) ([]*domain.WeeklyRule, error) {
	f.gotWeekday = weekday
	return f.weeklyRules, f.weeklyErr
}

func (f *fakeScheduleRepo) ListDateExceptions(_ context.Context, _ time.Time) ([]*domain.DateException, error) {
	return f.exceptions, f.excErr
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func TestUseCase_Execute(t *testing.T) {
	date := mustDate(t, "2025-06-05") // четверг

	scheduleRepo := &fakeScheduleRepo{
		weeklyRules: []*domain.WeeklyRule{
			{DayOfWeek: nil, Time: "12:00", IsAvailable: false, Reason: "Almoço"},
		},
	}
	appointmentRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 7, Time: "09:00", Status: domain.StatusScheduled},
		},
	}

	uc := NewUseCase(scheduleRepo, appointmentRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{Date: date})
	require.NoError(t, err)

	assert.Equal(t, int(time.Thursday), scheduleRepo.gotWeekday)
	assert.Equal(t, date, resp.Date)
	require.Len(t, resp.Slots, len(domain.BookableHours))

	lunch := findSlot(t, resp.Slots, "12:00")
	assert.False(t, lunch.IsAvailable)

	occupied := findSlot(t, resp.Slots, "09:00")
	assert.True(t, occupied.IsOccupied)
}

func TestUseCase_Execute_ZeroDate(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RepoErrors(t *testing.T) {
	date := mustDate(t, "2025-06-05")
	boom := errors.New("db down")

	tests := []struct {
		name            string
		scheduleRepo    *fakeScheduleRepo
		appointmentRepo *fakeAppointmentRepo
	}{
		{
			name:            "weekly rules error",
			scheduleRepo:    &fakeScheduleRepo{weeklyErr: boom},
			appointmentRepo: &fakeAppointmentRepo{},
		},
		{
			name:            "exceptions error",
			scheduleRepo:    &fakeScheduleRepo{excErr: boom},
			appointmentRepo: &fakeAppointmentRepo{},
		},
		{
			name:            "appointments error",
			scheduleRepo:    &fakeScheduleRepo{},
			appointmentRepo: &fakeAppointmentRepo{err: boom},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.scheduleRepo, tt.appointmentRepo, nopLogger{})
			_, err := uc.Execute(context.Background(), Request{Date: date})
			assert.ErrorIs(t, err, ErrInternal)
		})
	}
}
