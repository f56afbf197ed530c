package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WPS-DockService/internal/domain"
	scheduleRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/schedule"
	"github.com/m04kA/WPS-DockService/internal/service/schedule/models"
	"github.com/m04kA/WPS-DockService/pkg/ptr"
	"github.com/m04kA/WPS-DockService/pkg/types"
)

type fakeScheduleRepo struct {
	rules      []*domain.WeeklyRule
	exceptions []*domain.DateException
	deleteErr  error

	deletedRuleID int64
	deletedExcID  int64
}

func (f *fakeScheduleRepo) UpsertWeeklyRule(_ context.Context, rule *domain.WeeklyRule) (*domain.WeeklyRule, error) {
	out := *rule
	out.ID = 1
	f.rules = append(f.rules, &out)
	return &out, nil
}

func (f *fakeScheduleRepo) UpsertDateException(_ context.Context, exc *domain.DateException) (*domain.DateException, error) {
	out := *exc
	out.ID = 1
	f.exceptions = append(f.exceptions, &out)
	return &out, nil
}

func (f *fakeScheduleRepo) ListWeeklyRules(_ context.Context) ([]*domain.WeeklyRule, error) {
	return f.rules, nil
}

func (f *fakeScheduleRepo) ListDateExceptions(_ context.Context, _ time.Time) ([]*domain.DateException, error) {
	return f.exceptions, nil
}

func (f *fakeScheduleRepo) DeleteWeeklyRule(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedRuleID = id
	return nil
}

func (f *fakeScheduleRepo) DeleteDateException(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedExcID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func TestService_UpsertWeeklyRule_Success(t *testing.T) {
	s := NewService(&fakeScheduleRepo{}, nopLogger{})

	resp, err := s.UpsertWeeklyRule(context.Background(), &models.UpsertWeeklyRuleRequest{
		DayOfWeek:   nil,
		Time:        "12:00",
		IsAvailable: false,
		Reason:      "Almoço",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Nil(t, resp.DayOfWeek)
	assert.Equal(t, "12:00", resp.Time)
	assert.False(t, resp.IsAvailable)
}

func TestService_UpsertWeeklyRule_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpsertWeeklyRuleRequest
		wantErr error
	}{
		{
			name:    "day out of range",
			req:     &models.UpsertWeeklyRuleRequest{DayOfWeek: ptr.Ptr(7), Time: "12:00", IsAvailable: true},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative day",
			req:     &models.UpsertWeeklyRuleRequest{DayOfWeek: ptr.Ptr(-1), Time: "12:00", IsAvailable: true},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty time",
			req:     &models.UpsertWeeklyRuleRequest{IsAvailable: true},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "time outside catalog",
			req:     &models.UpsertWeeklyRuleRequest{Time: "06:00", IsAvailable: true},
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "blocking without reason",
			req:     &models.UpsertWeeklyRuleRequest{Time: "12:00", IsAvailable: false},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(&fakeScheduleRepo{}, nopLogger{})
			_, err := s.UpsertWeeklyRule(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_UpsertDateException_Success(t *testing.T) {
	s := NewService(&fakeScheduleRepo{}, nopLogger{})

	resp, err := s.UpsertDateException(context.Background(), &models.UpsertDateExceptionRequest{
		Date:        time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Time:        "10:00",
		IsAvailable: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-05", resp.Date)
	assert.True(t, resp.IsAvailable)
}

func TestService_UpsertDateException_RequiresDate(t *testing.T) {
	s := NewService(&fakeScheduleRepo{}, nopLogger{})

	_, err := s.UpsertDateException(context.Background(), &models.UpsertDateExceptionRequest{
		Time:        "10:00",
		IsAvailable: true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpsertDateException_BlockingRequiresReason(t *testing.T) {
	s := NewService(&fakeScheduleRepo{}, nopLogger{})

	_, err := s.UpsertDateException(context.Background(), &models.UpsertDateExceptionRequest{
		Date:        time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Time:        "10:00",
		IsAvailable: false,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_DeleteWeeklyRule(t *testing.T) {
	repo := &fakeScheduleRepo{}
	s := NewService(repo, nopLogger{})

	err := s.DeleteWeeklyRule(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.deletedRuleID)
}

func TestService_DeleteWeeklyRule_NotFound(t *testing.T) {
	s := NewService(&fakeScheduleRepo{deleteErr: scheduleRepo.ErrRuleNotFound}, nopLogger{})

	err := s.DeleteWeeklyRule(context.Background(), 5)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestService_ListWeeklyRules(t *testing.T) {
	repo := &fakeScheduleRepo{
		rules: []*domain.WeeklyRule{
			{ID: 1, DayOfWeek: nil, Time: types.TimeString("12:00"), IsAvailable: false, Reason: "Almoço"},
			{ID: 2, DayOfWeek: ptr.Ptr(5), Time: types.TimeString("17:00"), IsAvailable: false, Reason: "Expediente reduzido"},
		},
	}
	s := NewService(repo, nopLogger{})

	resp, err := s.ListWeeklyRules(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Rules, 2)
	assert.Nil(t, resp.Rules[0].DayOfWeek)
	assert.Equal(t, 5, *resp.Rules[1].DayOfWeek)
}
