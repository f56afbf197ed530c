package schedule

import (
	"context"
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
)

// ScheduleRepository интерфейс репозитория правил расписания
type ScheduleRepository interface {
	UpsertWeeklyRule(ctx context.Context, rule *domain.WeeklyRule) (*domain.WeeklyRule, error)
	UpsertDateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error)
	ListWeeklyRules(ctx context.Context) ([]*domain.WeeklyRule, error)
	ListDateExceptions(ctx context.Context, date time.Time) ([]*domain.DateException, error)
	DeleteWeeklyRule(ctx context.Context, id int64) error
	DeleteDateException(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
