package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
)

// ScheduleRepository интерфейс репозитория правил расписания
type ScheduleRepository interface {
	GetWeeklyRulesForWeekday(ctx context.Context, weekday int) ([]*domain.WeeklyRule, error)
	ListDateExceptions(ctx context.Context, date time.Time) ([]*domain.DateException, error)
}

// AppointmentRepository интерфейс репозитория агендирований
type AppointmentRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
