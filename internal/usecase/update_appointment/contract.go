package update_appointment

import (
	"context"
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
)

// AppointmentRepository интерфейс репозитория агендирований
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
}

// ScheduleRepository интерфейс репозитория правил расписания
type ScheduleRepository interface {
	GetWeeklyRulesForWeekday(ctx context.Context, weekday int) ([]*domain.WeeklyRule, error)
	ListDateExceptions(ctx context.Context, date time.Time) ([]*domain.DateException, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
