package appointments

import (
	"context"
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
)

// AppointmentRepository интерфейс репозитория агендирований
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByWeek(ctx context.Context, filter domain.WeekFilter) ([]*domain.Appointment, error)
	GetBySupplier(ctx context.Context, supplierID int64) ([]*domain.Appointment, error)
	SetCheckedIn(ctx context.Context, id int64, at time.Time) error
	SetCheckedOut(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

// SupplierRepository интерфейс репозитория поставщиков
type SupplierRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
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
