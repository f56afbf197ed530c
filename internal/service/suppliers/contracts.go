package suppliers

import (
	"context"

	"github.com/m04kA/WPS-DockService/internal/domain"
)

// SupplierRepository интерфейс репозитория поставщиков
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	List(ctx context.Context) ([]*domain.Supplier, error)
	Update(ctx context.Context, s *domain.Supplier) error
	SoftDelete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория агендирований
type AppointmentRepository interface {
	CountActiveBySupplier(ctx context.Context, supplierID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
