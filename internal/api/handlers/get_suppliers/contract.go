package get_suppliers

import (
	"context"

	"github.com/m04kA/WPS-DockService/internal/service/suppliers/models"
)

type SupplierService interface {
	GetByID(ctx context.Context, id int64) (*models.SupplierResponse, error)
	List(ctx context.Context) (*models.SupplierListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
