package update_supplier

import (
	"context"

	"github.com/m04kA/WPS-DockService/internal/service/suppliers/models"
)

type SupplierService interface {
	Update(ctx context.Context, id int64, req *models.UpdateSupplierRequest) (*models.SupplierResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
