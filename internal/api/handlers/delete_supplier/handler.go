package delete_supplier

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
	"github.com/m04kA/WPS-DockService/internal/service/suppliers"
)

const (
	msgInvalidSupplierID     = "некорректный ID поставщика"
	msgNotFound              = "поставщик не найден"
	msgHasActiveAppointments = "у поставщика есть активные агендирования"
)

type Handler struct {
	service SupplierService
	logger  Logger
}

func NewHandler(service SupplierService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/suppliers/{supplierId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	supplierID, err := strconv.ParseInt(vars["supplierId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /suppliers/{id} - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	if err := h.service.Delete(r.Context(), supplierID); err != nil {
		switch {
		case errors.Is(err, suppliers.ErrSupplierNotFound):
			h.logger.Warn("DELETE /suppliers/{id} - Supplier not found: supplier_id=%d", supplierID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, suppliers.ErrHasActiveAppointments):
			h.logger.Warn("DELETE /suppliers/{id} - Has active appointments: supplier_id=%d", supplierID)
			handlers.RespondError(w, http.StatusConflict, msgHasActiveAppointments)

		default:
			h.logger.Error("DELETE /suppliers/{id} - Failed to delete supplier: supplier_id=%d, error=%v",
				supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /suppliers/{id} - Supplier deleted successfully: supplier_id=%d", supplierID)
	handlers.RespondNoContent(w)
}
