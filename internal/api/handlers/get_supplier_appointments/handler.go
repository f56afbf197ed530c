package get_supplier_appointments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
)

const msgInvalidSupplierID = "некорректный ID поставщика"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/suppliers/{supplierId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	supplierID, err := strconv.ParseInt(vars["supplierId"], 10, 64)
	if err != nil || supplierID <= 0 {
		h.logger.Warn("GET /suppliers/{id}/appointments - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	result, err := h.service.GetBySupplier(r.Context(), supplierID)
	if err != nil {
		h.logger.Error("GET /suppliers/{id}/appointments - Failed to get appointments: supplier_id=%d, error=%v",
			supplierID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /suppliers/{id}/appointments - Retrieved successfully: supplier_id=%d, count=%d",
		supplierID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
