package update_supplier

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
	"github.com/m04kA/WPS-DockService/internal/service/suppliers"
	"github.com/m04kA/WPS-DockService/internal/service/suppliers/models"
)

const (
	msgInvalidSupplierID  = "некорректный ID поставщика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные поставщика"
	msgNotFound           = "поставщик не найден"
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

// Handle PUT /api/v1/suppliers/{supplierId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	supplierID, err := strconv.ParseInt(vars["supplierId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /suppliers/{id} - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	var req models.UpdateSupplierRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /suppliers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), supplierID, &req)
	if err != nil {
		switch {
		case errors.Is(err, suppliers.ErrSupplierNotFound):
			h.logger.Warn("PUT /suppliers/{id} - Supplier not found: supplier_id=%d", supplierID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, suppliers.ErrInvalidInput):
			h.logger.Warn("PUT /suppliers/{id} - Invalid input: supplier_id=%d, error=%v", supplierID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /suppliers/{id} - Failed to update supplier: supplier_id=%d, error=%v",
				supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /suppliers/{id} - Supplier updated successfully: supplier_id=%d", supplierID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
