package get_suppliers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
	"github.com/m04kA/WPS-DockService/internal/service/suppliers"
)

const (
	msgInvalidSupplierID = "некорректный ID поставщика"
	msgNotFound          = "поставщик не найден"
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

// HandleList GET /api/v1/suppliers
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /suppliers - Failed to list suppliers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /suppliers - Suppliers retrieved successfully: count=%d", len(result.Suppliers))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/suppliers/{supplierId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	supplierID, err := strconv.ParseInt(vars["supplierId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /suppliers/{id} - Invalid supplier ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	result, err := h.service.GetByID(r.Context(), supplierID)
	if err != nil {
		switch {
		case errors.Is(err, suppliers.ErrSupplierNotFound):
			h.logger.Warn("GET /suppliers/{id} - Supplier not found: supplier_id=%d", supplierID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /suppliers/{id} - Failed to get supplier: supplier_id=%d, error=%v", supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
