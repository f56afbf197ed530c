package create_supplier

import (
	"errors"
	"net/http"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
	"github.com/m04kA/WPS-DockService/internal/service/suppliers"
	"github.com/m04kA/WPS-DockService/internal/service/suppliers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные поставщика"
	msgDuplicateTaxID     = "поставщик с таким CNPJ уже зарегистрирован"
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

// Handle POST /api/v1/suppliers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSupplierRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /suppliers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, suppliers.ErrDuplicateTaxID):
			h.logger.Warn("POST /suppliers - Duplicate tax ID: tax_id=%s", req.TaxID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateTaxID)

		case errors.Is(err, suppliers.ErrInvalidInput):
			h.logger.Warn("POST /suppliers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /suppliers - Failed to register supplier: tax_id=%s, error=%v", req.TaxID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /suppliers - Supplier registered successfully: supplier_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
