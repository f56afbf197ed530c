package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
	"github.com/m04kA/WPS-DockService/internal/api/middleware"
	createAppointment "github.com/m04kA/WPS-DockService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные агендирования"
	msgInvalidTimeSlot    = "время вне рабочих часов склада (08:00-17:00)"
	msgPastDate           = "дата агендирования в прошлом"
	msgSlotNotAvailable   = "выбранный слот недоступен"
	msgSupplierNotFound   = "поставщик не найден"
	msgSupplierInactive   = "поставщик деактивирован"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: supplier_id=%d, date=%s, time=%s",
				req.SupplierID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrSupplierNotFound):
			h.logger.Warn("POST /appointments - Supplier not found: supplier_id=%d", req.SupplierID)
			handlers.RespondNotFound(w, msgSupplierNotFound)

		case errors.Is(err, createAppointment.ErrSupplierInactive):
			h.logger.Warn("POST /appointments - Supplier inactive: supplier_id=%d", req.SupplierID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSupplierInactive)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Past date: supplier_id=%d, date=%s", req.SupplierID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: supplier_id=%d, time=%s", req.SupplierID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: supplier_id=%d, error=%v", req.SupplierID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: supplier_id=%d, error=%v",
				req.SupplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	userID, _ := middleware.GetUserID(r.Context())
	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, supplier_id=%d, user_id=%d",
		result.ID, req.SupplierID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
