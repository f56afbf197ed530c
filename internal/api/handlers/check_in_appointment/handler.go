package check_in_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
	"github.com/m04kA/WPS-DockService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID агендирования"
	msgNotFound             = "агендирование не найдено"
	msgInvalidTransition    = "check-in возможен только из статуса scheduled"
)

type Handler struct {
	service     AppointmentService
	erpNotifier ERPNotifier // nil, если интеграция с ERP выключена
	logger      Logger
}

func NewHandler(service AppointmentService, erpNotifier ERPNotifier, logger Logger) *Handler {
	return &Handler{
		service:     service,
		erpNotifier: erpNotifier,
		logger:      logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/check-in
// Статус фиксируется в БД до обращения к ERP: недоступность ERP
// не откатывает check-in, payload возвращается для повторной отправки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/check-in - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.CheckIn(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/check-in - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("POST /appointments/{id}/check-in - Invalid transition: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("POST /appointments/{id}/check-in - Failed to check in: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &CheckInResponse{
		Appointment: result.Appointment,
		ERPPayload:  result.ERPPayload,
		ERPDelivery: erpDisabled,
	}

	if h.erpNotifier != nil {
		if _, err := h.erpNotifier.NotifyCheckInWithGracefulDegradation(r.Context(), result.ERPPayload); err != nil {
			response.ERPDelivery = erpDegraded
		} else {
			response.ERPDelivery = erpDelivered
		}
	}

	h.logger.Info("POST /appointments/{id}/check-in - Checked in successfully: appointment_id=%d, erp=%s",
		appointmentID, response.ERPDelivery)
	handlers.RespondJSON(w, http.StatusOK, response)
}
