package get_week_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/internal/service/appointments"
	"github.com/m04kA/WPS-DockService/internal/service/appointments/models"
)

const (
	msgMissingWeekStart  = "параметр weekStart обязателен"
	msgInvalidWeekStart  = "некорректный формат weekStart, ожидается YYYY-MM-DD"
	msgInvalidSupplierID = "некорректный ID поставщика"
)

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

// Handle GET /api/v1/appointments
// Query params: weekStart (required, YYYY-MM-DD), supplierId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weekStartStr := r.URL.Query().Get("weekStart")
	if weekStartStr == "" {
		h.logger.Warn("GET /appointments - Missing weekStart")
		handlers.RespondBadRequest(w, msgMissingWeekStart)
		return
	}

	weekStart, err := time.Parse(domain.DateFormat, weekStartStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid weekStart: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekStart)
		return
	}

	req := &models.GetWeekRequest{WeekStart: weekStart}

	if supplierIDStr := r.URL.Query().Get("supplierId"); supplierIDStr != "" {
		supplierID, err := strconv.ParseInt(supplierIDStr, 10, 64)
		if err != nil || supplierID <= 0 {
			h.logger.Warn("GET /appointments - Invalid supplier ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSupplierID)
			return
		}
		req.SupplierID = &supplierID
	}

	result, err := h.service.GetWeek(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeekStart)

		default:
			h.logger.Error("GET /appointments - Failed to get week appointments: week_start=%s, error=%v",
				weekStartStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Week retrieved successfully: week_start=%s, count=%d",
		weekStartStr, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
