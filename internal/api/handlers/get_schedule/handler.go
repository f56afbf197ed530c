package get_schedule

import (
	"net/http"
	"time"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
	"github.com/m04kA/WPS-DockService/internal/domain"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleWeeklyRules GET /api/v1/schedule/weekly-rules
func (h *Handler) HandleWeeklyRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListWeeklyRules(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/weekly-rules - Failed to list rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/weekly-rules - Rules retrieved successfully: count=%d", len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDateExceptions GET /api/v1/schedule/date-exceptions
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) HandleDateExceptions(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/date-exceptions - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/date-exceptions - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListDateExceptions(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /schedule/date-exceptions - Failed to list exceptions: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/date-exceptions - Exceptions retrieved successfully: date=%s, count=%d",
		dateStr, len(result.Exceptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
