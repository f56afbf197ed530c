package upsert_weekly_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
	"github.com/m04kA/WPS-DockService/internal/service/schedule"
	"github.com/m04kA/WPS-DockService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные правила"
	msgInvalidTimeSlot    = "время вне рабочих часов склада (08:00-17:00)"
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

// Handle PUT /api/v1/schedule/weekly-rules
// Upsert: для пары (dayOfWeek, time) повторное сохранение заменяет правило
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertWeeklyRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/weekly-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertWeeklyRule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidTimeSlot):
			h.logger.Warn("PUT /schedule/weekly-rules - Invalid time slot: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/weekly-rules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /schedule/weekly-rules - Failed to save rule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/weekly-rules - Rule saved successfully: rule_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
