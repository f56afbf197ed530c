package delete_schedule_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/WPS-DockService/internal/api/handlers"
	"github.com/m04kA/WPS-DockService/internal/service/schedule"
)

const (
	msgInvalidRuleID      = "некорректный ID правила"
	msgRuleNotFound       = "правило не найдено"
	msgExceptionNotFound  = "исключение не найдено"
	msgInvalidExceptionID = "некорректный ID исключения"
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

// HandleWeeklyRule DELETE /api/v1/schedule/weekly-rules/{ruleId}
func (h *Handler) HandleWeeklyRule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ruleID, err := strconv.ParseInt(vars["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/weekly-rules/{ruleId} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.DeleteWeeklyRule(r.Context(), ruleID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrRuleNotFound):
			h.logger.Warn("DELETE /schedule/weekly-rules/{ruleId} - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("DELETE /schedule/weekly-rules/{ruleId} - Failed to delete rule: rule_id=%d, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/weekly-rules/{ruleId} - Rule deleted successfully: rule_id=%d", ruleID)
	handlers.RespondNoContent(w)
}

// HandleDateException DELETE /api/v1/schedule/date-exceptions/{exceptionId}
func (h *Handler) HandleDateException(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	exceptionID, err := strconv.ParseInt(vars["exceptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/date-exceptions/{exceptionId} - Invalid exception ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	if err := h.service.DeleteDateException(r.Context(), exceptionID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrRuleNotFound):
			h.logger.Warn("DELETE /schedule/date-exceptions/{exceptionId} - Exception not found: exception_id=%d", exceptionID)
			handlers.RespondNotFound(w, msgExceptionNotFound)

		default:
			h.logger.Error("DELETE /schedule/date-exceptions/{exceptionId} - Failed to delete exception: exception_id=%d, error=%v", exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/date-exceptions/{exceptionId} - Exception deleted successfully: exception_id=%d", exceptionID)
	handlers.RespondNoContent(w)
}
