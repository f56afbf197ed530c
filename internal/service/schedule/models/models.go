package models

import (
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/pkg/types"
)

// Request модели

// UpsertWeeklyRuleRequest запрос на сохранение недельного правила.
// DayOfWeek: 0=воскресенье .. 6=суббота, nil = все дни недели.
type UpsertWeeklyRuleRequest struct {
	DayOfWeek   *int             `json:"dayOfWeek"`
	Time        types.TimeString `json:"time"`
	IsAvailable bool             `json:"isAvailable"`
	Reason      string           `json:"reason,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *UpsertWeeklyRuleRequest) ToDomain() *domain.WeeklyRule {
	return &domain.WeeklyRule{
		DayOfWeek:   r.DayOfWeek,
		Time:        r.Time,
		IsAvailable: r.IsAvailable,
		Reason:      r.Reason,
	}
}

// UpsertDateExceptionRequest запрос на сохранение исключения на дату
type UpsertDateExceptionRequest struct {
	Date        time.Time        `json:"date"`
	Time        types.TimeString `json:"time"`
	IsAvailable bool             `json:"isAvailable"`
	Reason      string           `json:"reason,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *UpsertDateExceptionRequest) ToDomain() *domain.DateException {
	return &domain.DateException{
		Date:        r.Date,
		Time:        r.Time,
		IsAvailable: r.IsAvailable,
		Reason:      r.Reason,
	}
}

// Response модели

// WeeklyRuleResponse ответ с данными недельного правила
type WeeklyRuleResponse struct {
	ID          int64  `json:"id"`
	DayOfWeek   *int   `json:"dayOfWeek"`
	Time        string `json:"time"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WeeklyRuleListResponse ответ со списком недельных правил
type WeeklyRuleListResponse struct {
	Rules []WeeklyRuleResponse `json:"rules"`
}

// DateExceptionResponse ответ с данными исключения на дату
type DateExceptionResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"` // "2025-06-05"
	Time        string `json:"time"` // "12:00"
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DateExceptionListResponse ответ со списком исключений
type DateExceptionListResponse struct {
	Exceptions []DateExceptionResponse `json:"exceptions"`
}

// Методы конвертации

// FromDomainWeeklyRule конвертирует domain модель в DTO
func FromDomainWeeklyRule(r *domain.WeeklyRule) *WeeklyRuleResponse {
	if r == nil {
		return nil
	}
	return &WeeklyRuleResponse{
		ID:          r.ID,
		DayOfWeek:   r.DayOfWeek,
		Time:        r.Time.String(),
		IsAvailable: r.IsAvailable,
		Reason:      r.Reason,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainWeeklyRuleList конвертирует список domain моделей в DTO
func FromDomainWeeklyRuleList(rules []*domain.WeeklyRule) *WeeklyRuleListResponse {
	resp := &WeeklyRuleListResponse{
		Rules: make([]WeeklyRuleResponse, 0, len(rules)),
	}
	for _, r := range rules {
		resp.Rules = append(resp.Rules, *FromDomainWeeklyRule(r))
	}
	return resp
}

// FromDomainDateException конвертирует domain модель в DTO
func FromDomainDateException(e *domain.DateException) *DateExceptionResponse {
	if e == nil {
		return nil
	}
	return &DateExceptionResponse{
		ID:          e.ID,
		Date:        e.Date.Format(domain.DateFormat),
		Time:        e.Time.String(),
		IsAvailable: e.IsAvailable,
		Reason:      e.Reason,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// FromDomainDateExceptionList конвертирует список domain моделей в DTO
func FromDomainDateExceptionList(exceptions []*domain.DateException) *DateExceptionListResponse {
	resp := &DateExceptionListResponse{
		Exceptions: make([]DateExceptionResponse, 0, len(exceptions)),
	}
	for _, e := range exceptions {
		resp.Exceptions = append(resp.Exceptions, *FromDomainDateException(e))
	}
	return resp
}
