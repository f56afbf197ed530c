package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
	scheduleRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/schedule"
	"github.com/m04kA/WPS-DockService/internal/service/schedule/models"
	"github.com/m04kA/WPS-DockService/pkg/types"
)

// Service сервис для управления правилами календаря
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepository ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepository,
		logger:       logger,
	}
}

// UpsertWeeklyRule сохраняет недельное правило
// Для пары (dayOfWeek, time) существует не более одного правила: повторное
// сохранение заменяет предыдущее
func (s *Service) UpsertWeeklyRule(ctx context.Context, req *models.UpsertWeeklyRuleRequest) (*models.WeeklyRuleResponse, error) {
	s.logger.Info("UpsertWeeklyRule: dayOfWeek=%v, time=%s, available=%t", req.DayOfWeek, req.Time, req.IsAvailable)

	if req.DayOfWeek != nil && (*req.DayOfWeek < 0 || *req.DayOfWeek > 6) {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}
	if err := validateRuleCell(req.Time, req.IsAvailable, req.Reason); err != nil {
		s.logger.Warn("UpsertWeeklyRule: validation failed: %v", err)
		return nil, err
	}

	rule, err := s.scheduleRepo.UpsertWeeklyRule(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("UpsertWeeklyRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpsertWeeklyRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertWeeklyRule: successfully saved rule id=%d", rule.ID)
	return models.FromDomainWeeklyRule(rule), nil
}

// UpsertDateException сохраняет исключение на дату
// Для пары (date, time) существует не более одного исключения: повторное
// сохранение заменяет предыдущее
func (s *Service) UpsertDateException(ctx context.Context, req *models.UpsertDateExceptionRequest) (*models.DateExceptionResponse, error) {
	s.logger.Info("UpsertDateException: date=%s, time=%s, available=%t",
		req.Date.Format(domain.DateFormat), req.Time, req.IsAvailable)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := validateRuleCell(req.Time, req.IsAvailable, req.Reason); err != nil {
		s.logger.Warn("UpsertDateException: validation failed: %v", err)
		return nil, err
	}

	exc, err := s.scheduleRepo.UpsertDateException(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("UpsertDateException: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpsertDateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertDateException: successfully saved exception id=%d", exc.ID)
	return models.FromDomainDateException(exc), nil
}

// ListWeeklyRules возвращает все недельные правила
func (s *Service) ListWeeklyRules(ctx context.Context) (*models.WeeklyRuleListResponse, error) {
	rules, err := s.scheduleRepo.ListWeeklyRules(ctx)
	if err != nil {
		s.logger.Error("ListWeeklyRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWeeklyRules - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeeklyRuleList(rules), nil
}

// ListDateExceptions возвращает исключения на указанную дату
func (s *Service) ListDateExceptions(ctx context.Context, date time.Time) (*models.DateExceptionListResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	exceptions, err := s.scheduleRepo.ListDateExceptions(ctx, date)
	if err != nil {
		s.logger.Error("ListDateExceptions: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListDateExceptions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDateExceptionList(exceptions), nil
}

// DeleteWeeklyRule удаляет недельное правило по ID
func (s *Service) DeleteWeeklyRule(ctx context.Context, id int64) error {
	s.logger.Info("DeleteWeeklyRule: deleting rule id=%d", id)

	if err := s.scheduleRepo.DeleteWeeklyRule(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteWeeklyRule: rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteWeeklyRule: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteWeeklyRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWeeklyRule: successfully deleted rule id=%d", id)
	return nil
}

// DeleteDateException удаляет исключение на дату по ID
func (s *Service) DeleteDateException(ctx context.Context, id int64) error {
	s.logger.Info("DeleteDateException: deleting exception id=%d", id)

	if err := s.scheduleRepo.DeleteDateException(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteDateException: exception id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteDateException: repository error for exception id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteDateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDateException: successfully deleted exception id=%d", id)
	return nil
}

// validateRuleCell проверяет общую часть правил: час из каталога и причину блокировки
func validateRuleCell(t types.TimeString, isAvailable bool, reason string) error {
	if t.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	if !domain.IsBookableHour(t) {
		return fmt.Errorf("%w: time %s is outside dock hours", ErrInvalidTimeSlot, t)
	}
	if !isAvailable && strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: reason is required when blocking a slot", ErrInvalidInput)
	}
	if len(reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return nil
}
