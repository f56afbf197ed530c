package get_day_slots

import (
	"context"
	"fmt"
)

// UseCase реализует расчёт доступности слотов на дату.
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр UseCase.
func NewUseCase(scheduleRepo ScheduleRepository, appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute возвращает вердикт по каждому часу каталога на указанную дату.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: Execute - date is required", ErrInvalidInput)
	}

	weekday := int(req.Date.Weekday())

	weeklyRules, err := uc.scheduleRepo.GetWeeklyRulesForWeekday(ctx, weekday)
	if err != nil {
		uc.logger.Error("[GetDaySlots] Ошибка загрузки недельных правил: date=%s, err=%v", req.Date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: Execute - load weekly rules: %v", ErrInternal, err)
	}

	exceptions, err := uc.scheduleRepo.ListDateExceptions(ctx, req.Date)
	if err != nil {
		uc.logger.Error("[GetDaySlots] Ошибка загрузки исключений: date=%s, err=%v", req.Date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: Execute - load date exceptions: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("[GetDaySlots] Ошибка загрузки агендирований: date=%s, err=%v", req.Date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: Execute - load appointments: %v", ErrInternal, err)
	}

	slots := resolveSlots(req.Date, weeklyRules, exceptions, appointments)

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
