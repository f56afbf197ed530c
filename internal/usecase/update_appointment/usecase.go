package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WPS-DockService/internal/domain"
	appointmentRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/appointment"
)

// UseCase use case для изменения агендирования
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepository AppointmentRepository,
	scheduleRepository ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepository,
		scheduleRepo:    scheduleRepository,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case изменения агендирования
// Перенос на другой слот проходит ту же проверку доступности, что и создание,
// в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем текущее состояние
		current, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Политика "только до check-in" применяется по запросу роута
		if req.EnforceScheduledOnly && current.Status != domain.StatusScheduled {
			uc.logger.Warn("UpdateAppointment: appointment id=%d has status %s", req.ID, current.Status)
			return ErrNotEditable
		}

		updated := *current
		if req.Date != nil {
			updated.Date = *req.Date
		}
		if req.Time != nil {
			updated.Time = *req.Time
		}
		if req.PurchaseOrder != nil {
			updated.PurchaseOrder = *req.PurchaseOrder
		}
		if req.TruckPlate != nil {
			updated.TruckPlate = *req.TruckPlate
		}
		if req.DriverName != nil {
			updated.DriverName = *req.DriverName
		}

		slotChanged := !updated.Date.Equal(current.Date) || updated.Time != current.Time

		// 2.3. Перенос слота проверяется заново; правки остальных полей - нет
		if slotChanged {
			if err := validateDate(updated.Date, now); err != nil {
				uc.logger.Warn("UpdateAppointment: date %s is in the past", updated.Date.Format(domain.DateFormat))
				return err
			}

			weeklyRules, err := uc.scheduleRepo.GetWeeklyRulesForWeekday(txCtx, int(updated.Date.Weekday()))
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to get weekly rules: %v", err)
				return fmt.Errorf("%w: failed to get weekly rules: %v", ErrInternal, err)
			}

			exceptions, err := uc.scheduleRepo.ListDateExceptions(txCtx, updated.Date)
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to get date exceptions: %v", err)
				return fmt.Errorf("%w: failed to get date exceptions: %v", ErrInternal, err)
			}

			// Агендирования целевой даты читаются с блокировкой (FOR UPDATE)
			appointments, err := uc.appointmentRepo.GetByDate(txCtx, updated.Date)
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to get appointments: %v", err)
				return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}

			verdict := resolveSlotVerdict(updated.Date, updated.Time, weeklyRules, exceptions, appointments, current.ID)
			if !verdict.available || verdict.occupied {
				uc.logger.Warn("UpdateAppointment: target slot %s %s is not available",
					updated.Date.Format(domain.DateFormat), updated.Time)
				return ErrSlotNotAvailable
			}
		}

		// 2.4. Сохраняем изменения
		if err := uc.appointmentRepo.Update(txCtx, &updated); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateAppointment: target slot taken concurrently")
				return ErrSlotNotAvailable
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		// 2.5. Перечитываем, чтобы вернуть актуальные метки времени
		fresh, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to reload appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
		}

		result = fresh
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		SupplierID:    result.SupplierID,
		Date:          result.Date,
		Time:          result.Time,
		Status:        string(result.Status),
		PurchaseOrder: result.PurchaseOrder,
		TruckPlate:    result.TruckPlate,
		DriverName:    result.DriverName,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
