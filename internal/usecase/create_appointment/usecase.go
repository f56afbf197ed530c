package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WPS-DockService/internal/domain"
	appointmentRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/appointment"
	supplierRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/supplier"
)

// UseCase use case для создания агендирования
type UseCase struct {
	appointmentRepo AppointmentRepository
	supplierRepo    SupplierRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepository AppointmentRepository,
	supplierRepository SupplierRepository,
	scheduleRepository ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepository,
		supplierRepo:    supplierRepository,
		scheduleRepo:    scheduleRepository,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания агендирования
// Использует сериализуемую транзакцию для предотвращения гонки за слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: supplier=%d, date=%s, time=%s, po=%s",
		req.SupplierID, req.Date.Format(domain.DateFormat), req.Time, req.PurchaseOrder)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты относительно текущего времени
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	var result *domain.Appointment
	var supplier *domain.Supplier

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем поставщика
		s, err := uc.supplierRepo.GetByID(txCtx, req.SupplierID)
		if err != nil {
			if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
				uc.logger.Warn("CreateAppointment: supplier id=%d not found", req.SupplierID)
				return ErrSupplierNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get supplier id=%d: %v", req.SupplierID, err)
			return fmt.Errorf("%w: failed to get supplier: %v", ErrInternal, err)
		}
		if !s.CanBook() {
			uc.logger.Warn("CreateAppointment: supplier id=%d is inactive", req.SupplierID)
			return ErrSupplierInactive
		}
		supplier = s

		// 3.2. Загружаем правила календаря на дату
		weeklyRules, err := uc.scheduleRepo.GetWeeklyRulesForWeekday(txCtx, int(req.Date.Weekday()))
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get weekly rules: %v", err)
			return fmt.Errorf("%w: failed to get weekly rules: %v", ErrInternal, err)
		}

		exceptions, err := uc.scheduleRepo.ListDateExceptions(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get date exceptions: %v", err)
			return fmt.Errorf("%w: failed to get date exceptions: %v", ErrInternal, err)
		}

		// 3.3. Получаем агендирования на дату с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.4. Проверяем доступность слота
		verdict := resolveSlotVerdict(req.Date, req.Time, weeklyRules, exceptions, appointments)
		if !verdict.available {
			uc.logger.Warn("CreateAppointment: slot %s %s is blocked: %s",
				req.Date.Format(domain.DateFormat), req.Time, verdict.reason)
			return ErrSlotNotAvailable
		}
		if verdict.occupied {
			uc.logger.Warn("CreateAppointment: slot %s %s is already taken",
				req.Date.Format(domain.DateFormat), req.Time)
			return ErrSlotNotAvailable
		}

		// 3.5. Создаем агендирование
		appointment := &domain.Appointment{
			SupplierID:    req.SupplierID,
			Date:          req.Date,
			Time:          req.Time,
			Status:        domain.StatusScheduled,
			PurchaseOrder: req.PurchaseOrder,
			TruckPlate:    req.TruckPlate,
			DriverName:    req.DriverName,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс (date, time) страхует от гонки между проверкой и вставкой
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s %s taken concurrently",
					req.Date.Format(domain.DateFormat), req.Time)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		SupplierID:    result.SupplierID,
		SupplierName:  supplier.Name,
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
