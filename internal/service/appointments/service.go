package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WPS-DockService/internal/domain"
	appointmentRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/appointment"
	supplierRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/supplier"
	"github.com/m04kA/WPS-DockService/internal/service/appointments/models"
)

// Service сервис для работы с агендированиями
type Service struct {
	appointmentRepo AppointmentRepository
	supplierRepo    SupplierRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса агендирований
func NewService(
	appointmentRepository AppointmentRepository,
	supplierRepository SupplierRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepository,
		supplierRepo:    supplierRepository,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает агендирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetWeek получает агендирования недели, начиная с weekStart (7 дней)
// Опционально фильтрует по поставщику
func (s *Service) GetWeek(ctx context.Context, req *models.GetWeekRequest) (*models.AppointmentListResponse, error) {
	if req.WeekStart.IsZero() {
		return nil, fmt.Errorf("%w: weekStart is required", ErrInvalidInput)
	}

	s.logger.Info("GetWeek: fetching appointments for week of %s, supplier=%v",
		req.WeekStart.Format(domain.DateFormat), req.SupplierID)

	appointments, err := s.appointmentRepo.GetByWeek(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetWeek: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeek: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetBySupplier получает историю агендирований поставщика
func (s *Service) GetBySupplier(ctx context.Context, supplierID int64) (*models.AppointmentListResponse, error) {
	if supplierID <= 0 {
		return nil, fmt.Errorf("%w: supplierID must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetBySupplier: fetching appointments for supplier=%d", supplierID)

	appointments, err := s.appointmentRepo.GetBySupplier(ctx, supplierID)
	if err != nil {
		s.logger.Error("GetBySupplier: repository error for supplier=%d: %v", supplierID, err)
		return nil, fmt.Errorf("%w: GetBySupplier - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// CheckIn регистрирует прибытие грузовика
// Переход допустим только из статуса scheduled; условный UPDATE в репозитории
// исключает двойной check-in при конкурентных запросах
// Возвращает обновленное агендирование и запись для отправки в ERP
func (s *Service) CheckIn(ctx context.Context, id int64) (*models.CheckInResponse, error) {
	s.logger.Info("CheckIn: checking in appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("CheckIn: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("CheckIn: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckIn - repository error: %v", ErrInternal, err)
	}

	if !appointment.CanCheckIn() {
		s.logger.Warn("CheckIn: appointment id=%d has status %s", id, appointment.Status)
		return nil, ErrInvalidTransition
	}

	now := s.timeProvider.Now()

	if err := s.appointmentRepo.SetCheckedIn(ctx, id, now); err != nil {
		if errors.Is(err, appointmentRepo.ErrNoTransition) {
			s.logger.Warn("CheckIn: appointment id=%d transitioned concurrently", id)
			return nil, ErrInvalidTransition
		}
		s.logger.Error("CheckIn: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckIn - repository error: %v", ErrInternal, err)
	}

	// Перечитываем, чтобы получить зафиксированное check_in_time
	checked, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("CheckIn: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckIn - failed to reload: %v", ErrInternal, err)
	}

	supplier, err := s.supplierRepo.GetByID(ctx, checked.SupplierID)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			s.logger.Warn("CheckIn: supplier id=%d not found", checked.SupplierID)
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("CheckIn: failed to get supplier id=%d: %v", checked.SupplierID, err)
		return nil, fmt.Errorf("%w: CheckIn - failed to get supplier: %v", ErrInternal, err)
	}

	s.logger.Info("CheckIn: successfully checked in appointment id=%d", id)

	return &models.CheckInResponse{
		Appointment: *models.FromDomainAppointment(checked),
		ERPPayload:  domain.BuildERPPayload(checked, supplier, now),
	}, nil
}

// CheckOut регистрирует убытие грузовика
// Переход допустим только из статуса checked_in
func (s *Service) CheckOut(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("CheckOut: checking out appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("CheckOut: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("CheckOut: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckOut - repository error: %v", ErrInternal, err)
	}

	if !appointment.CanCheckOut() {
		s.logger.Warn("CheckOut: appointment id=%d has status %s", id, appointment.Status)
		return nil, ErrInvalidTransition
	}

	if err := s.appointmentRepo.SetCheckedOut(ctx, id, s.timeProvider.Now()); err != nil {
		if errors.Is(err, appointmentRepo.ErrNoTransition) {
			s.logger.Warn("CheckOut: appointment id=%d transitioned concurrently", id)
			return nil, ErrInvalidTransition
		}
		s.logger.Error("CheckOut: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckOut - repository error: %v", ErrInternal, err)
	}

	checked, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("CheckOut: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckOut - failed to reload: %v", ErrInternal, err)
	}

	s.logger.Info("CheckOut: successfully checked out appointment id=%d", id)
	return models.FromDomainAppointment(checked), nil
}

// Delete удаляет агендирование
// Запрещено, пока грузовик находится на складе (статус checked_in)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !appointment.CanBeDeleted() {
		s.logger.Warn("Delete: appointment id=%d cannot be deleted, status=%s", id, appointment.Status)
		return ErrCannotDelete
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found during deletion", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}
