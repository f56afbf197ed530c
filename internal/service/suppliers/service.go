package suppliers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/WPS-DockService/internal/domain"
	supplierRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/supplier"
	"github.com/m04kA/WPS-DockService/internal/service/suppliers/models"
)

// Service сервис для работы с реестром поставщиков
type Service struct {
	supplierRepo    SupplierRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса поставщиков
func NewService(
	supplierRepository SupplierRepository,
	appointmentRepository AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		supplierRepo:    supplierRepository,
		appointmentRepo: appointmentRepository,
		logger:          logger,
	}
}

// Register регистрирует нового поставщика
// CNPJ уникален: повторная регистрация возвращает ErrDuplicateTaxID
func (s *Service) Register(ctx context.Context, req *models.CreateSupplierRequest) (*models.SupplierResponse, error) {
	s.logger.Info("Register: registering supplier taxId=%s, name=%s", req.TaxID, req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	supplier := &domain.Supplier{
		TaxID:        strings.TrimSpace(req.TaxID),
		Name:         strings.TrimSpace(req.Name),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		IsActive:     true,
	}

	created, err := s.supplierRepo.Create(ctx, supplier)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrDuplicateTaxID) {
			s.logger.Warn("Register: taxId=%s already registered", req.TaxID)
			return nil, ErrDuplicateTaxID
		}
		s.logger.Error("Register: repository error for taxId=%s: %v", req.TaxID, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered supplier id=%d", created.ID)
	return models.FromDomainSupplier(created), nil
}

// GetByID получает поставщика по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SupplierResponse, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			s.logger.Warn("GetByID: supplier id=%d not found", id)
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("GetByID: repository error for supplier id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSupplier(supplier), nil
}

// List возвращает всех неудаленных поставщиков, включая деактивированных
func (s *Service) List(ctx context.Context) (*models.SupplierListResponse, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d suppliers", len(suppliers))
	return models.FromDomainSupplierList(suppliers), nil
}

// Update изменяет данные поставщика
// Деактивация (isActive=false) блокирует новые агендирования, но не трогает существующие
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSupplierRequest) (*models.SupplierResponse, error) {
	s.logger.Info("Update: updating supplier id=%d", id)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for supplier id=%d: %v", id, err)
		return nil, err
	}

	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			s.logger.Warn("Update: supplier id=%d not found", id)
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("Update: repository error for supplier id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		supplier.Name = strings.TrimSpace(*req.Name)
	}
	if req.ContactEmail != nil {
		supplier.ContactEmail = strings.TrimSpace(*req.ContactEmail)
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			s.logger.Warn("Update: supplier id=%d not found during update", id)
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("Update: repository error for supplier id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload supplier id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reload: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated supplier id=%d", id)
	return models.FromDomainSupplier(updated), nil
}

// Delete мягко удаляет поставщика
// Запрещено, пока у поставщика есть активные агендирования (scheduled или checked_in)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting supplier id=%d", id)

	if _, err := s.supplierRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			s.logger.Warn("Delete: supplier id=%d not found", id)
			return ErrSupplierNotFound
		}
		s.logger.Error("Delete: repository error for supplier id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	activeCount, err := s.appointmentRepo.CountActiveBySupplier(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count active appointments for supplier id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to count active appointments: %v", ErrInternal, err)
	}
	if activeCount > 0 {
		s.logger.Warn("Delete: supplier id=%d has %d active appointments", id, activeCount)
		return ErrHasActiveAppointments
	}

	if err := s.supplierRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			s.logger.Warn("Delete: supplier id=%d not found during deletion", id)
			return ErrSupplierNotFound
		}
		s.logger.Error("Delete: repository error for supplier id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted supplier id=%d", id)
	return nil
}

// Вспомогательные функции валидации

func validateCreateRequest(req *models.CreateSupplierRequest) error {
	if strings.TrimSpace(req.TaxID) == "" {
		return fmt.Errorf("%w: taxId is required", ErrInvalidInput)
	}
	if len(req.TaxID) > domain.MaxTaxIDLength {
		return fmt.Errorf("%w: taxId exceeds %d characters", ErrInvalidInput, domain.MaxTaxIDLength)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxSupplierNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxSupplierNameLength)
	}
	return nil
}

func validateUpdateRequest(req *models.UpdateSupplierRequest) error {
	if req.Name == nil && req.ContactEmail == nil && req.IsActive == nil {
		return fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		if len(*req.Name) > domain.MaxSupplierNameLength {
			return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxSupplierNameLength)
		}
	}
	return nil
}
