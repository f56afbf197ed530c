package models

import (
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
)

// Request модели

// CreateSupplierRequest запрос на регистрацию поставщика
type CreateSupplierRequest struct {
	TaxID        string `json:"taxId"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

// UpdateSupplierRequest запрос на изменение поставщика. Nil-поля остаются без изменений.
// CNPJ неизменяем после регистрации и в запросе отсутствует.
type UpdateSupplierRequest struct {
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

// Response модели

// SupplierResponse ответ с данными поставщика
type SupplierResponse struct {
	ID           int64     `json:"id"`
	TaxID        string    `json:"taxId"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SupplierListResponse ответ со списком поставщиков
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// Методы конвертации

// FromDomainSupplier конвертирует domain модель в DTO
func FromDomainSupplier(s *domain.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{
		ID:           s.ID,
		TaxID:        s.TaxID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainSupplierList конвертирует список domain моделей в DTO
func FromDomainSupplierList(suppliers []*domain.Supplier) *SupplierListResponse {
	resp := &SupplierListResponse{
		Suppliers: make([]SupplierResponse, 0, len(suppliers)),
	}
	for _, s := range suppliers {
		resp.Suppliers = append(resp.Suppliers, *FromDomainSupplier(s))
	}
	return resp
}
