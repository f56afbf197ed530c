package suppliers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WPS-DockService/internal/domain"
	supplierRepo "github.com/m04kA/WPS-DockService/internal/infra/storage/supplier"
	"github.com/m04kA/WPS-DockService/internal/service/suppliers/models"
	"github.com/m04kA/WPS-DockService/pkg/ptr"
)

type fakeSupplierRepo struct {
	byTaxID map[string]*domain.Supplier
	byID    map[int64]*domain.Supplier

	deletedID int64
}

func newFakeSupplierRepo(existing ...*domain.Supplier) *fakeSupplierRepo {
	f := &fakeSupplierRepo{
		byTaxID: make(map[string]*domain.Supplier),
		byID:    make(map[int64]*domain.Supplier),
	}
	for _, s := range existing {
		f.byTaxID[s.TaxID] = s
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	if _, exists := f.byTaxID[s.TaxID]; exists {
		return nil, supplierRepo.ErrDuplicateTaxID
	}
	out := *s
	out.ID = int64(len(f.byID) + 1)
	f.byTaxID[out.TaxID] = &out
	f.byID[out.ID] = &out
	return &out, nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id int64) (*domain.Supplier, error) {
	s, ok := f.byID[id]
	if !ok || s.IsDeleted {
		return nil, supplierRepo.ErrSupplierNotFound
	}
	out := *s
	return &out, nil
}

func (f *fakeSupplierRepo) List(_ context.Context) ([]*domain.Supplier, error) {
	var out []*domain.Supplier
	for _, s := range f.byID {
		if !s.IsDeleted {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSupplierRepo) Update(_ context.Context, s *domain.Supplier) error {
	stored, ok := f.byID[s.ID]
	if !ok {
		return supplierRepo.ErrSupplierNotFound
	}
	*stored = *s
	return nil
}

func (f *fakeSupplierRepo) SoftDelete(_ context.Context, id int64) error {
	s, ok := f.byID[id]
	if !ok {
		return supplierRepo.ErrSupplierNotFound
	}
	s.IsDeleted = true
	s.IsActive = false
	f.deletedID = id
	return nil
}

type fakeAppointmentRepo struct {
	activeCount int
}

func (f *fakeAppointmentRepo) CountActiveBySupplier(_ context.Context, _ int64) (int, error) {
	return f.activeCount, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func existingSupplier() *domain.Supplier {
	return &domain.Supplier{
		ID:       1,
		TaxID:    "12.345.678/0001-90",
		Name:     "Transportes Andrade",
		IsActive: true,
	}
}

func TestService_Register_Success(t *testing.T) {
	s := NewService(newFakeSupplierRepo(), &fakeAppointmentRepo{}, nopLogger{})

	resp, err := s.Register(context.Background(), &models.CreateSupplierRequest{
		TaxID: "12.345.678/0001-90",
		Name:  "Transportes Andrade",
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "12.345.678/0001-90", resp.TaxID)
}

func TestService_Register_DuplicateTaxID(t *testing.T) {
	s := NewService(newFakeSupplierRepo(existingSupplier()), &fakeAppointmentRepo{}, nopLogger{})

	_, err := s.Register(context.Background(), &models.CreateSupplierRequest{
		TaxID: "12.345.678/0001-90",
		Name:  "Outra Empresa",
	})
	assert.ErrorIs(t, err, ErrDuplicateTaxID)
}

func TestService_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateSupplierRequest
	}{
		{"empty tax id", &models.CreateSupplierRequest{Name: "X"}},
		{"empty name", &models.CreateSupplierRequest{TaxID: "12.345.678/0001-90"}},
		{"blank name", &models.CreateSupplierRequest{TaxID: "12.345.678/0001-90", Name: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(newFakeSupplierRepo(), &fakeAppointmentRepo{}, nopLogger{})
			_, err := s.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Update_Deactivate(t *testing.T) {
	repo := newFakeSupplierRepo(existingSupplier())
	s := NewService(repo, &fakeAppointmentRepo{}, nopLogger{})

	resp, err := s.Update(context.Background(), 1, &models.UpdateSupplierRequest{
		IsActive: ptr.Ptr(false),
	})
	require.NoError(t, err)

	assert.False(t, resp.IsActive)
	assert.Equal(t, "Transportes Andrade", resp.Name)
}

func TestService_Update_NotFound(t *testing.T) {
	s := NewService(newFakeSupplierRepo(), &fakeAppointmentRepo{}, nopLogger{})

	_, err := s.Update(context.Background(), 99, &models.UpdateSupplierRequest{
		Name: ptr.Ptr("Nova Razão Social"),
	})
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestService_Update_NoFields(t *testing.T) {
	s := NewService(newFakeSupplierRepo(existingSupplier()), &fakeAppointmentRepo{}, nopLogger{})

	_, err := s.Update(context.Background(), 1, &models.UpdateSupplierRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete_Success(t *testing.T) {
	repo := newFakeSupplierRepo(existingSupplier())
	s := NewService(repo, &fakeAppointmentRepo{}, nopLogger{})

	err := s.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.deletedID)

	_, err = s.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestService_Delete_WithActiveAppointments(t *testing.T) {
	s := NewService(newFakeSupplierRepo(existingSupplier()), &fakeAppointmentRepo{activeCount: 2}, nopLogger{})

	err := s.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrHasActiveAppointments)
}

func TestService_List_HidesDeleted(t *testing.T) {
	deleted := existingSupplier()
	deleted.ID = 2
	deleted.TaxID = "98.765.432/0001-10"
	deleted.IsDeleted = true

	repo := newFakeSupplierRepo(existingSupplier(), deleted)
	s := NewService(repo, &fakeAppointmentRepo{}, nopLogger{})

	resp, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Suppliers, 1)
	assert.Equal(t, int64(1), resp.Suppliers[0].ID)
}
