package supplier

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/pkg/dbmetrics"
	"github.com/m04kA/WPS-DockService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

var supplierColumns = []string{
	"id",
	"tax_id",
	"name",
	"contact_email",
	"is_active",
	"is_deleted",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с поставщиками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория поставщиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует нового поставщика.
// Уникальность tax_id обеспечивается индексом; нарушение транслируется в ErrDuplicateTaxID.
func (r *Repository) Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("suppliers").
		Columns("tax_id", "name", "contact_email", "is_active").
		Values(s.TaxID, s.Name, s.ContactEmail, s.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTaxID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает поставщика по ID (включая помеченных удалёнными)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(supplierColumns...).
		From("suppliers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSupplier(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByTaxID получает поставщика по налоговому номеру
func (r *Repository) GetByTaxID(ctx context.Context, taxID string) (*domain.Supplier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(supplierColumns...).
		From("suppliers").
		Where(squirrel.Eq{"tax_id": taxID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTaxID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSupplier(executor.QueryRowContext(ctx, query, args...), "GetByTaxID")
}

// List возвращает всех не удалённых поставщиков
func (r *Repository) List(ctx context.Context) ([]*domain.Supplier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(supplierColumns...).
		From("suppliers").
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	suppliers := make([]*domain.Supplier, 0)
	for rows.Next() {
		var s domain.Supplier
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&s.ID, &s.TaxID, &s.Name, &s.ContactEmail,
			&s.IsActive, &s.IsDeleted, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		suppliers = append(suppliers, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return suppliers, nil
}

// Update обновляет изменяемые поля поставщика (название, email, активность).
// tax_id неизменяем после регистрации и не входит в обновление.
func (r *Repository) Update(ctx context.Context, s *domain.Supplier) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("suppliers").
		Set("name", s.Name).
		Set("contact_email", s.ContactEmail).
		Set("is_active", s.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// SoftDelete помечает поставщика удалённым и деактивирует его.
// Запись остаётся в БД: история агендирований должна ссылаться на поставщика.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("suppliers").
		Set("is_deleted", true).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// scanSupplier сканирует одну строку результата в модель поставщика
func (r *Repository) scanSupplier(row *sql.Row, op string) (*domain.Supplier, error) {
	var s domain.Supplier
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID, &s.TaxID, &s.Name, &s.ContactEmail,
		&s.IsActive, &s.IsDeleted, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan supplier: %v", ErrScanRow, op, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
