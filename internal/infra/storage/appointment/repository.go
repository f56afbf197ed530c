package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/pkg/dbmetrics"
	"github.com/m04kA/WPS-DockService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"supplier_id",
	"date",
	"time",
	"status",
	"purchase_order",
	"truck_plate",
	"driver_name",
	"check_in_time",
	"check_out_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с агендированиями доков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория агендирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое агендирование.
// Вызывается внутри сериализуемой транзакции usecase'а создания; уникальный
// индекс (date, time) служит страховкой от гонки двух одновременных созданий
// и транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"supplier_id",
			"date",
			"time",
			"status",
			"purchase_order",
			"truck_plate",
			"driver_name",
		).
		Values(
			a.SupplierID,
			a.Date,
			a.Time,
			a.Status,
			a.PurchaseOrder,
			a.TruckPlate,
			a.DriverName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает агендирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Appointment
	var checkIn, checkOut, createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID, &a.SupplierID, &a.Date, &a.Time, &a.Status,
		&a.PurchaseOrder, &a.TruckPlate, &a.DriverName,
		&checkIn, &checkOut, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	fillTimes(&a, checkIn, checkOut, createdAt, updatedAt)

	return &a, nil
}

// GetByDate получает все агендирования на указанную дату, отсортированные по времени.
// Внутри транзакции добавляет FOR UPDATE: usecase создания блокирует строки дня,
// чтобы проверка доступности и вставка были одной неделимой операцией.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"date": date}).
		OrderBy("time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows, "GetByDate")
}

// GetByWeek получает агендирования недели (weekStart + 6 дней),
// опционально ограничивая выборку одним поставщиком
func (r *Repository) GetByWeek(ctx context.Context, filter domain.WeekFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.GtOrEq{"date": filter.WeekStart}).
		Where(squirrel.LtOrEq{"date": filter.WeekEnd()}).
		OrderBy("date ASC, time ASC")

	if filter.SupplierID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"supplier_id": *filter.SupplierID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows, "GetByWeek")
}

// GetBySupplier получает все агендирования поставщика (история, без фильтра по датам)
func (r *Repository) GetBySupplier(ctx context.Context, supplierID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"supplier_id": supplierID}).
		OrderBy("date DESC, time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySupplier - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySupplier - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows, "GetBySupplier")
}

// CountActiveBySupplier подсчитывает активные агендирования поставщика
// (scheduled и checked_in). Используется как защита при удалении поставщика.
func (r *Repository) CountActiveBySupplier(ctx context.Context, supplierID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"supplier_id": supplierID}).
		Where(squirrel.Eq{"status": statuses}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySupplier - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySupplier - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет изменяемые поля агендирования (дата, время, данные поставки)
func (r *Repository) Update(ctx context.Context, a *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("date", a.Date).
		Set("time", a.Time).
		Set("purchase_order", a.PurchaseOrder).
		Set("truck_plate", a.TruckPlate).
		Set("driver_name", a.DriverName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// SetCheckedIn переводит агендирование scheduled -> checked_in одной условной
// командой. Возвращает ErrNoTransition, если строка не в статусе scheduled —
// проверка и запись статуса атомарны на уровне БД.
func (r *Repository) SetCheckedIn(ctx context.Context, id int64, at time.Time) error {
	return r.transition(ctx, "SetCheckedIn", id,
		domain.StatusScheduled, domain.StatusCheckedIn, "check_in_time", at)
}

// SetCheckedOut переводит агендирование checked_in -> checked_out
func (r *Repository) SetCheckedOut(ctx context.Context, id int64, at time.Time) error {
	return r.transition(ctx, "SetCheckedOut", id,
		domain.StatusCheckedIn, domain.StatusCheckedOut, "check_out_time", at)
}

// Delete физически удаляет агендирование.
// Допустимость удаления (статус не checked_in) проверяет сервисный слой.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) transition(
	ctx context.Context,
	op string,
	id int64,
	from, to domain.AppointmentStatus,
	timestampColumn string,
	at time.Time,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", to).
		Set(timestampColumn, at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrNoTransition
	}

	return nil
}

// scanAppointments сканирует результаты запроса в слайс агендирований
func (r *Repository) scanAppointments(rows *sql.Rows, op string) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var a domain.Appointment
		var checkIn, checkOut, createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&a.ID, &a.SupplierID, &a.Date, &a.Time, &a.Status,
			&a.PurchaseOrder, &a.TruckPlate, &a.DriverName,
			&checkIn, &checkOut, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		fillTimes(&a, checkIn, checkOut, createdAt, updatedAt)
		appointments = append(appointments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

func fillTimes(a *domain.Appointment, checkIn, checkOut, createdAt, updatedAt sql.NullTime) {
	if checkIn.Valid {
		t := checkIn.Time
		a.CheckInTime = &t
	}
	if checkOut.Valid {
		t := checkOut.Time
		a.CheckOutTime = &t
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
