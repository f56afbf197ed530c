package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/WPS-DockService/internal/domain"
	"github.com/m04kA/WPS-DockService/pkg/dbmetrics"
	"github.com/m04kA/WPS-DockService/pkg/psqlbuilder"
)

var weeklyRuleColumns = []string{
	"id",
	"day_of_week",
	"time",
	"is_available",
	"reason",
	"created_at",
	"updated_at",
}

var dateExceptionColumns = []string{
	"id",
	"date",
	"time",
	"is_available",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с правилами календаря доков.
// Хранит два независимых источника: еженедельные правила по умолчанию
// и исключения на конкретные даты. Источники сливаются только резолвером.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertWeeklyRule сохраняет еженедельное правило. Повторное сохранение для
// той же пары (день недели, время) заменяет прежнее правило, а не добавляет
// второе: обновление атомарно за счёт ON CONFLICT по уникальному индексу.
func (r *Repository) UpsertWeeklyRule(ctx context.Context, rule *domain.WeeklyRule) (*domain.WeeklyRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_rules").
		Columns("day_of_week", "time", "is_available", "reason").
		Values(rule.DayOfWeek, rule.Time, rule.IsAvailable, rule.Reason).
		Suffix(`ON CONFLICT ((COALESCE(day_of_week, -1)), time)
			DO UPDATE SET
				is_available = EXCLUDED.is_available,
				reason = EXCLUDED.reason,
				updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeeklyRule - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertWeeklyRule - execute upsert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// UpsertDateException сохраняет исключение на дату. Повторное сохранение для
// той же ячейки (дата, время) заменяет прежнее значение.
func (r *Repository) UpsertDateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("date_exceptions").
		Columns("date", "time", "is_available", "reason").
		Values(exc.Date, exc.Time, exc.IsAvailable, exc.Reason).
		Suffix(`ON CONFLICT (date, time)
			DO UPDATE SET
				is_available = EXCLUDED.is_available,
				reason = EXCLUDED.reason,
				updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDateException - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exc.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertDateException - execute upsert: %v", ErrExecQuery, err)
	}

	exc.CreatedAt = createdAt.Time
	exc.UpdatedAt = updatedAt.Time

	return exc, nil
}

// ListWeeklyRules возвращает все еженедельные правила
func (r *Repository) ListWeeklyRules(ctx context.Context) ([]*domain.WeeklyRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(weeklyRuleColumns...).
		From("weekly_rules").
		OrderBy("day_of_week ASC NULLS FIRST, time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWeeklyRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWeeklyRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWeeklyRules(rows, "ListWeeklyRules")
}

// GetWeeklyRulesForWeekday возвращает правила, применимые к указанному дню
// недели: правила этого дня плюс правила-вайлдкарды (day_of_week IS NULL)
func (r *Repository) GetWeeklyRulesForWeekday(ctx context.Context, weekday int) ([]*domain.WeeklyRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(weeklyRuleColumns...).
		From("weekly_rules").
		Where(squirrel.Or{
			squirrel.Eq{"day_of_week": weekday},
			squirrel.Eq{"day_of_week": nil},
		}).
		OrderBy("time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyRulesForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyRulesForWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWeeklyRules(rows, "GetWeeklyRulesForWeekday")
}

// ListDateExceptions возвращает все исключения на указанную дату
func (r *Repository) ListDateExceptions(ctx context.Context, date time.Time) ([]*domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dateExceptionColumns...).
		From("date_exceptions").
		Where(squirrel.Eq{"date": date}).
		OrderBy("time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDateExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDateExceptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]*domain.DateException, 0)
	for rows.Next() {
		var exc domain.DateException
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&exc.ID, &exc.Date, &exc.Time, &exc.IsAvailable, &exc.Reason,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListDateExceptions - scan row: %v", ErrScanRow, err)
		}

		exc.CreatedAt = createdAt.Time
		exc.UpdatedAt = updatedAt.Time
		exceptions = append(exceptions, &exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDateExceptions - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

// DeleteWeeklyRule удаляет еженедельное правило по ID
func (r *Repository) DeleteWeeklyRule(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DeleteWeeklyRule", "weekly_rules", id)
}

// DeleteDateException удаляет исключение по ID
func (r *Repository) DeleteDateException(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DeleteDateException", "date_exceptions", id)
}

func (r *Repository) deleteByID(ctx context.Context, op, table string, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// scanWeeklyRules сканирует результаты запроса в слайс еженедельных правил
func (r *Repository) scanWeeklyRules(rows *sql.Rows, op string) ([]*domain.WeeklyRule, error) {
	rules := make([]*domain.WeeklyRule, 0)

	for rows.Next() {
		var rule domain.WeeklyRule
		var dayOfWeek sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&rule.ID, &dayOfWeek, &rule.Time, &rule.IsAvailable, &rule.Reason,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		if dayOfWeek.Valid {
			day := int(dayOfWeek.Int64)
			rule.DayOfWeek = &day
		}
		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rules, nil
}
