package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Barbershop-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с расписанием работы салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday получает расписание на день недели
// Отсутствие строки означает, что салон в этот день не работает
func (r *Repository) GetByWeekday(ctx context.Context, weekday time.Weekday) (*domain.ScheduleDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectScheduleDays().
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	day, err := scanScheduleDay(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - scan schedule day: %v", ErrScanRow, err)
	}

	return day, nil
}

// ListAll получает расписание на все дни недели, отсортированное по дню
func (r *Repository) ListAll(ctx context.Context) ([]*domain.ScheduleDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectScheduleDays().
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.ScheduleDay, 0)

	for rows.Next() {
		day, err := scanScheduleDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// Upsert создает или обновляет расписание на день недели
// На день недели существует не больше одной строки (уникальный индекс по weekday)
func (r *Repository) Upsert(ctx context.Context, day *domain.ScheduleDay) (*domain.ScheduleDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_days").
		Columns(
			"weekday",
			"opens_at",
			"closes_at",
			"active",
		).
		Values(
			int(day.Weekday),
			day.OpensAt,
			day.ClosesAt,
			day.Active,
		).
		Suffix(`ON CONFLICT (weekday) DO UPDATE
			SET opens_at = EXCLUDED.opens_at,
			    closes_at = EXCLUDED.closes_at,
			    active = EXCLUDED.active,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return day, nil
}

// Deactivate помечает день недели выходным
// Если строки на этот день нет, операция ничего не делает: отсутствие
// строки уже означает выходной
func (r *Repository) Deactivate(ctx context.Context, weekday time.Weekday) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_days").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// selectScheduleDays возвращает базовый SELECT по таблице расписания
func selectScheduleDays() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"weekday",
		"opens_at",
		"closes_at",
		"active",
		"created_at",
		"updated_at",
	).From("schedule_days")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScheduleDay(row rowScanner) (*domain.ScheduleDay, error) {
	var day domain.ScheduleDay
	var weekday int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&day.ID,
		&weekday,
		&day.OpensAt,
		&day.ClosesAt,
		&day.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	day.Weekday = time.Weekday(weekday)
	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return &day, nil
}
