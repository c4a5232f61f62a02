package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	"github.com/easeteam/Ease-BookingService/pkg/dbmetrics"
	"github.com/easeteam/Ease-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindOverlapping ищет бронирование, пересекающееся с полуинтервалом [start, end)
// Пересечение: start_at < end AND end_at > start; бронирования встык не пересекаются.
// Если вызов происходит внутри транзакции (executor в контексте), добавляется
// FOR UPDATE - проверка и последующая вставка образуют одну неделимую операцию.
// Возвращает ErrReservationNotFound, когда интервал свободен
func (r *Repository) FindOverlapping(ctx context.Context, start, end time.Time) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"menu_name",
		"start_at",
		"end_at",
		"price",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		OrderBy("start_at ASC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %w", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.UserID,
		&res.MenuName,
		&res.StartAt,
		&res.EndAt,
		&res.Price,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - scan reservation: %w", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	return &res, nil
}

// ListInRange возвращает бронирования, начинающиеся в [windowStart, windowEnd)
// Используется композитором расписания для окна отображаемых дат
func (r *Repository) ListInRange(ctx context.Context, windowStart, windowEnd time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"menu_name",
		"start_at",
		"end_at",
		"price",
		"created_at",
	).
		From("reservations").
		Where(squirrel.GtOrEq{"start_at": windowStart}).
		Where(squirrel.Lt{"start_at": windowEnd}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Create сохраняет новое бронирование
// Внутри транзакции коммита вставка видит результаты предыдущих вставок
// того же коммита (read-your-own-writes)
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"menu_name",
			"start_at",
			"end_at",
			"price",
		).
		Values(
			res.UserID,
			res.MenuName,
			res.StartAt,
			res.EndAt,
			res.Price,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	return res, nil
}

// Delete удаляет бронирование (отмена администратором)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// ListWithUsers возвращает все бронирования с данными клиентов
// для админской панели, по возрастанию времени начала
func (r *Repository) ListWithUsers(ctx context.Context) ([]*domain.ReservationWithUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.user_id",
		"r.menu_name",
		"r.start_at",
		"r.end_at",
		"r.price",
		"r.created_at",
		"u.username",
		"u.email",
	).
		From("reservations r").
		Join("users u ON r.user_id = u.id").
		OrderBy("r.start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithUsers - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithUsers - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.ReservationWithUser, 0)
	for rows.Next() {
		var res domain.ReservationWithUser
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.MenuName,
			&res.StartAt,
			&res.EndAt,
			&res.Price,
			&createdAt,
			&res.Username,
			&res.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithUsers - scan row: %w", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithUsers - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.MenuName,
			&res.StartAt,
			&res.EndAt,
			&res.Price,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %w", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}
