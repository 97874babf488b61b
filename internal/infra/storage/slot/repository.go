// Package slot хранилище интервалов бронирования
package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
	"github.com/m04kA/DORM-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DORM-ReservationService/pkg/psqlbuilder"
)

const (
	pgUniqueViolation  = "23505"
	pgLockNotAvailable = "55P03"
)

type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForUpdate возвращает слот ресурса на заданное время начала.
// Внутри транзакции строка блокируется через SELECT ... FOR UPDATE,
// вне транзакции выполняется обычное чтение.
func (r *Repository) GetForUpdate(ctx context.Context, resourceID int64, startTime time.Time) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "resource_id", "start_time", "end_time", "user_id", "booked_at", "created_at", "updated_at",
	).
		From("time_slots").
		Where(squirrel.Eq{"resource_id": resourceID, "start_time": startTime}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	if dbmetrics.IsInTransaction(ctx) {
		query += " FOR UPDATE"
	}

	var slot domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.ResourceID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.UserID,
		&slot.BookedAt,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgLockNotAvailable {
			return nil, ErrLockTimeout
		}
		return nil, fmt.Errorf("%w: GetForUpdate - scan slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}

// CreateBooked вставляет новый слот сразу в занятом состоянии.
// При нарушении уникальности (resource_id, start_time) возвращает ErrDuplicateSlot.
func (r *Repository) CreateBooked(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns("resource_id", "start_time", "end_time", "user_id", "booked_at").
		Values(slot.ResourceID, slot.StartTime, slot.EndTime, slot.UserID, slot.BookedAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBooked - build insert query: %v", ErrBuildQuery, err)
	}

	created := *slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: CreateBooked - insert slot: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// Claim занимает существующий свободный слот. Если слот уже занят
// (user_id заполнен), возвращает ErrSlotAlreadyBooked.
func (r *Repository) Claim(ctx context.Context, slotID int64, userID int64, bookedAt time.Time, endTime time.Time) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("user_id", userID).
		Set("booked_at", bookedAt).
		Set("end_time", endTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where("user_id IS NULL").
		Suffix("RETURNING id, resource_id, start_time, end_time, user_id, booked_at, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Claim - build update query: %v", ErrBuildQuery, err)
	}

	var slot domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.ResourceID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.UserID,
		&slot.BookedAt,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Claim - update slot: %v", ErrExecQuery, err)
	}

	return &slot, nil
}

// ListBookedByResourceAndPeriod возвращает занятые слоты ресурса
// в полуинтервале [from, to), отсортированные по времени начала.
func (r *Repository) ListBookedByResourceAndPeriod(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "resource_id", "start_time", "end_time", "user_id", "booked_at", "created_at", "updated_at",
	).
		From("time_slots").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where("user_id IS NOT NULL").
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedByResourceAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedByResourceAndPeriod - select slots: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var slots []domain.TimeSlot
	for rows.Next() {
		var slot domain.TimeSlot
		err = rows.Scan(
			&slot.ID,
			&slot.ResourceID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.UserID,
			&slot.BookedAt,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBookedByResourceAndPeriod - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedByResourceAndPeriod - iterate rows: %v", ErrExecQuery, err)
	}

	return slots, nil
}

// CountBookingActions считает число действий бронирования пользователя
// по категории ресурсов за период. Слоты, созданные одним действием,
// разделяют общий booked_at и считаются за одно действие.
func (r *Repository) CountBookingActions(ctx context.Context, userID int64, category domain.ResourceCategory, from, to time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(DISTINCT ts.booked_at)").
		From("time_slots ts").
		Join("resources r ON r.id = ts.resource_id").
		Where(squirrel.Eq{"ts.user_id": userID, "r.category": string(category)}).
		Where(squirrel.GtOrEq{"ts.booked_at": from}).
		Where(squirrel.Lt{"ts.booked_at": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountBookingActions - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: CountBookingActions - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// HasActiveAt сообщает, занят ли ресурс в момент времени at
// (существует занятый слот, чей интервал покрывает at).
func (r *Repository) HasActiveAt(ctx context.Context, resourceID int64, at time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("time_slots").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where("user_id IS NOT NULL").
		Where(squirrel.LtOrEq{"start_time": at}).
		Where(squirrel.Gt{"end_time": at}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: HasActiveAt - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// CreateEmpty пакетно создаёт свободные слоты, пропуская уже существующие.
// Возвращает число фактически вставленных строк.
func (r *Repository) CreateEmpty(ctx context.Context, slots []domain.TimeSlot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("time_slots").
		Columns("resource_id", "start_time", "end_time")
	for _, slot := range slots {
		builder = builder.Values(slot.ResourceID, slot.StartTime, slot.EndTime)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (resource_id, start_time) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateEmpty - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateEmpty - insert slots: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateEmpty - rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}
