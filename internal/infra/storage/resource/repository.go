// Package resource хранилище бронируемых ресурсов
package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
	"github.com/m04kA/DORM-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DORM-ReservationService/pkg/psqlbuilder"
)

type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID возвращает ресурс по идентификатору
func (r *Repository) GetByID(ctx context.Context, resourceID int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "category", "is_available", "created_at", "updated_at").
		From("resources").
		Where(squirrel.Eq{"id": resourceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Resource
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.Category,
		&res.IsAvailable,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	return &res, nil
}

// ListByCategory возвращает все ресурсы категории, отсортированные по id
func (r *Repository) ListByCategory(ctx context.Context, category domain.ResourceCategory) ([]domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "category", "is_available", "created_at", "updated_at").
		From("resources").
		Where(squirrel.Eq{"category": string(category)}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCategory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCategory - select resources: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		err = rows.Scan(&res.ID, &res.Category, &res.IsAvailable, &res.CreatedAt, &res.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCategory - scan resource: %v", ErrScanRow, err)
		}
		resources = append(resources, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCategory - iterate rows: %v", ErrExecQuery, err)
	}

	return resources, nil
}
