package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateWorker(ctx context.Context, w entities.Worker) error {
	query, args := r.qb.Insert("workers").
		Columns("id", "name", "active").
		Values(w.ID, w.Name, w.Active).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err, "workers_name_key") {
		return entities.ErrWorkerExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert worker: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetWorker(ctx context.Context, id string) (entities.Worker, error) {
	query, args := r.qb.Select("id", "name", "active").
		From("workers").
		Where(sq.Eq{"id": id}).
		MustSql()

	var worker Worker
	err := r.getContext(ctx, &worker, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Worker{}, entities.ErrWorkerNotFound
	}
	if err != nil {
		return entities.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}
	return WorkerToEntity(worker), nil
}

func (r *postgresRepo) ListWorkers(ctx context.Context, f entities.WorkerFilter) ([]entities.Worker, error) {
	q := r.qb.Select("id", "name", "active").
		From("workers").
		OrderBy("lower(name)", "id")
	if f.Active != nil {
		q = q.Where(sq.Eq{"active": *f.Active})
	}
	if f.Search != "" {
		q = q.Where(sq.ILike{"name": containsPattern(f.Search)})
	}
	query, args := q.MustSql()

	var rows []Worker
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select workers: %w", err)
	}

	workers := make([]entities.Worker, 0, len(rows))
	for _, w := range rows {
		workers = append(workers, WorkerToEntity(w))
	}
	return workers, nil
}

func (r *postgresRepo) UpdateWorker(ctx context.Context, w entities.Worker) error {
	query, args := r.qb.Update("workers").
		Set("name", w.Name).
		Set("active", w.Active).
		Where(sq.Eq{"id": w.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err, "workers_name_key") {
		return entities.ErrWorkerExists
	}
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrWorkerNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteWorker(ctx context.Context, id string) error {
	query, args := r.qb.Delete("workers").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if isForeignKeyViolation(err, "") {
		return entities.ErrWorkerHasOrders
	}
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrWorkerNotFound
	}
	return nil
}
