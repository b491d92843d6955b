package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateBag(ctx context.Context, id string) (entities.Bag, error) {
	query, args := r.qb.Insert("bags").
		Columns("id", "status").
		Values(id, string(entities.BagDisponible)).
		Suffix("RETURNING id, status").
		MustSql()

	var bag Bag
	err := r.getContext(ctx, &bag, query, args...)
	if isUniqueViolation(err, "bags_pkey") {
		return entities.Bag{}, entities.ErrBagExists
	}
	if err != nil {
		return entities.Bag{}, fmt.Errorf("failed to insert bag: %w", err)
	}
	return BagToEntity(bag), nil
}

// GetBagForUpdate locks the bag row until the surrounding transaction ends.
func (r *postgresRepo) GetBagForUpdate(ctx context.Context, id string) (entities.Bag, error) {
	query, args := r.qb.Select("id", "status").
		From("bags").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		MustSql()

	var bag Bag
	err := r.getContext(ctx, &bag, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Bag{}, entities.ErrBagNotFound
	}
	if err != nil {
		return entities.Bag{}, fmt.Errorf("failed to lock bag: %w", err)
	}
	return BagToEntity(bag), nil
}

func (r *postgresRepo) ListBags(ctx context.Context, status *entities.BagStatus) ([]entities.Bag, error) {
	q := r.qb.Select("id", "status").From("bags")
	if status != nil {
		q = q.Where(sq.Eq{"status": string(*status)})
	}
	query, args := q.MustSql()

	var rows []Bag
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select bags: %w", err)
	}

	bags := make([]entities.Bag, 0, len(rows))
	for _, b := range rows {
		bags = append(bags, BagToEntity(b))
	}
	return bags, nil
}

// OccupyBag flips a DISPONIBLE bag to OCUPADA. A bag in any other state is reported occupied.
func (r *postgresRepo) OccupyBag(ctx context.Context, id string) error {
	query, args := r.qb.Update("bags").
		Set("status", string(entities.BagOcupada)).
		Where(sq.Eq{"id": id, "status": string(entities.BagDisponible)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to occupy bag: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrBagOccupied
	}
	return nil
}

func (r *postgresRepo) ReleaseBags(ctx context.Context, ids []string) error {
	query, args := r.qb.Update("bags").
		Set("status", string(entities.BagDisponible)).
		Where(sq.Eq{"id": ids}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release bags: %w", err)
	}
	return nil
}

func (r *postgresRepo) ReleaseAllBags(ctx context.Context) error {
	query, args := r.qb.Update("bags").
		Set("status", string(entities.BagDisponible)).
		Where(sq.NotEq{"status": string(entities.BagDisponible)}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release bags: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteBag(ctx context.Context, id string) error {
	query, args := r.qb.Delete("bags").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if isForeignKeyViolation(err, "") {
		return entities.ErrBagInUse
	}
	if err != nil {
		return fmt.Errorf("failed to delete bag: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrBagNotFound
	}
	return nil
}
