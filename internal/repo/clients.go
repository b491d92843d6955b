package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var clientColumns = []string{"id", "name", "national_id", "phone", "created_at"}

// UpsertClient inserts c or, when its national id is taken, refreshes name and phone
// of the existing row. The stored row is returned either way.
func (r *postgresRepo) UpsertClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	query, args := r.qb.Insert("clients").
		Columns("id", "name", "national_id", "phone").
		Values(c.ID, c.Name, c.NationalID, c.Phone).
		Suffix("ON CONFLICT (national_id) DO UPDATE SET name = EXCLUDED.name, phone = EXCLUDED.phone").
		Suffix("RETURNING id, name, national_id, phone, created_at").
		MustSql()

	var client Client
	if err := r.getContext(ctx, &client, query, args...); err != nil {
		return entities.Client{}, fmt.Errorf("failed to upsert client: %w", err)
	}
	return ClientToEntity(client), nil
}

func (r *postgresRepo) GetClient(ctx context.Context, id string) (entities.Client, error) {
	query, args := r.qb.Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"id": id}).
		MustSql()

	var client Client
	err := r.getContext(ctx, &client, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Client{}, entities.ErrClientNotFound
	}
	if err != nil {
		return entities.Client{}, fmt.Errorf("failed to get client: %w", err)
	}
	return ClientToEntity(client), nil
}

func clientSearch(term string) sq.Sqlizer {
	if term == "" {
		return sq.And{}
	}
	pattern := containsPattern(term)
	return sq.Or{
		sq.ILike{"name": pattern},
		sq.ILike{"national_id": pattern},
		sq.ILike{"phone": pattern},
	}
}

func (r *postgresRepo) SearchClients(ctx context.Context, term string, limit int) ([]entities.Client, error) {
	query, args := r.qb.Select(clientColumns...).
		From("clients").
		Where(clientSearch(term)).
		OrderBy("lower(name)", "id").
		Limit(uint64(limit)).
		MustSql()

	var rows []Client
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clientsToEntities(rows), nil
}

func (r *postgresRepo) ListClients(ctx context.Context, f entities.ClientFilter) ([]entities.Client, int, error) {
	countQuery, countArgs := r.qb.Select("COUNT(*)").
		From("clients").
		Where(clientSearch(f.Search)).
		MustSql()

	var total int
	if err := r.getContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}
	if total == 0 {
		return []entities.Client{}, 0, nil
	}

	query, args := r.qb.Select(clientColumns...).
		From("clients").
		Where(clientSearch(f.Search)).
		OrderBy("lower(name)", "id").
		Limit(uint64(f.PageSize)).
		Offset(uint64(f.Offset())).
		MustSql()

	var rows []Client
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select clients: %w", err)
	}
	return clientsToEntities(rows), total, nil
}

func (r *postgresRepo) UpdateClient(ctx context.Context, c entities.Client) error {
	query, args := r.qb.Update("clients").
		Set("name", c.Name).
		Set("national_id", c.NationalID).
		Set("phone", c.Phone).
		Where(sq.Eq{"id": c.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err, "clients_national_id_key") {
		return entities.ErrClientExists
	}
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrClientNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteClient(ctx context.Context, id string) error {
	query, args := r.qb.Delete("clients").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if isForeignKeyViolation(err, "") {
		return entities.ErrClientHasOrders
	}
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrClientNotFound
	}
	return nil
}

func clientsToEntities(rows []Client) []entities.Client {
	clients := make([]entities.Client, 0, len(rows))
	for _, c := range rows {
		clients = append(clients, ClientToEntity(c))
	}
	return clients
}
