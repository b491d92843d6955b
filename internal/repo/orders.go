package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{
	"o.id", "o.type", "o.description", "o.garment_count", "o.deposit", "o.total",
	"o.due_date", "o.created_at", "o.production_started_at", "o.finished_at",
	"o.delivered_at", "o.cancelled_at", "o.image_path", "o.status",
	"o.bag_id", "o.client_id", "o.worker_id",
}

var orderViewColumns = append(append([]string{}, orderColumns...),
	"c.name AS client_name", "c.national_id AS client_national_id",
	"c.phone AS client_phone", "c.created_at AS client_created_at",
	"w.name AS worker_name", "w.active AS worker_active",
)

var orderSortColumns = map[entities.OrderSortField][]string{
	entities.SortByCreatedAt: {"o.created_at"},
	entities.SortByDueDate:   {"o.due_date"},
	entities.SortByStatus:    {"o.status"},
	entities.SortByType:      {"o.type"},
	entities.SortByTotal:     {"o.total"},
	entities.SortByBag:       {`NULLIF(substring(o.bag_id from '^[0-9]+'), '')::bigint`, "lower(o.bag_id)"},
	entities.SortByClient:    {"lower(c.name)"},
}

func (r *postgresRepo) orderViews() sq.SelectBuilder {
	return r.qb.Select(orderViewColumns...).
		From("orders o").
		Join("clients c ON c.id = o.client_id").
		Join("workers w ON w.id = o.worker_id")
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "type", "description", "garment_count", "deposit", "total",
			"due_date", "created_at", "image_path", "status",
			"bag_id", "client_id", "worker_id",
		).
		Values(
			o.ID, string(o.Type), o.Description, o.GarmentCount, o.Deposit, o.Total,
			o.DueDate, o.CreatedAt, nullString(o.ImagePath), string(o.Status),
			o.BagID, o.ClientID, o.WorkerID,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	switch {
	case isUniqueViolation(err, "orders_active_bag_key"):
		return entities.ErrBagOccupied
	case isForeignKeyViolation(err, "orders_bag_id_fkey"):
		return entities.ErrBagNotFound
	case isForeignKeyViolation(err, "orders_worker_id_fkey"):
		return entities.ErrWorkerNotFound
	case isForeignKeyViolation(err, "orders_client_id_fkey"):
		return entities.ErrClientNotFound
	case err != nil:
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.orderViews().
		Where(sq.Eq{"o.id": id}).
		MustSql()

	var order OrderView
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderViewToEntity(order), nil
}

// ListOrdersByIDs returns the orders with the given ids in id order.
func (r *postgresRepo) ListOrdersByIDs(ctx context.Context, ids []string) ([]entities.Order, error) {
	query, args := r.orderViews().
		Where(sq.Eq{"o.id": ids}).
		OrderBy("o.id").
		MustSql()

	var views []OrderView
	if err := r.selectContext(ctx, &views, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(views))
	for _, v := range views {
		orders = append(orders, OrderViewToEntity(v))
	}
	return orders, nil
}

// GetOrderForUpdate locks the order row until the surrounding transaction ends.
func (r *postgresRepo) GetOrderForUpdate(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders o").
		Where(sq.Eq{"o.id": id}).
		Suffix("FOR UPDATE").
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to lock order: %w", err)
	}
	return OrderToEntity(order), nil
}

// LockOrders locks the orders with the given ids. Missing ids are simply absent.
func (r *postgresRepo) LockOrders(ctx context.Context, ids []string) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders o").
		Where(sq.Eq{"o.id": ids}).
		OrderBy("o.id").
		Suffix("FOR UPDATE").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to lock orders: %w", err)
	}
	return ordersToEntities(orders), nil
}

// LockActiveOrdersByBags locks the non-terminal orders bound to bagIDs.
func (r *postgresRepo) LockActiveOrdersByBags(ctx context.Context, bagIDs []string) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders o").
		Where(sq.Eq{"o.bag_id": bagIDs}).
		Where(sq.NotEq{"o.status": terminalStatuses()}).
		OrderBy("o.id").
		Suffix("FOR UPDATE").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to lock active orders: %w", err)
	}
	return ordersToEntities(orders), nil
}

// UpdateOrderStatus persists the status and the four lifecycle timestamps of o.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("production_started_at", nullTime(o.ProductionStartedAt)).
		Set("finished_at", nullTime(o.FinishedAt)).
		Set("delivered_at", nullTime(o.DeliveredAt)).
		Set("cancelled_at", nullTime(o.CancelledAt)).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) CancelOrders(ctx context.Context, ids []string, at time.Time) error {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusCancelado)).
		Set("cancelled_at", at).
		Where(sq.Eq{"id": ids}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to cancel orders: %w", err)
	}
	return nil
}

// UpdateOrder persists the editable fields of o.
func (r *postgresRepo) UpdateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("type", string(o.Type)).
		Set("description", o.Description).
		Set("garment_count", o.GarmentCount).
		Set("deposit", o.Deposit).
		Set("total", o.Total).
		Set("due_date", o.DueDate).
		Set("worker_id", o.WorkerID).
		Set("image_path", nullString(o.ImagePath)).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if isForeignKeyViolation(err, "orders_worker_id_fkey") {
		return entities.ErrWorkerNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteOrders(ctx context.Context, ids []string) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": ids}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete orders: %w", err)
	}
	return nil
}

// DeleteAllOrders removes every order and returns the image paths they referenced.
func (r *postgresRepo) DeleteAllOrders(ctx context.Context) ([]string, error) {
	query, args := r.qb.Delete("orders").
		Suffix("RETURNING image_path").
		MustSql()

	var paths []sql.NullString
	if err := r.selectContext(ctx, &paths, query, args...); err != nil {
		return nil, fmt.Errorf("failed to delete orders: %w", err)
	}

	images := make([]string, 0, len(paths))
	for _, p := range paths {
		if p.Valid && p.String != "" {
			images = append(images, p.String)
		}
	}
	return images, nil
}

func (r *postgresRepo) FindOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, int, error) {
	where := orderFilterConditions(f)

	countQuery, countArgs := r.qb.Select("COUNT(*)").
		From("orders o").
		Join("clients c ON c.id = o.client_id").
		Join("workers w ON w.id = o.worker_id").
		Where(where).
		MustSql()

	var total int
	if err := r.getContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}
	if total == 0 {
		return []entities.Order{}, 0, nil
	}

	direction := " ASC"
	if f.SortDesc {
		direction = " DESC"
	}
	var orderBy []string
	for _, col := range orderSortColumns[f.SortField] {
		orderBy = append(orderBy, col+direction)
	}
	orderBy = append(orderBy, "o.id"+direction)

	query, args := r.orderViews().
		Where(where).
		OrderBy(orderBy...).
		Limit(uint64(f.PageSize)).
		Offset(uint64(f.Offset())).
		MustSql()

	var views []OrderView
	if err := r.selectContext(ctx, &views, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(views))
	for _, v := range views {
		orders = append(orders, OrderViewToEntity(v))
	}
	return orders, total, nil
}

func orderFilterConditions(f entities.OrderFilter) sq.And {
	where := sq.And{}

	if f.Search != "" {
		pattern := containsPattern(f.Search)
		search := sq.Or{
			sq.ILike{"o.description": pattern},
			sq.ILike{"o.bag_id": pattern},
			sq.ILike{"c.name": pattern},
			sq.ILike{"c.national_id": pattern},
			sq.ILike{"c.phone": pattern},
			sq.ILike{"w.name": pattern},
		}
		if t, ok := entities.ParseOrderType(f.Search); ok {
			search = append(search, sq.Eq{"o.type": string(t)})
		}
		where = append(where, search)
	}

	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		where = append(where, sq.Eq{"o.status": statuses})
	}

	return where
}

func (r *postgresRepo) CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatus]int, error) {
	query, args := r.qb.Select("status", "COUNT(*) AS count").
		From("orders").
		GroupBy("status").
		MustSql()

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	counts := make(map[entities.OrderStatus]int, len(rows))
	for _, row := range rows {
		counts[entities.OrderStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func terminalStatuses() []string {
	statuses := make([]string, len(entities.TerminalStatuses))
	for i, s := range entities.TerminalStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func ordersToEntities(rows []Order) []entities.Order {
	orders := make([]entities.Order, 0, len(rows))
	for _, o := range rows {
		orders = append(orders, OrderToEntity(o))
	}
	return orders
}
