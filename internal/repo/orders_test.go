package repo_test

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/internal/repo"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepo_GetOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewPostgresRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(
			"FROM orders o JOIN clients c ON c.id = o.client_id JOIN workers w ON w.id = o.worker_id WHERE o.id = $1",
		)).WithArgs("order-1").WillReturnRows(orderViewRows("order-1"))

		order, err := r.GetOrder(context.Background(), "order-1")
		require.NoError(t, err)

		assert.Equal(t, "order-1", order.ID)
		assert.Equal(t, entities.OrderTypeBordado, order.Type)
		assert.Equal(t, entities.StatusEnProduccion, order.Status)
		assert.True(t, decimal.RequireFromString("150").Equal(order.Total))
		assert.NotNil(t, order.ProductionStartedAt)
		assert.Nil(t, order.FinishedAt)
		assert.Equal(t, "uploads/a.png", order.ImagePath)
		assert.Equal(t, "Ana Perez", order.Client.Name)
		assert.Equal(t, "client-1", order.Client.ID)
		assert.Equal(t, "Luis", order.Worker.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewPostgresRepo(db)

		mock.ExpectQuery("FROM orders o").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(orderViewRowColumns))

		_, err := r.GetOrder(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestPostgresRepo_CreateOrder(t *testing.T) {
	order := entities.Order{
		ID:           "order-1",
		Type:         entities.OrderTypeEstampado,
		Description:  "print",
		GarmentCount: 3,
		Deposit:      decimal.NewFromInt(10),
		Total:        decimal.NewFromInt(30),
		DueDate:      time.Now(),
		CreatedAt:    time.Now(),
		Status:       entities.StatusPendiente,
		BagID:        "7",
		ClientID:     "client-1",
		WorkerID:     "worker-1",
	}

	testCases := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "ok"},
		{
			name:    "active order already on bag",
			dbErr:   &pq.Error{Code: "23505", Constraint: "orders_active_bag_key"},
			wantErr: entities.ErrBagOccupied,
		},
		{
			name:    "worker missing",
			dbErr:   &pq.Error{Code: "23503", Constraint: "orders_worker_id_fkey"},
			wantErr: entities.ErrWorkerNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			r := repo.NewPostgresRepo(db)

			exp := mock.ExpectExec("INSERT INTO orders")
			if tc.dbErr != nil {
				exp.WillReturnError(tc.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := r.CreateOrder(context.Background(), order)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostgresRepo_LockActiveOrdersByBags(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM orders o WHERE o.bag_id IN ($1,$2) AND o.status NOT IN ($3,$4) ORDER BY o.id FOR UPDATE",
	)).
		WithArgs("7", "8", "ENTREGADO", "CANCELADO").
		WillReturnRows(sqlmock.NewRows(orderViewRowColumns[:17]))

	orders, err := r.LockActiveOrdersByBags(context.Background(), []string{"7", "8"})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPostgresRepo_UpdateOrderStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectExec("UPDATE orders SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.UpdateOrderStatus(context.Background(), entities.Order{ID: "x", Status: entities.StatusCancelado})
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestPostgresRepo_DeleteAllOrders(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM orders RETURNING image_path")).
		WillReturnRows(sqlmock.NewRows([]string{"image_path"}).
			AddRow("uploads/a.png").
			AddRow(nil).
			AddRow("uploads/b.webp"))

	images, err := r.DeleteAllOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"uploads/a.png", "uploads/b.webp"}, images)
}

func TestPostgresRepo_FindOrders(t *testing.T) {
	t.Run("empty result skips the page query", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewPostgresRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders o")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		orders, total, err := r.FindOrders(context.Background(), entities.OrderFilter{}.Normalize())
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, orders)
	})

	t.Run("search matches enum type and filters statuses", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := repo.NewPostgresRepo(db)

		filter := entities.OrderFilter{
			Search:    "bordado",
			Statuses:  []entities.OrderStatus{entities.StatusPendiente, entities.StatusEnProduccion},
			SortField: entities.SortByTotal,
		}.Normalize()

		p := "%bordado%"
		args := []driver.Value{p, p, p, p, p, p, "BORDADO", "PENDIENTE", "EN_PRODUCCION"}

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders o")).
			WithArgs(args...).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY o.total ASC, o.id ASC LIMIT 10 OFFSET 0")).
			WithArgs(args...).
			WillReturnRows(orderViewRows("order-1", "order-2"))

		orders, total, err := r.FindOrders(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, orders, 2)
	})
}

func TestPostgresRepo_CountOrdersByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*) AS count FROM orders GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("PENDIENTE", 3).
			AddRow("CANCELADO", 1))

	counts, err := r.CountOrdersByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[entities.OrderStatus]int{
		entities.StatusPendiente: 3,
		entities.StatusCancelado: 1,
	}, counts)
}

func TestPostgresRepo_ListOrdersByIDs(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE o.id IN ($1,$2) ORDER BY o.id")).
		WithArgs("order-1", "order-2").
		WillReturnRows(orderViewRows("order-1", "order-2"))

	orders, err := r.ListOrdersByIDs(context.Background(), []string{"order-1", "order-2"})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-2", orders[1].ID)
	assert.Equal(t, "Luis", orders[1].Worker.Name)
}
