package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/internal/handler"
	"github.com/SergeyBogomolovv/pedidos-service/internal/service"
	mocks "github.com/SergeyBogomolovv/pedidos-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/pedidos-service/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderDeps struct {
	orders  *mocks.MockOrderRepo
	bags    *mocks.MockBagInventory
	clients *mocks.MockOrderClients
	workers *mocks.MockWorkerGetter
	images  *mocks.MockImageStore
}

func newOrderDeps(t *testing.T) orderDeps {
	return orderDeps{
		orders:  mocks.NewMockOrderRepo(t),
		bags:    mocks.NewMockBagInventory(t),
		clients: mocks.NewMockOrderClients(t),
		workers: mocks.NewMockWorkerGetter(t),
		images:  mocks.NewMockImageStore(t),
	}
}

func (d orderDeps) service(t *testing.T) handler.OrderService {
	return service.NewOrderService(discardLogger(), passthroughTx(t), d.orders, d.bags, d.clients, d.workers, d.images)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

func newOrderInput() entities.NewOrder {
	return entities.NewOrder{
		Type:         entities.OrderTypeBordado,
		Description:  "logo on the chest",
		GarmentCount: 3,
		Deposit:      decimal.RequireFromString("10.00"),
		Total:        decimal.RequireFromString("30.00"),
		DueDate:      time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		BagID:        "A1",
		WorkerID:     "w-1",
		Client:       entities.Client{Name: "Ana", NationalID: "0102030405", Phone: "0991234567"},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	dbError := errors.New("db error")
	image := &entities.Image{Filename: "design.png", Size: 4, Content: strings.NewReader("data")}

	testCases := []struct {
		name         string
		input        func() entities.NewOrder
		mockBehavior func(d orderDeps)
		wantErr      error
	}{
		{
			name:  "OK",
			input: newOrderInput,
			mockBehavior: func(d orderDeps) {
				d.bags.EXPECT().GetBagForUpdate(mock.Anything, "A1").
					Return(entities.Bag{ID: "A1", Status: entities.BagDisponible}, nil)
				d.clients.EXPECT().UpsertClient(mock.Anything, mock.MatchedBy(func(c entities.Client) bool {
					return c.NationalID == "0102030405" && c.Name == "Ana"
				})).Return(entities.Client{ID: "c-1", NationalID: "0102030405"}, nil)
				d.workers.EXPECT().GetWorker(mock.Anything, "w-1").Return(entities.Worker{ID: "w-1", Active: true}, nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.StatusPendiente && o.BagID == "A1" &&
						o.ClientID == "c-1" && o.ID != "" && !o.CreatedAt.IsZero()
				})).Return(nil)
				d.bags.EXPECT().OccupyBag(mock.Anything, "A1").Return(nil)
				d.orders.EXPECT().GetOrder(mock.Anything, mock.Anything).
					Return(entities.Order{BagID: "A1", Status: entities.StatusPendiente}, nil)
			},
		},
		{
			name:  "bag occupied",
			input: newOrderInput,
			mockBehavior: func(d orderDeps) {
				d.bags.EXPECT().GetBagForUpdate(mock.Anything, "A1").
					Return(entities.Bag{ID: "A1", Status: entities.BagOcupada}, nil)
			},
			wantErr: entities.ErrBagOccupied,
		},
		{
			name:  "bag not found",
			input: newOrderInput,
			mockBehavior: func(d orderDeps) {
				d.bags.EXPECT().GetBagForUpdate(mock.Anything, "A1").
					Return(entities.Bag{}, entities.ErrBagNotFound)
			},
			wantErr: entities.ErrBagNotFound,
		},
		{
			name:  "worker not found",
			input: newOrderInput,
			mockBehavior: func(d orderDeps) {
				d.bags.EXPECT().GetBagForUpdate(mock.Anything, "A1").
					Return(entities.Bag{ID: "A1", Status: entities.BagDisponible}, nil)
				d.clients.EXPECT().UpsertClient(mock.Anything, mock.Anything).
					Return(entities.Client{ID: "c-1"}, nil)
				d.workers.EXPECT().GetWorker(mock.Anything, "w-1").
					Return(entities.Worker{}, entities.ErrWorkerNotFound)
			},
			wantErr: entities.ErrWorkerNotFound,
		},
		{
			name: "image removed when transaction fails",
			input: func() entities.NewOrder {
				in := newOrderInput()
				in.Image = image
				return in
			},
			mockBehavior: func(d orderDeps) {
				d.images.EXPECT().Save(mock.Anything, *image).Return("uploads/x.png", nil)
				d.bags.EXPECT().GetBagForUpdate(mock.Anything, "A1").
					Return(entities.Bag{ID: "A1", Status: entities.BagDisponible}, nil)
				d.clients.EXPECT().UpsertClient(mock.Anything, mock.Anything).
					Return(entities.Client{ID: "c-1"}, nil)
				d.workers.EXPECT().GetWorker(mock.Anything, "w-1").Return(entities.Worker{ID: "w-1"}, nil)
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.ImagePath == "uploads/x.png"
				})).Return(dbError)
				d.images.EXPECT().Delete(mock.Anything, "uploads/x.png").Once()
			},
			wantErr: dbError,
		},
		{
			name: "invalid image",
			input: func() entities.NewOrder {
				in := newOrderInput()
				in.Image = image
				return in
			},
			mockBehavior: func(d orderDeps) {
				d.images.EXPECT().Save(mock.Anything, *image).
					Return("", &entities.ImageError{Reason: "too large"})
			},
			wantErr: entities.ErrInvalidImage,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d)

			order, err := d.service(t).CreateOrder(context.Background(), tc.input())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entities.StatusPendiente, order.Status)
			assert.Equal(t, "A1", order.BagID)
		})
	}
}

func TestOrderService_ChangeStatus(t *testing.T) {
	testCases := []struct {
		name        string
		from        entities.OrderStatus
		target      entities.OrderStatus
		wantErr     error
		wantRelease bool
	}{
		{name: "start production", from: entities.StatusPendiente, target: entities.StatusEnProduccion},
		{name: "in process", from: entities.StatusEnProduccion, target: entities.StatusEnProceso},
		{name: "ready", from: entities.StatusEnProceso, target: entities.StatusListoParaEntrega},
		{name: "deliver", from: entities.StatusListoParaEntrega, target: entities.StatusEntregado, wantRelease: true},
		{name: "cancel pending", from: entities.StatusPendiente, target: entities.StatusCancelado, wantRelease: true},
		{name: "cancel ready", from: entities.StatusListoParaEntrega, target: entities.StatusCancelado, wantRelease: true},
		{name: "skip a step", from: entities.StatusPendiente, target: entities.StatusListoParaEntrega, wantErr: entities.ErrInvalidTransition},
		{name: "deliver pending", from: entities.StatusPendiente, target: entities.StatusEntregado, wantErr: entities.ErrInvalidTransition},
		{name: "go back", from: entities.StatusEnProceso, target: entities.StatusEnProduccion, wantErr: entities.ErrInvalidTransition},
		{name: "leave delivered", from: entities.StatusEntregado, target: entities.StatusCancelado, wantErr: entities.ErrInvalidTransition},
		{name: "leave cancelled", from: entities.StatusCancelado, target: entities.StatusEnProduccion, wantErr: entities.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			d.orders.EXPECT().GetOrderForUpdate(mock.Anything, "o-1").
				Return(entities.Order{ID: "o-1", BagID: "A1", Status: tc.from}, nil)

			if tc.wantErr == nil {
				d.orders.EXPECT().UpdateOrderStatus(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == tc.target
				})).Return(nil)
				d.orders.EXPECT().GetOrder(mock.Anything, "o-1").
					Return(entities.Order{ID: "o-1", BagID: "A1", Status: tc.target}, nil)
			}
			if tc.wantRelease {
				d.bags.EXPECT().ReleaseBags(mock.Anything, []string{"A1"}).Return(nil).Once()
			}

			order, err := d.service(t).ChangeStatus(context.Background(), "o-1", tc.target)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, entities.ErrForbidden)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.target, order.Status)
		})
	}
}

func TestOrderService_ChangeStatus_StampsTimestamp(t *testing.T) {
	d := newOrderDeps(t)
	d.orders.EXPECT().GetOrderForUpdate(mock.Anything, "o-1").
		Return(entities.Order{ID: "o-1", BagID: "A1", Status: entities.StatusPendiente}, nil)
	d.orders.EXPECT().UpdateOrderStatus(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
		return o.ProductionStartedAt != nil && o.FinishedAt == nil && o.CancelledAt == nil
	})).Return(nil)
	d.orders.EXPECT().GetOrder(mock.Anything, "o-1").Return(entities.Order{ID: "o-1"}, nil)

	_, err := d.service(t).ChangeStatus(context.Background(), "o-1", entities.StatusEnProduccion)
	require.NoError(t, err)
}

func TestOrderService_ChangeStatus_NotFound(t *testing.T) {
	d := newOrderDeps(t)
	d.orders.EXPECT().GetOrderForUpdate(mock.Anything, "missing").
		Return(entities.Order{}, entities.ErrOrderNotFound)

	_, err := d.service(t).ChangeStatus(context.Background(), "missing", entities.StatusEnProduccion)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderService_CancelBatch(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		d := newOrderDeps(t)
		d.orders.EXPECT().LockActiveOrdersByBags(mock.Anything, []string{"A1", "B2"}).
			Return([]entities.Order{
				{ID: "o-1", BagID: "A1", Status: entities.StatusPendiente},
				{ID: "o-2", BagID: "B2", Status: entities.StatusEnProceso},
			}, nil)
		d.orders.EXPECT().CancelOrders(mock.Anything, []string{"o-1", "o-2"}, mock.Anything).Return(nil)
		d.bags.EXPECT().ReleaseBags(mock.Anything, []string{"A1", "B2"}).Return(nil)
		d.orders.EXPECT().ListOrdersByIDs(mock.Anything, []string{"o-1", "o-2"}).
			Return([]entities.Order{
				{ID: "o-1", Status: entities.StatusCancelado},
				{ID: "o-2", Status: entities.StatusCancelado},
			}, nil)

		orders, err := d.service(t).CancelBatch(context.Background(), []string{"A1", "B2", "A1"})
		require.NoError(t, err)
		require.Len(t, orders, 2)
		for _, o := range orders {
			assert.Equal(t, entities.StatusCancelado, o.Status)
		}
	})

	t.Run("bag without active order cancels nothing", func(t *testing.T) {
		d := newOrderDeps(t)
		d.orders.EXPECT().LockActiveOrdersByBags(mock.Anything, []string{"A1", "Z9"}).
			Return([]entities.Order{{ID: "o-1", BagID: "A1", Status: entities.StatusPendiente}}, nil)

		_, err := d.service(t).CancelBatch(context.Background(), []string{"A1", "Z9"})

		require.ErrorIs(t, err, entities.ErrNotFound)
		var batchErr *entities.BatchError
		require.ErrorAs(t, err, &batchErr)
		assert.Equal(t, []string{"Z9"}, batchErr.IDs)
		d.orders.AssertNotCalled(t, "CancelOrders", mock.Anything, mock.Anything, mock.Anything)
		d.bags.AssertNotCalled(t, "ReleaseBags", mock.Anything, mock.Anything)
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	newImage := &entities.Image{Filename: "new.png", Size: 3, Content: strings.NewReader("new")}
	description := "new text"
	otherWorker := "w-2"
	phone := "0999999999"

	pending := func() entities.Order {
		return entities.Order{
			ID: "o-1", BagID: "A1", ClientID: "c-1", WorkerID: "w-1",
			Status: entities.StatusPendiente, ImagePath: "uploads/old.png",
		}
	}

	testCases := []struct {
		name         string
		changes      entities.OrderChanges
		image        entities.ImageUpdate
		mockBehavior func(d orderDeps)
		wantErr      error
	}{
		{
			name:    "edit fields keeps image",
			changes: entities.OrderChanges{Description: &description},
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, "o-1").Return(pending(), nil)
				d.orders.EXPECT().UpdateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Description == description && o.ImagePath == "uploads/old.png"
				})).Return(nil)
				d.orders.EXPECT().GetOrder(mock.Anything, "o-1").Return(pending(), nil)
			},
		},
		{
			name:  "replace image deletes old after commit",
			image: entities.ImageUpdate{New: newImage},
			mockBehavior: func(d orderDeps) {
				d.images.EXPECT().Save(mock.Anything, *newImage).Return("uploads/new.png", nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, "o-1").Return(pending(), nil)
				d.orders.EXPECT().UpdateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.ImagePath == "uploads/new.png"
				})).Return(nil)
				d.images.EXPECT().Delete(mock.Anything, "uploads/old.png").Once()
				d.orders.EXPECT().GetOrder(mock.Anything, "o-1").Return(pending(), nil)
			},
		},
		{
			name:  "remove image",
			image: entities.ImageUpdate{Remove: true},
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, "o-1").Return(pending(), nil)
				d.orders.EXPECT().UpdateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.ImagePath == ""
				})).Return(nil)
				d.images.EXPECT().Delete(mock.Anything, "uploads/old.png").Once()
				d.orders.EXPECT().GetOrder(mock.Anything, "o-1").Return(pending(), nil)
			},
		},
		{
			name:  "not editable keeps old image and drops new one",
			image: entities.ImageUpdate{New: newImage},
			mockBehavior: func(d orderDeps) {
				d.images.EXPECT().Save(mock.Anything, *newImage).Return("uploads/new.png", nil)
				o := pending()
				o.Status = entities.StatusEnProduccion
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, "o-1").Return(o, nil)
				d.images.EXPECT().Delete(mock.Anything, "uploads/new.png").Once()
			},
			wantErr: entities.ErrOrderNotEditable,
		},
		{
			name:    "unknown worker",
			changes: entities.OrderChanges{WorkerID: &otherWorker},
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, "o-1").Return(pending(), nil)
				d.workers.EXPECT().GetWorker(mock.Anything, "w-2").Return(entities.Worker{}, entities.ErrWorkerNotFound)
			},
			wantErr: entities.ErrWorkerNotFound,
		},
		{
			name:    "client phone updates client",
			changes: entities.OrderChanges{ClientPhone: &phone},
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, "o-1").Return(pending(), nil)
				d.orders.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil)
				d.clients.EXPECT().GetClient(mock.Anything, "c-1").
					Return(entities.Client{ID: "c-1", Name: "Ana", Phone: "0990000000"}, nil)
				d.clients.EXPECT().UpdateClient(mock.Anything, entities.Client{ID: "c-1", Name: "Ana", Phone: phone}).Return(nil)
				d.orders.EXPECT().GetOrder(mock.Anything, "o-1").Return(pending(), nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d)

			_, err := d.service(t).UpdateOrder(context.Background(), "o-1", tc.changes, tc.image)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_DeleteOrders(t *testing.T) {
	testCases := []struct {
		name    string
		locked  []entities.Order
		wantErr error
		wantIDs []string
	}{
		{
			name: "OK",
			locked: []entities.Order{
				{ID: "o-1", Status: entities.StatusEntregado, ImagePath: "uploads/a.png"},
				{ID: "o-2", Status: entities.StatusCancelado},
			},
		},
		{
			name:    "missing order",
			locked:  []entities.Order{{ID: "o-1", Status: entities.StatusEntregado}},
			wantErr: entities.ErrNotFound,
			wantIDs: []string{"o-2"},
		},
		{
			name: "order in flow",
			locked: []entities.Order{
				{ID: "o-1", Status: entities.StatusEntregado},
				{ID: "o-2", Status: entities.StatusEnProceso},
			},
			wantErr: entities.ErrForbidden,
			wantIDs: []string{"o-2"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			ids := []string{"o-1", "o-2"}
			d.orders.EXPECT().LockOrders(mock.Anything, ids).Return(tc.locked, nil)
			if tc.wantErr == nil {
				d.orders.EXPECT().DeleteOrders(mock.Anything, ids).Return(nil)
				d.images.EXPECT().Delete(mock.Anything, "uploads/a.png").Once()
			}

			err := d.service(t).DeleteOrders(context.Background(), ids)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				var batchErr *entities.BatchError
				require.ErrorAs(t, err, &batchErr)
				assert.Equal(t, tc.wantIDs, batchErr.IDs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_ResetAll(t *testing.T) {
	d := newOrderDeps(t)
	d.orders.EXPECT().DeleteAllOrders(mock.Anything).Return([]string{"uploads/a.png", "uploads/b.png"}, nil)
	d.bags.EXPECT().ReleaseAllBags(mock.Anything).Return(nil)
	d.images.EXPECT().Delete(mock.Anything, "uploads/a.png").Once()
	d.images.EXPECT().Delete(mock.Anything, "uploads/b.png").Once()

	require.NoError(t, d.service(t).ResetAll(context.Background()))
}

func TestOrderService_ResetAll_KeepsImagesOnFailure(t *testing.T) {
	dbError := errors.New("db error")
	d := newOrderDeps(t)
	d.orders.EXPECT().DeleteAllOrders(mock.Anything).Return([]string{"uploads/a.png"}, nil)
	d.bags.EXPECT().ReleaseAllBags(mock.Anything).Return(dbError)

	assert.ErrorIs(t, d.service(t).ResetAll(context.Background()), dbError)
	d.images.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestOrderService_FindOrders(t *testing.T) {
	d := newOrderDeps(t)
	d.orders.EXPECT().FindOrders(mock.Anything, mock.MatchedBy(func(f entities.OrderFilter) bool {
		return f.Page == 1 && f.PageSize == entities.DefaultPageSize && f.SortField == entities.SortByCreatedAt && f.SortDesc
	})).Return([]entities.Order{{ID: "o-1"}}, 21, nil)

	page, err := d.service(t).FindOrders(context.Background(), entities.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 3, page.LastPage)
	assert.Len(t, page.Data, 1)
}

func TestOrderService_Dashboard(t *testing.T) {
	d := newOrderDeps(t)
	d.orders.EXPECT().CountOrdersByStatus(mock.Anything).Return(map[entities.OrderStatus]int{
		entities.StatusPendiente: 2,
		entities.StatusEnProceso: 1,
		entities.StatusEntregado: 5,
	}, nil).Twice()

	svc := d.service(t)

	counts, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, counts, len(entities.OrderStatuses))
	assert.Equal(t, 0, counts[entities.StatusCancelado])
	assert.Equal(t, 2, counts[entities.StatusPendiente])

	inFlow, err := svc.InFlowCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, inFlow)
}
