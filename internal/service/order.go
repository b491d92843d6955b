package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/pkg/trm"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrdersByIDs(ctx context.Context, ids []string) ([]entities.Order, error)
	FindOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, int, error)
	CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatus]int, error)

	// Lock* and *ForUpdate hold row locks until the surrounding transaction ends.
	GetOrderForUpdate(ctx context.Context, id string) (entities.Order, error)
	LockOrders(ctx context.Context, ids []string) ([]entities.Order, error)
	LockActiveOrdersByBags(ctx context.Context, bagIDs []string) ([]entities.Order, error)

	UpdateOrderStatus(ctx context.Context, o entities.Order) error
	UpdateOrder(ctx context.Context, o entities.Order) error
	CancelOrders(ctx context.Context, ids []string, at time.Time) error
	DeleteOrders(ctx context.Context, ids []string) error
	DeleteAllOrders(ctx context.Context) ([]string, error)
}

// BagInventory is the part of the bag registry the order workflow drives.
type BagInventory interface {
	GetBagForUpdate(ctx context.Context, id string) (entities.Bag, error)
	OccupyBag(ctx context.Context, id string) error
	ReleaseBags(ctx context.Context, ids []string) error
	ReleaseAllBags(ctx context.Context) error
}

type OrderClients interface {
	UpsertClient(ctx context.Context, c entities.Client) (entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
	UpdateClient(ctx context.Context, c entities.Client) error
}

type WorkerGetter interface {
	GetWorker(ctx context.Context, id string) (entities.Worker, error)
}

type ImageStore interface {
	Save(ctx context.Context, img entities.Image) (string, error)
	// Delete is best effort and never fails the caller.
	Delete(ctx context.Context, imagePath string)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	bags      BagInventory
	clients   OrderClients
	workers   WorkerGetter
	images    ImageStore
	now       func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	bags BagInventory,
	clients OrderClients,
	workers WorkerGetter,
	images ImageStore,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		bags:      bags,
		clients:   clients,
		workers:   workers,
		images:    images,
		now:       time.Now,
	}
}

// CreateOrder binds a free bag to a new PENDIENTE order. The image is written
// first and removed again when the transaction does not commit.
func (s *orderService) CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error) {
	var imagePath string
	if in.Image != nil {
		path, err := s.images.Save(ctx, *in.Image)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to save image: %w", err)
		}
		imagePath = path
	}

	order := entities.Order{
		ID:           uuid.NewString(),
		Type:         in.Type,
		Description:  in.Description,
		GarmentCount: in.GarmentCount,
		Deposit:      in.Deposit,
		Total:        in.Total,
		DueDate:      in.DueDate,
		CreatedAt:    s.now(),
		ImagePath:    imagePath,
		Status:       entities.StatusPendiente,
		BagID:        in.BagID,
		WorkerID:     in.WorkerID,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		bag, err := s.bags.GetBagForUpdate(ctx, in.BagID)
		if err != nil {
			return fmt.Errorf("failed to lock bag: %w", err)
		}
		if bag.Status == entities.BagOcupada {
			return entities.ErrBagOccupied
		}

		client, err := s.clients.UpsertClient(ctx, entities.Client{
			ID:         uuid.NewString(),
			Name:       in.Client.Name,
			NationalID: in.Client.NationalID,
			Phone:      in.Client.Phone,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert client: %w", err)
		}
		order.ClientID = client.ID

		if _, err := s.workers.GetWorker(ctx, in.WorkerID); err != nil {
			return fmt.Errorf("failed to get worker: %w", err)
		}

		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := s.bags.OccupyBag(ctx, in.BagID); err != nil {
			return fmt.Errorf("failed to occupy bag: %w", err)
		}
		return nil
	})
	if err != nil {
		if imagePath != "" {
			s.images.Delete(ctx, imagePath)
		}
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order created", slog.String("order_id", order.ID), slog.String("bag_id", order.BagID))
	return s.orders.GetOrder(ctx, order.ID)
}

func (s *orderService) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	return s.orders.GetOrder(ctx, id)
}

// ChangeStatus moves an order to target when the workflow allows it. Reaching a
// terminal status frees the bag in the same transaction.
func (s *orderService) ChangeStatus(ctx context.Context, id string, target entities.OrderStatus) (entities.Order, error) {
	var from entities.OrderStatus

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to lock order: %w", err)
		}

		from = order.Status
		if !order.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, target)
		}

		order.Status = target
		order.Stamp(target, s.now())
		if err := s.orders.UpdateOrderStatus(ctx, order); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		if target.IsTerminal() {
			if err := s.bags.ReleaseBags(ctx, []string{order.BagID}); err != nil {
				return fmt.Errorf("failed to release bag: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", id),
		slog.String("from", from.String()),
		slog.String("to", target.String()),
	)
	return s.orders.GetOrder(ctx, id)
}

// CancelBatch cancels the active orders of every bag in bagIDs, or none of them
// when some bag has no active order.
func (s *orderService) CancelBatch(ctx context.Context, bagIDs []string) ([]entities.Order, error) {
	bagIDs = unique(bagIDs)
	var orderIDs []string

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orders, err := s.orders.LockActiveOrdersByBags(ctx, bagIDs)
		if err != nil {
			return fmt.Errorf("failed to lock orders: %w", err)
		}

		if len(orders) < len(bagIDs) {
			found := make(map[string]bool, len(orders))
			for _, o := range orders {
				found[o.BagID] = true
			}
			var missing []string
			for _, id := range bagIDs {
				if !found[id] {
					missing = append(missing, id)
				}
			}
			return entities.NewBatchError(entities.ErrNotFound, "no active order for bags", missing)
		}

		orderIDs = make([]string, 0, len(orders))
		for _, o := range orders {
			orderIDs = append(orderIDs, o.ID)
		}

		if err := s.orders.CancelOrders(ctx, orderIDs, s.now()); err != nil {
			return fmt.Errorf("failed to cancel orders: %w", err)
		}
		if err := s.bags.ReleaseBags(ctx, bagIDs); err != nil {
			return fmt.Errorf("failed to release bags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "orders cancelled", slog.Int("count", len(orderIDs)), slog.Any("bag_ids", bagIDs))
	return s.orders.ListOrdersByIDs(ctx, orderIDs)
}

// UpdateOrder edits a PENDIENTE order. A replaced or removed image is deleted
// only after the new state has committed.
func (s *orderService) UpdateOrder(ctx context.Context, id string, changes entities.OrderChanges, image entities.ImageUpdate) (entities.Order, error) {
	var newPath string
	if image.New != nil {
		path, err := s.images.Save(ctx, *image.New)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to save image: %w", err)
		}
		newPath = path
	}

	var oldPath string
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		oldPath = ""

		order, err := s.orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to lock order: %w", err)
		}
		if order.Status != entities.StatusPendiente {
			return entities.ErrOrderNotEditable
		}

		if changes.WorkerID != nil && *changes.WorkerID != order.WorkerID {
			if _, err := s.workers.GetWorker(ctx, *changes.WorkerID); err != nil {
				return fmt.Errorf("failed to get worker: %w", err)
			}
		}

		changes.Apply(&order)
		switch {
		case newPath != "":
			oldPath = order.ImagePath
			order.ImagePath = newPath
		case image.Remove:
			oldPath = order.ImagePath
			order.ImagePath = ""
		}

		if err := s.orders.UpdateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		if changes.TouchesClient() {
			client, err := s.clients.GetClient(ctx, order.ClientID)
			if err != nil {
				return fmt.Errorf("failed to get client: %w", err)
			}
			entities.ClientChanges{Name: changes.ClientName, Phone: changes.ClientPhone}.Apply(&client)
			if err := s.clients.UpdateClient(ctx, client); err != nil {
				return fmt.Errorf("failed to update client: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if newPath != "" {
			s.images.Delete(ctx, newPath)
		}
		return entities.Order{}, err
	}

	if oldPath != "" {
		s.images.Delete(ctx, oldPath)
	}

	s.logger.InfoContext(ctx, "order updated", slog.String("order_id", id))
	return s.orders.GetOrder(ctx, id)
}

// DeleteOrders removes terminal orders. Unknown ids fail with NotFound and
// orders still in flow with Forbidden; either way nothing is deleted.
func (s *orderService) DeleteOrders(ctx context.Context, ids []string) error {
	ids = unique(ids)
	var images []string

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		images = nil

		orders, err := s.orders.LockOrders(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to lock orders: %w", err)
		}

		byID := make(map[string]entities.Order, len(orders))
		for _, o := range orders {
			byID[o.ID] = o
		}

		var missing, active []string
		for _, id := range ids {
			o, ok := byID[id]
			switch {
			case !ok:
				missing = append(missing, id)
			case !o.Status.IsTerminal():
				active = append(active, id)
			case o.ImagePath != "":
				images = append(images, o.ImagePath)
			}
		}
		if len(missing) > 0 {
			return entities.NewBatchError(entities.ErrNotFound, "orders not found", missing)
		}
		if len(active) > 0 {
			return entities.NewBatchError(entities.ErrForbidden, "only delivered or cancelled orders can be deleted", active)
		}

		if err := s.orders.DeleteOrders(ctx, ids); err != nil {
			return fmt.Errorf("failed to delete orders: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, p := range images {
		s.images.Delete(ctx, p)
	}
	s.logger.InfoContext(ctx, "orders deleted", slog.Int("count", len(ids)))
	return nil
}

// ResetAll deletes every order and frees every bag.
func (s *orderService) ResetAll(ctx context.Context) error {
	var images []string

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		images, err = s.orders.DeleteAllOrders(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete orders: %w", err)
		}
		if err := s.bags.ReleaseAllBags(ctx); err != nil {
			return fmt.Errorf("failed to release bags: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, p := range images {
		s.images.Delete(ctx, p)
	}
	s.logger.WarnContext(ctx, "all orders deleted", slog.Int("images", len(images)))
	return nil
}

func (s *orderService) FindOrders(ctx context.Context, f entities.OrderFilter) (entities.Page[entities.Order], error) {
	f = f.Normalize()

	orders, total, err := s.orders.FindOrders(ctx, f)
	if err != nil {
		return entities.Page[entities.Order]{}, err
	}
	return entities.NewPage(orders, total, f.Page, f.PageSize), nil
}

// Dashboard counts orders per status. Every status is present.
func (s *orderService) Dashboard(ctx context.Context) (entities.StatusCounts, error) {
	raw, err := s.orders.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return entities.NewStatusCounts(raw), nil
}

func (s *orderService) InFlowCount(ctx context.Context) (int, error) {
	counts, err := s.Dashboard(ctx)
	if err != nil {
		return 0, err
	}
	return counts.InFlow(), nil
}

func unique(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
