package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/internal/middleware"
	"github.com/SergeyBogomolovv/pedidos-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	FindOrders(ctx context.Context, f entities.OrderFilter) (entities.Page[entities.Order], error)
	ChangeStatus(ctx context.Context, id string, target entities.OrderStatus) (entities.Order, error)
	CancelBatch(ctx context.Context, bagIDs []string) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, id string, changes entities.OrderChanges, image entities.ImageUpdate) (entities.Order, error)
	DeleteOrders(ctx context.Context, ids []string) error
	ResetAll(ctx context.Context) error
	Dashboard(ctx context.Context) (entities.StatusCounts, error)
	InFlowCount(ctx context.Context) (int, error)
}

type ReceiptGenerator interface {
	Generate(o entities.Order) ([]byte, error)
}

// statusRoutes are the transition endpoints under /orders/{id}/status.
var statusRoutes = []struct {
	slug   string
	target entities.OrderStatus
	roles  []entities.Role
}{
	{slug: "en-produccion", target: entities.StatusEnProduccion},
	{slug: "en-proceso", target: entities.StatusEnProceso},
	{slug: "listo-entrega", target: entities.StatusListoParaEntrega, roles: []entities.Role{entities.RoleSuperAdmin}},
	{slug: "entregado", target: entities.StatusEntregado},
	{slug: "cancelado", target: entities.StatusCancelado},
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	receipts ReceiptGenerator
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, receipts ReceiptGenerator) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: utils.NewValidator(),
		svc:      svc,
		receipts: receipts,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	superAdmin := middleware.RequireRole(entities.RoleSuperAdmin)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.FindOrders)
		r.Post("/", h.CreateOrder)
		r.Patch("/cancel-batch", h.CancelBatch)
		r.With(superAdmin).Delete("/delete-multiple", h.DeleteOrders)
		r.With(superAdmin).Delete("/reset", h.ResetAll)

		r.Get("/{id}", h.GetOrder)
		r.Get("/{id}/receipt", h.GetReceipt)
		r.Patch("/{id}", h.UpdateOrder)

		for _, route := range statusRoutes {
			rr := r
			if len(route.roles) > 0 {
				rr = r.With(middleware.RequireRole(route.roles...))
			}
			rr.Patch("/{id}/status/"+route.slug, h.ChangeStatus(route.target))
		}
	})

	r.Get("/dashboard", h.Dashboard)
	r.Get("/dashboard/in-flow-count", h.InFlowCount)
}

// CreateOrder takes in a new order on a free bag.
// @Summary      Create order
// @Description  Binds a free bag to a new PENDIENTE order. Multipart: "data" JSON plus optional "imagen" file.
// @Tags         orders
// @Accept       multipart/form-data
// @Param        data    formData  string  true   "CreateOrderRequest as JSON"
// @Param        imagen  formData  file    false  "Design image"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Bag or worker not found"
// @Failure      409  {object}  utils.ErrorResponse "Bag already occupied"
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, err := parseOrderForm(w, r)
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer form.Close()

	var req CreateOrderRequest
	if err := json.Unmarshal(form.data, &req); err != nil {
		utils.WriteFieldErrors(w, map[string]string{"data": "invalid json"})
		return
	}

	fields := entities.FieldErrors(utils.ValidationFields(h.validate.Struct(req)))
	checkAmounts(fields, true, map[string]*decimal.Decimal{"abono": req.Abono, "total": req.Total})
	if len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	in := req.ToEntity()
	in.Image = form.image

	order, err := h.svc.CreateOrder(ctx, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// FindOrders returns a filtered page of orders.
// @Summary      List orders
// @Tags         orders
// @Param        search          query  string  false  "Free text search"
// @Param        estado          query  string  false  "Status filter, repeatable or comma separated"
// @Param        page            query  int     false  "Page, from 1"
// @Param        limit           query  int     false  "Page size, max 100"
// @Param        orderBy         query  string  false  "fechaCreacion, fechaEntrega, estado, tipo, total, bolsaId, cliente"
// @Param        orderDirection  query  string  false  "asc or desc"
// @Success      200  {object}  Page[Order]
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /orders [get]
func (h *OrderHandler) FindOrders(w http.ResponseWriter, r *http.Request) {
	filter, fields := parseOrderFilter(r.URL.Query())
	if len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	page, err := h.svc.FindOrders(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, PageToJSON(page, OrdersEntityToJSON), http.StatusOK)
}

// GetOrder returns an order with its client and worker.
// @Summary      Get order
// @Tags         orders
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, h.validate, "id")
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetReceipt renders the order receipt as PDF.
// @Summary      Order receipt
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path      string  true  "Order id"
// @Success      200  {file}    binary
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id}/receipt [get]
func (h *OrderHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, h.validate, "id")
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	pdf, err := h.receipts.Generate(order)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="pedido-%s.pdf"`, order.BagID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// UpdateOrder edits a PENDIENTE order.
// @Summary      Update order
// @Description  Only while PENDIENTE. Multipart: "data" JSON plus optional "imagen" file; "imagenUrl": null removes the image.
// @Tags         orders
// @Accept       multipart/form-data
// @Param        id      path      string  true   "Order id"
// @Param        data    formData  string  true   "UpdateOrderRequest as JSON"
// @Param        imagen  formData  file    false  "New design image"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Order is not PENDIENTE"
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id} [patch]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathUUID(w, r, h.validate, "id")
	if !ok {
		return
	}

	form, err := parseOrderForm(w, r)
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer form.Close()

	var req UpdateOrderRequest
	if len(form.data) > 0 {
		if err := json.Unmarshal(form.data, &req); err != nil {
			utils.WriteFieldErrors(w, map[string]string{"data": "invalid json"})
			return
		}
	}

	fields := entities.FieldErrors(utils.ValidationFields(h.validate.Struct(req)))
	checkAmounts(fields, false, map[string]*decimal.Decimal{"abono": req.Abono, "total": req.Total})
	if len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	image := entities.ImageUpdate{New: form.image, Remove: form.image == nil && form.imageRemoved()}

	order, err := h.svc.UpdateOrder(ctx, id, req.ToEntity(), image)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ChangeStatus returns the handler of one transition endpoint.
// @Summary      Change order status
// @Description  One endpoint per target: en-produccion, en-proceso, listo-entrega (SUPER_ADMIN), entregado, cancelado.
// @Tags         orders
// @Param        id      path      string  true  "Order id"
// @Param        target  path      string  true  "Target status slug"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Transition not allowed"
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders/{id}/status/{target} [patch]
func (h *OrderHandler) ChangeStatus(target entities.OrderStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, h.validate, "id")
		if !ok {
			return
		}

		order, err := h.svc.ChangeStatus(r.Context(), id, target)
		if err != nil {
			writeError(w, r, h.logger, err)
			return
		}

		statusTransitions.WithLabelValues(string(target)).Inc()
		utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
	}
}

// CancelBatch cancels the active orders of several bags at once.
// @Summary      Cancel orders by bag
// @Tags         orders
// @Param        request  body      CancelBatchRequest  true  "Bag ids"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Bags without an active order, in details.ids"
// @Security     BearerAuth
// @Router       /orders/cancel-batch [patch]
func (h *OrderHandler) CancelBatch(w http.ResponseWriter, r *http.Request) {
	var req CancelBatchRequest
	if fields := decodeJSON(w, r, h.validate, &req); len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	orders, err := h.svc.CancelBatch(r.Context(), req.BagIDs)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	ordersBatchCancelled.Add(float64(len(orders)))
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// DeleteOrders deletes delivered or cancelled orders.
// @Summary      Delete orders
// @Tags         orders
// @Param        request  body  DeleteOrdersRequest  true  "Order ids"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse "Some orders are still in flow"
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /orders/delete-multiple [delete]
func (h *OrderHandler) DeleteOrders(w http.ResponseWriter, r *http.Request) {
	var req DeleteOrdersRequest
	if fields := decodeJSON(w, r, h.validate, &req); len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	if err := h.svc.DeleteOrders(r.Context(), req.OrderIDs); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	ordersDeleted.Add(float64(len(req.OrderIDs)))
	w.WriteHeader(http.StatusNoContent)
}

// ResetAll wipes every order and frees every bag.
// @Summary      Reset orders
// @Tags         orders
// @Success      204
// @Security     BearerAuth
// @Router       /orders/reset [delete]
func (h *OrderHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetAll(r.Context()); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(r.Context())
	h.logger.WarnContext(r.Context(), "orders reset", slog.String("user_id", principal.UserID))
	resets.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Dashboard counts orders per status.
// @Summary      Dashboard
// @Tags         dashboard
// @Success      200  {object}  map[string]int
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *OrderHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, StatusCountsToJSON(counts), http.StatusOK)
}

// InFlowCount counts orders that are not delivered or cancelled.
// @Summary      In-flow count
// @Tags         dashboard
// @Success      200  {object}  CountResponse
// @Security     BearerAuth
// @Router       /dashboard/in-flow-count [get]
func (h *OrderHandler) InFlowCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.InFlowCount(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, CountResponse{Count: count}, http.StatusOK)
}
