package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type BagService interface {
	RegisterBag(ctx context.Context, id string) (entities.Bag, error)
	ListBags(ctx context.Context, status *entities.BagStatus) ([]entities.Bag, error)
	RemoveBag(ctx context.Context, id string) error
}

type BagHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      BagService
}

func NewBagHandler(logger *slog.Logger, svc BagService) *BagHandler {
	return &BagHandler{
		logger:   logger.With(slog.String("handler", "bag")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *BagHandler) Init(r chi.Router) {
	r.Get("/bags", h.ListBags)
	r.Post("/bags", h.RegisterBag)
	r.Delete("/bags/{id}", h.RemoveBag)
}

// ListBags returns bags in rack order.
// @Summary      List bags
// @Tags         bags
// @Param        estado  query  string  false  "DISPONIBLE or OCUPADA"
// @Success      200  {array}   Bag
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /bags [get]
func (h *BagHandler) ListBags(w http.ResponseWriter, r *http.Request) {
	var status *entities.BagStatus
	if v := r.URL.Query().Get("estado"); v != "" {
		s := entities.BagStatus(strings.ToUpper(v))
		if !s.IsValid() {
			writeInvalidParam(w, "estado", "oneof")
			return
		}
		status = &s
	}

	bags, err := h.svc.ListBags(r.Context(), status)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res := make([]Bag, 0, len(bags))
	for _, b := range bags {
		res = append(res, BagEntityToJSON(b))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// RegisterBag adds a free bag.
// @Summary      Register bag
// @Tags         bags
// @Param        request  body      CreateBagRequest  true  "Bag code"
// @Success      201  {object}  Bag
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Bag already exists"
// @Security     BearerAuth
// @Router       /bags [post]
func (h *BagHandler) RegisterBag(w http.ResponseWriter, r *http.Request) {
	var req CreateBagRequest
	if fields := decodeJSON(w, r, h.validate, &req); len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	bag, err := h.svc.RegisterBag(r.Context(), req.ID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	bagsRegistered.Inc()
	utils.WriteJSON(w, BagEntityToJSON(bag), http.StatusCreated)
}

// RemoveBag deletes a free bag.
// @Summary      Remove bag
// @Tags         bags
// @Param        id   path  string  true  "Bag code"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Bag is occupied or referenced by orders"
// @Security     BearerAuth
// @Router       /bags/{id} [delete]
func (h *BagHandler) RemoveBag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.validate.Var(id, "required,alphanum,max=10"); err != nil {
		writeInvalidParam(w, "id", "alphanum")
		return
	}

	if err := h.svc.RemoveBag(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
