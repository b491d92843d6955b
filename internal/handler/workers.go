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

type WorkerService interface {
	CreateWorker(ctx context.Context, name string) (entities.Worker, error)
	GetWorker(ctx context.Context, id string) (entities.Worker, error)
	ListWorkers(ctx context.Context, f entities.WorkerFilter) ([]entities.Worker, error)
	UpdateWorker(ctx context.Context, id string, changes entities.WorkerChanges) (entities.Worker, error)
	RemoveWorker(ctx context.Context, id string) error
}

type WorkerHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      WorkerService
}

func NewWorkerHandler(logger *slog.Logger, svc WorkerService) *WorkerHandler {
	return &WorkerHandler{
		logger:   logger.With(slog.String("handler", "worker")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *WorkerHandler) Init(r chi.Router) {
	r.Route("/workers", func(r chi.Router) {
		r.Get("/", h.ListWorkers)
		r.Post("/", h.CreateWorker)
		r.Get("/{id}", h.GetWorker)
		r.Patch("/{id}", h.UpdateWorker)
		r.Delete("/{id}", h.RemoveWorker)
	})
}

// ListWorkers
// @Summary      List workers
// @Tags         workers
// @Param        activo  query  bool    false  "Only active or inactive workers"
// @Param        search  query  string  false  "Name contains"
// @Success      200  {array}   Worker
// @Security     BearerAuth
// @Router       /workers [get]
func (h *WorkerHandler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fields := entities.FieldErrors{}
	filter := entities.WorkerFilter{
		Active: parseOptionalBool(q, "activo", fields),
		Search: strings.TrimSpace(q.Get("search")),
	}
	if len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	workers, err := h.svc.ListWorkers(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, WorkersEntityToJSON(workers), http.StatusOK)
}

// CreateWorker
// @Summary      Create worker
// @Tags         workers
// @Param        request  body      CreateWorkerRequest  true  "Worker"
// @Success      201  {object}  Worker
// @Failure      409  {object}  utils.ErrorResponse "Name taken"
// @Security     BearerAuth
// @Router       /workers [post]
func (h *WorkerHandler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkerRequest
	if fields := decodeJSON(w, r, h.validate, &req); len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	worker, err := h.svc.CreateWorker(r.Context(), strings.TrimSpace(req.Nombre))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, WorkerEntityToJSON(worker), http.StatusCreated)
}

// GetWorker
// @Summary      Get worker
// @Tags         workers
// @Param        id   path      string  true  "Worker id"
// @Success      200  {object}  Worker
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /workers/{id} [get]
func (h *WorkerHandler) GetWorker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, h.validate, "id")
	if !ok {
		return
	}

	worker, err := h.svc.GetWorker(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, WorkerEntityToJSON(worker), http.StatusOK)
}

// UpdateWorker renames or (de)activates a worker.
// @Summary      Update worker
// @Tags         workers
// @Param        id       path      string               true  "Worker id"
// @Param        request  body      UpdateWorkerRequest  true  "Fields to change"
// @Success      200  {object}  Worker
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Name taken"
// @Security     BearerAuth
// @Router       /workers/{id} [patch]
func (h *WorkerHandler) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, h.validate, "id")
	if !ok {
		return
	}

	var req UpdateWorkerRequest
	if fields := decodeJSON(w, r, h.validate, &req); len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	worker, err := h.svc.UpdateWorker(r.Context(), id, entities.WorkerChanges{Name: req.Nombre, Active: req.Activo})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, WorkerEntityToJSON(worker), http.StatusOK)
}

// RemoveWorker
// @Summary      Remove worker
// @Tags         workers
// @Param        id   path  string  true  "Worker id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Worker has orders"
// @Security     BearerAuth
// @Router       /workers/{id} [delete]
func (h *WorkerHandler) RemoveWorker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, h.validate, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveWorker(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
