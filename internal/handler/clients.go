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

type ClientService interface {
	GetClient(ctx context.Context, id string) (entities.Client, error)
	SearchClients(ctx context.Context, term string) ([]entities.Client, error)
	ListClients(ctx context.Context, f entities.ClientFilter) (entities.Page[entities.Client], error)
	UpdateClient(ctx context.Context, id string, changes entities.ClientChanges) (entities.Client, error)
	RemoveClient(ctx context.Context, id string) error
}

type ClientHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ClientService
}

func NewClientHandler(logger *slog.Logger, svc ClientService) *ClientHandler {
	return &ClientHandler{
		logger:   logger.With(slog.String("handler", "client")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *ClientHandler) Init(r chi.Router) {
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", h.ListClients)
		r.Get("/search", h.SearchClients)
		r.Get("/{id}", h.GetClient)
		r.Patch("/{id}", h.UpdateClient)
		r.Delete("/{id}", h.RemoveClient)
	})
}

// ListClients returns a page of clients.
// @Summary      List clients
// @Tags         clients
// @Param        search  query  string  false  "Name, cedula or phone"
// @Param        page    query  int     false  "Page, from 1"
// @Param        limit   query  int     false  "Page size, max 100"
// @Success      200  {object}  Page[Client]
// @Security     BearerAuth
// @Router       /clients [get]
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	filter, fields := parseClientFilter(r.URL.Query())
	if len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	page, err := h.svc.ListClients(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, PageToJSON(page, ClientsEntityToJSON), http.StatusOK)
}

// SearchClients serves the intake form autocomplete.
// @Summary      Search clients
// @Tags         clients
// @Param        term  query  string  true  "Search term"
// @Success      200  {array}   Client
// @Security     BearerAuth
// @Router       /clients/search [get]
func (h *ClientHandler) SearchClients(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("term"))
	if term == "" {
		utils.WriteJSON(w, []Client{}, http.StatusOK)
		return
	}

	clients, err := h.svc.SearchClients(r.Context(), term)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, ClientsEntityToJSON(clients), http.StatusOK)
}

// GetClient
// @Summary      Get client
// @Tags         clients
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  Client
// @Failure      404  {object}  utils.ErrorResponse
// @Security     BearerAuth
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, h.validate, "id")
	if !ok {
		return
	}

	client, err := h.svc.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, ClientEntityToJSON(client), http.StatusOK)
}

// UpdateClient
// @Summary      Update client
// @Tags         clients
// @Param        id       path      string               true  "Client id"
// @Param        request  body      UpdateClientRequest  true  "Fields to change"
// @Success      200  {object}  Client
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Cedula taken"
// @Security     BearerAuth
// @Router       /clients/{id} [patch]
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, h.validate, "id")
	if !ok {
		return
	}

	var req UpdateClientRequest
	if fields := decodeJSON(w, r, h.validate, &req); len(fields) > 0 {
		utils.WriteFieldErrors(w, fields)
		return
	}

	client, err := h.svc.UpdateClient(r.Context(), id, entities.ClientChanges{
		Name:       req.Nombre,
		NationalID: req.Cedula,
		Phone:      req.Telefono,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, ClientEntityToJSON(client), http.StatusOK)
}

// RemoveClient
// @Summary      Remove client
// @Tags         clients
// @Param        id   path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Client has orders"
// @Security     BearerAuth
// @Router       /clients/{id} [delete]
func (h *ClientHandler) RemoveClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, h.validate, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveClient(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
