package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
}

func NewHealthHandler(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger.With(slog.String("handler", "health")),
		db:     db,
	}
}

func (h *HealthHandler) Init(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports liveness together with database reachability.
// @Summary      Health check
// @Tags         health
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "database ping failed", slog.Any("error", err))
		utils.WriteJSON(w, HealthResponse{Status: "degraded", Database: "down"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, HealthResponse{Status: "ok", Database: "up"}, http.StatusOK)
}
