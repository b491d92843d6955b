package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/pkg/utils"
)

var kindStatus = []struct {
	kind   error
	status int
}{
	{entities.ErrValidation, http.StatusBadRequest},
	{entities.ErrNotFound, http.StatusNotFound},
	{entities.ErrConflict, http.StatusConflict},
	{entities.ErrForbidden, http.StatusForbidden},
	{entities.ErrUnauthorized, http.StatusUnauthorized},
}

// writeError maps a service error to its response. Errors of unknown kind are
// logged and hidden behind a 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var fields entities.FieldErrors
	if errors.As(err, &fields) {
		utils.WriteFieldErrors(w, fields)
		return
	}

	var imgErr *entities.ImageError
	if errors.As(err, &imgErr) {
		utils.WriteFieldErrors(w, map[string]string{"imagen": imgErr.Reason})
		return
	}

	for _, ks := range kindStatus {
		if !errors.Is(err, ks.kind) {
			continue
		}

		var batchErr *entities.BatchError
		if errors.As(err, &batchErr) {
			utils.WriteErrorDetails(w, batchErr.Msg, map[string][]string{"ids": batchErr.IDs}, ks.status)
			return
		}

		msg, ok := entities.PublicMessage(err)
		if !ok {
			msg = ks.kind.Error()
		}
		utils.WriteError(w, msg, ks.status)
		return
	}

	logger.ErrorContext(r.Context(), "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}

func writeInvalidParam(w http.ResponseWriter, name, tag string) {
	utils.WriteFieldErrors(w, map[string]string{name: tag})
}
