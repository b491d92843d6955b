package entities_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := map[entities.OrderStatus][]entities.OrderStatus{
		entities.StatusPendiente:        {entities.StatusEnProduccion, entities.StatusCancelado},
		entities.StatusEnProduccion:     {entities.StatusEnProceso, entities.StatusCancelado},
		entities.StatusEnProceso:        {entities.StatusListoParaEntrega, entities.StatusCancelado},
		entities.StatusListoParaEntrega: {entities.StatusEntregado, entities.StatusCancelado},
	}

	for _, from := range entities.OrderStatuses {
		for _, to := range entities.OrderStatuses {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				assert.Equal(t, want, from.CanTransitionTo(to))
			})
		}
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, entities.StatusEntregado.IsTerminal())
	assert.True(t, entities.StatusCancelado.IsTerminal())
	assert.Empty(t, entities.StatusEntregado.NextStatuses())
	assert.Empty(t, entities.StatusCancelado.NextStatuses())

	for _, s := range entities.InFlowStatuses {
		assert.False(t, s.IsTerminal(), s)
	}
}

func TestParseOrderType(t *testing.T) {
	testCases := []struct {
		in     string
		want   entities.OrderType
		wantOK bool
	}{
		{"bordado", entities.OrderTypeBordado, true},
		{"Estampado_y_Bordado", entities.OrderTypeEstampadoYBordado, true},
		{" OTROS ", entities.OrderTypeOtros, true},
		{"borda", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := entities.ParseOrderType(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestOrder_Stamp(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	var o entities.Order
	o.Stamp(entities.StatusEnProceso, at)
	assert.Nil(t, o.ProductionStartedAt)
	assert.Nil(t, o.FinishedAt)

	o.Stamp(entities.StatusEnProduccion, at)
	o.Stamp(entities.StatusListoParaEntrega, at)
	o.Stamp(entities.StatusEntregado, at)
	o.Stamp(entities.StatusCancelado, at)

	assert.Equal(t, at, *o.ProductionStartedAt)
	assert.Equal(t, at, *o.FinishedAt)
	assert.Equal(t, at, *o.DeliveredAt)
	assert.Equal(t, at, *o.CancelledAt)
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(entities.ErrBagOccupied, entities.ErrConflict))
	assert.True(t, errors.Is(entities.ErrInvalidTransition, entities.ErrForbidden))
	assert.True(t, errors.Is(entities.ErrOrderNotFound, entities.ErrNotFound))
	assert.False(t, errors.Is(entities.ErrOrderNotFound, entities.ErrConflict))

	batch := entities.NewBatchError(entities.ErrNotFound, "no active order for bags", []string{"9v"})
	assert.True(t, errors.Is(batch, entities.ErrNotFound))
	assert.Contains(t, batch.Error(), "9v")

	imgErr := &entities.ImageError{Reason: "too large"}
	assert.True(t, errors.Is(imgErr, entities.ErrValidation))
	assert.True(t, errors.Is(entities.FieldErrors{"a": "b"}, entities.ErrValidation))
}
