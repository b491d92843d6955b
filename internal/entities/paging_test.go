package entities_test

import (
	"math"
	"testing"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestOrderFilter_Normalize(t *testing.T) {
	f := entities.OrderFilter{Page: 0, PageSize: 500, SortField: "nope"}.Normalize()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, entities.MaxPageSize, f.PageSize)
	assert.Equal(t, entities.SortByCreatedAt, f.SortField)
	assert.True(t, f.SortDesc)
	assert.Equal(t, 0, f.Offset())

	f = entities.OrderFilter{Page: 3, PageSize: 20, SortField: entities.SortByTotal}.Normalize()
	assert.Equal(t, 40, f.Offset())
	assert.False(t, f.SortDesc)
}

func TestFilter_NormalizeClampsPage(t *testing.T) {
	f := entities.OrderFilter{Page: math.MaxInt64, PageSize: 10}.Normalize()
	assert.Equal(t, entities.MaxPage, f.Page)
	assert.GreaterOrEqual(t, f.Offset(), 0)
	assert.LessOrEqual(t, f.Offset(), math.MaxInt32)

	c := entities.ClientFilter{Page: math.MaxInt64, PageSize: entities.MaxPageSize}.Normalize()
	assert.Equal(t, entities.MaxPage, c.Page)
	assert.GreaterOrEqual(t, c.Offset(), 0)
	assert.LessOrEqual(t, c.Offset(), math.MaxInt32)
}

func TestNewPage(t *testing.T) {
	p := entities.NewPage[int](nil, 0, 1, 10)
	assert.Equal(t, []int{}, p.Data)
	assert.Equal(t, 0, p.LastPage)

	p = entities.NewPage([]int{1, 2}, 21, 3, 10)
	assert.Equal(t, 3, p.LastPage)
}

func TestStatusCounts(t *testing.T) {
	counts := entities.NewStatusCounts(nil)
	assert.Len(t, counts, 6)
	for _, s := range entities.OrderStatuses {
		assert.Equal(t, 0, counts[s])
	}
	assert.Equal(t, 0, counts.InFlow())

	counts = entities.NewStatusCounts(map[entities.OrderStatus]int{
		entities.StatusPendiente: 2,
		entities.StatusEnProceso: 1,
		entities.StatusEntregado: 7,
		entities.StatusCancelado: 3,
	})
	assert.Equal(t, 3, counts.InFlow())
	assert.Equal(t, 0, counts[entities.StatusListoParaEntrega])
}
