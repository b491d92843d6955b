package entities

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage keeps the row offset within a postgres int4.
	MaxPage = math.MaxInt32 / MaxPageSize
)

type OrderSortField string

const (
	SortByCreatedAt OrderSortField = "fechaCreacion"
	SortByDueDate   OrderSortField = "fechaEntrega"
	SortByStatus    OrderSortField = "estado"
	SortByType      OrderSortField = "tipo"
	SortByTotal     OrderSortField = "total"
	SortByBag       OrderSortField = "bolsaId"
	SortByClient    OrderSortField = "cliente"
)

func (f OrderSortField) IsValid() bool {
	switch f {
	case SortByCreatedAt, SortByDueDate, SortByStatus, SortByType, SortByTotal, SortByBag, SortByClient:
		return true
	}
	return false
}

type OrderFilter struct {
	Search    string
	Statuses  []OrderStatus
	Page      int
	PageSize  int
	SortField OrderSortField
	SortDesc  bool
}

// Normalize fills defaults and clamps paging values.
func (f OrderFilter) Normalize() OrderFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	if !f.SortField.IsValid() {
		f.SortField = SortByCreatedAt
		f.SortDesc = true
	}
	return f
}

func (f OrderFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type Page[T any] struct {
	Data     []T
	Total    int
	Page     int
	PageSize int
	LastPage int
}

func NewPage[T any](data []T, total, page, pageSize int) Page[T] {
	if data == nil {
		data = []T{}
	}
	lastPage := 0
	if pageSize > 0 {
		lastPage = (total + pageSize - 1) / pageSize
	}
	return Page[T]{
		Data:     data,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		LastPage: lastPage,
	}
}

// StatusCounts always carries every status.
type StatusCounts map[OrderStatus]int

func NewStatusCounts(raw map[OrderStatus]int) StatusCounts {
	counts := make(StatusCounts, len(OrderStatuses))
	for _, s := range OrderStatuses {
		counts[s] = raw[s]
	}
	return counts
}

func (c StatusCounts) InFlow() int {
	total := 0
	for _, s := range InFlowStatuses {
		total += c[s]
	}
	return total
}

type ClientFilter struct {
	Search   string
	Page     int
	PageSize int
}

func (f ClientFilter) Normalize() ClientFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	return f
}

func (f ClientFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
