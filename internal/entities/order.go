package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeBordado           OrderType = "BORDADO"
	OrderTypeEstampado         OrderType = "ESTAMPADO"
	OrderTypeEstampadoYBordado OrderType = "ESTAMPADO_Y_BORDADO"
	OrderTypeOtros             OrderType = "OTROS"
)

var OrderTypes = []OrderType{
	OrderTypeBordado,
	OrderTypeEstampado,
	OrderTypeEstampadoYBordado,
	OrderTypeOtros,
}

func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeBordado, OrderTypeEstampado, OrderTypeEstampadoYBordado, OrderTypeOtros:
		return true
	}
	return false
}

// ParseOrderType matches s against the enum values ignoring case.
func ParseOrderType(s string) (OrderType, bool) {
	t := OrderType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}

type OrderStatus string

const (
	StatusPendiente        OrderStatus = "PENDIENTE"
	StatusEnProduccion     OrderStatus = "EN_PRODUCCION"
	StatusEnProceso        OrderStatus = "EN_PROCESO"
	StatusListoParaEntrega OrderStatus = "LISTO_PARA_ENTREGA"
	StatusEntregado        OrderStatus = "ENTREGADO"
	StatusCancelado        OrderStatus = "CANCELADO"
)

// OrderStatuses lists every status in workflow order.
var OrderStatuses = []OrderStatus{
	StatusPendiente,
	StatusEnProduccion,
	StatusEnProceso,
	StatusListoParaEntrega,
	StatusEntregado,
	StatusCancelado,
}

// InFlowStatuses are the non-terminal statuses.
var InFlowStatuses = []OrderStatus{
	StatusPendiente,
	StatusEnProduccion,
	StatusEnProceso,
	StatusListoParaEntrega,
}

// TerminalStatuses have no outgoing transitions.
var TerminalStatuses = []OrderStatus{
	StatusEntregado,
	StatusCancelado,
}

var transitions = map[OrderStatus][]OrderStatus{
	StatusPendiente:        {StatusEnProduccion, StatusCancelado},
	StatusEnProduccion:     {StatusEnProceso, StatusCancelado},
	StatusEnProceso:        {StatusListoParaEntrega, StatusCancelado},
	StatusListoParaEntrega: {StatusEntregado, StatusCancelado},
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPendiente, StatusEnProduccion, StatusEnProceso,
		StatusListoParaEntrega, StatusEntregado, StatusCancelado:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusEntregado || s == StatusCancelado
}

// NextStatuses returns the statuses legally reachable from s.
func (s OrderStatus) NextStatuses() []OrderStatus {
	return transitions[s]
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

type Order struct {
	ID           string
	Type         OrderType
	Description  string
	GarmentCount int
	Deposit      decimal.Decimal
	Total        decimal.Decimal
	DueDate      time.Time
	CreatedAt    time.Time

	ProductionStartedAt *time.Time
	FinishedAt          *time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time

	// empty when the order has no image
	ImagePath string
	Status    OrderStatus

	BagID    string
	ClientID string
	WorkerID string

	// populated on reads only
	Client Client
	Worker Worker
}

// Stamp sets the timestamp column that belongs to status.
func (o *Order) Stamp(status OrderStatus, at time.Time) {
	switch status {
	case StatusEnProduccion:
		o.ProductionStartedAt = &at
	case StatusListoParaEntrega:
		o.FinishedAt = &at
	case StatusEntregado:
		o.DeliveredAt = &at
	case StatusCancelado:
		o.CancelledAt = &at
	}
}

// NewOrder is the intake request for an order.
type NewOrder struct {
	Type         OrderType
	Description  string
	GarmentCount int
	Deposit      decimal.Decimal
	Total        decimal.Decimal
	DueDate      time.Time

	BagID    string
	WorkerID string
	// found or created by national id
	Client Client

	Image *Image
}

// OrderChanges holds the fields an edit replaces. Nil means unchanged.
type OrderChanges struct {
	Type         *OrderType
	Description  *string
	GarmentCount *int
	Deposit      *decimal.Decimal
	Total        *decimal.Decimal
	DueDate      *time.Time
	WorkerID     *string

	ClientName  *string
	ClientPhone *string
}

// Apply copies the set fields into o.
func (c OrderChanges) Apply(o *Order) {
	if c.Type != nil {
		o.Type = *c.Type
	}
	if c.Description != nil {
		o.Description = *c.Description
	}
	if c.GarmentCount != nil {
		o.GarmentCount = *c.GarmentCount
	}
	if c.Deposit != nil {
		o.Deposit = *c.Deposit
	}
	if c.Total != nil {
		o.Total = *c.Total
	}
	if c.DueDate != nil {
		o.DueDate = *c.DueDate
	}
	if c.WorkerID != nil {
		o.WorkerID = *c.WorkerID
	}
}

func (c OrderChanges) TouchesClient() bool {
	return c.ClientName != nil || c.ClientPhone != nil
}
