package handler

import (
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"

	"github.com/shopspring/decimal"
)

// Order is an order with its client and worker
type Order struct {
	ID                    string          `json:"id"`
	Tipo                  string          `json:"tipo"`
	Descripcion           string          `json:"descripcion"`
	CantidadPrendas       int             `json:"cantidadPrendas"`
	Abono                 decimal.Decimal `json:"abono" swaggertype:"string"`
	Total                 decimal.Decimal `json:"total" swaggertype:"string"`
	FechaEntrega          time.Time       `json:"fechaEntrega"`
	FechaCreacion         time.Time       `json:"fechaCreacion"`
	FechaInicioProduccion *time.Time      `json:"fechaInicioProduccion"`
	FechaFinalizacion     *time.Time      `json:"fechaFinalizacion"`
	FechaEntregaReal      *time.Time      `json:"fechaEntregaReal"`
	FechaCancelacion      *time.Time      `json:"fechaCancelacion"`
	ImagenURL             *string         `json:"imagenUrl"`
	Estado                string          `json:"estado"`
	BolsaID               string          `json:"bolsaId"`
	Cliente               Client          `json:"cliente"`
	Trabajador            Worker          `json:"trabajador"`
}

type Client struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Cedula    string    `json:"cedula"`
	Telefono  string    `json:"telefono"`
	CreatedAt time.Time `json:"fechaCreacion"`
}

type Worker struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"activo"`
}

type Bag struct {
	ID     string `json:"id"`
	Estado string `json:"estado"`
}

type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Rol           string    `json:"rol"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

// Page is the paged list envelope
type Page[T any] struct {
	Data     []T `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	LastPage int `json:"lastPage"`
}

type CountResponse struct {
	Count int `json:"count"`
}

// ClientInput identifies the customer at intake; an existing cedula is reused.
type ClientInput struct {
	Nombre   string `json:"nombre" validate:"required,max=120"`
	Cedula   string `json:"cedula" validate:"required,max=20"`
	Telefono string `json:"telefono" validate:"required,max=20"`
}

// CreateOrderRequest is the JSON carried in the "data" part of POST /orders
type CreateOrderRequest struct {
	Tipo            string           `json:"tipo" validate:"required,oneof=BORDADO ESTAMPADO ESTAMPADO_Y_BORDADO OTROS"`
	Descripcion     string           `json:"descripcion" validate:"required,max=500"`
	CantidadPrendas *int             `json:"cantidadPrendas" validate:"required,gte=0"`
	Abono           *decimal.Decimal `json:"abono" swaggertype:"string"`
	Total           *decimal.Decimal `json:"total" swaggertype:"string"`
	FechaEntrega    time.Time        `json:"fechaEntrega" validate:"required"`
	BolsaID         string           `json:"bolsaId" validate:"required,alphanum,max=10"`
	TrabajadorID    string           `json:"trabajadorId" validate:"required,uuid"`
	Cliente         ClientInput      `json:"cliente"`
}

type ClientPatch struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=120"`
	Telefono *string `json:"telefono" validate:"omitempty,min=1,max=20"`
}

// UpdateOrderRequest is the JSON carried in the "data" part of PATCH /orders/{id}.
// An explicit "imagenUrl": null removes the stored image.
type UpdateOrderRequest struct {
	Tipo            *string          `json:"tipo" validate:"omitempty,oneof=BORDADO ESTAMPADO ESTAMPADO_Y_BORDADO OTROS"`
	Descripcion     *string          `json:"descripcion" validate:"omitempty,min=1,max=500"`
	CantidadPrendas *int             `json:"cantidadPrendas" validate:"omitempty,gte=0"`
	Abono           *decimal.Decimal `json:"abono" swaggertype:"string"`
	Total           *decimal.Decimal `json:"total" swaggertype:"string"`
	FechaEntrega    *time.Time       `json:"fechaEntrega"`
	TrabajadorID    *string          `json:"trabajadorId" validate:"omitempty,uuid"`
	Cliente         *ClientPatch     `json:"cliente"`
}

type CancelBatchRequest struct {
	BagIDs []string `json:"bagIds" validate:"required,min=1,dive,required,max=10"`
}

type DeleteOrdersRequest struct {
	OrderIDs []string `json:"orderIds" validate:"required,min=1,dive,uuid"`
}

type CreateBagRequest struct {
	ID string `json:"id" validate:"required,alphanum,max=10"`
}

type UpdateClientRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=120"`
	Cedula   *string `json:"cedula" validate:"omitempty,min=1,max=20"`
	Telefono *string `json:"telefono" validate:"omitempty,min=1,max=20"`
}

type CreateWorkerRequest struct {
	Nombre string `json:"nombre" validate:"required,max=120"`
}

type UpdateWorkerRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1,max=120"`
	Activo *bool   `json:"activo"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Rol      string `json:"rol" validate:"required,oneof=ADMIN SUPER_ADMIN"`
}

// checkAmounts adds field errors for missing, negative or sub-cent money amounts.
func checkAmounts(fields entities.FieldErrors, required bool, amounts map[string]*decimal.Decimal) {
	for name, v := range amounts {
		switch {
		case v == nil && required:
			fields[name] = "required"
		case v == nil:
		case v.IsNegative():
			fields[name] = "gte"
		case !v.Equal(v.Round(2)):
			fields[name] = "decimals"
		}
	}
}

func (r CreateOrderRequest) ToEntity() entities.NewOrder {
	return entities.NewOrder{
		Type:         entities.OrderType(r.Tipo),
		Description:  r.Descripcion,
		GarmentCount: *r.CantidadPrendas,
		Deposit:      *r.Abono,
		Total:        *r.Total,
		DueDate:      r.FechaEntrega,
		BagID:        r.BolsaID,
		WorkerID:     r.TrabajadorID,
		Client: entities.Client{
			Name:       r.Cliente.Nombre,
			NationalID: r.Cliente.Cedula,
			Phone:      r.Cliente.Telefono,
		},
	}
}

func (r UpdateOrderRequest) ToEntity() entities.OrderChanges {
	changes := entities.OrderChanges{
		Description:  r.Descripcion,
		GarmentCount: r.CantidadPrendas,
		Deposit:      r.Abono,
		Total:        r.Total,
		DueDate:      r.FechaEntrega,
		WorkerID:     r.TrabajadorID,
	}
	if r.Tipo != nil {
		t := entities.OrderType(*r.Tipo)
		changes.Type = &t
	}
	if r.Cliente != nil {
		changes.ClientName = r.Cliente.Nombre
		changes.ClientPhone = r.Cliente.Telefono
	}
	return changes
}

func OrderEntityToJSON(o entities.Order) Order {
	var image *string
	if o.ImagePath != "" {
		p := o.ImagePath
		image = &p
	}

	return Order{
		ID:                    o.ID,
		Tipo:                  string(o.Type),
		Descripcion:           o.Description,
		CantidadPrendas:       o.GarmentCount,
		Abono:                 o.Deposit,
		Total:                 o.Total,
		FechaEntrega:          o.DueDate,
		FechaCreacion:         o.CreatedAt,
		FechaInicioProduccion: o.ProductionStartedAt,
		FechaFinalizacion:     o.FinishedAt,
		FechaEntregaReal:      o.DeliveredAt,
		FechaCancelacion:      o.CancelledAt,
		ImagenURL:             image,
		Estado:                string(o.Status),
		BolsaID:               o.BagID,
		Cliente:               ClientEntityToJSON(o.Client),
		Trabajador:            WorkerEntityToJSON(o.Worker),
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func ClientEntityToJSON(c entities.Client) Client {
	return Client{
		ID:        c.ID,
		Nombre:    c.Name,
		Cedula:    c.NationalID,
		Telefono:  c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func ClientsEntityToJSON(clients []entities.Client) []Client {
	res := make([]Client, 0, len(clients))
	for _, c := range clients {
		res = append(res, ClientEntityToJSON(c))
	}
	return res
}

func WorkerEntityToJSON(w entities.Worker) Worker {
	return Worker{ID: w.ID, Nombre: w.Name, Activo: w.Active}
}

func WorkersEntityToJSON(workers []entities.Worker) []Worker {
	res := make([]Worker, 0, len(workers))
	for _, w := range workers {
		res = append(res, WorkerEntityToJSON(w))
	}
	return res
}

func BagEntityToJSON(b entities.Bag) Bag {
	return Bag{ID: b.ID, Estado: string(b.Status)}
}

func UserEntityToJSON(u entities.User) User {
	return User{ID: u.ID, Email: u.Email, Rol: string(u.Role), FechaCreacion: u.CreatedAt}
}

func PageToJSON[E, J any](p entities.Page[E], convert func([]E) []J) Page[J] {
	return Page[J]{
		Data:     convert(p.Data),
		Total:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
		LastPage: p.LastPage,
	}
}

// StatusCountsToJSON keys the counts by status name.
func StatusCountsToJSON(c entities.StatusCounts) map[string]int {
	res := make(map[string]int, len(entities.OrderStatuses))
	for _, s := range entities.OrderStatuses {
		res[string(s)] = c[s]
	}
	return res
}
