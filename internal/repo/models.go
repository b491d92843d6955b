package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           string          `db:"id"`
	Type         string          `db:"type"`
	Description  string          `db:"description"`
	GarmentCount int             `db:"garment_count"`
	Deposit      decimal.Decimal `db:"deposit"`
	Total        decimal.Decimal `db:"total"`
	DueDate      time.Time       `db:"due_date"`
	CreatedAt    time.Time       `db:"created_at"`

	ProductionStartedAt sql.NullTime `db:"production_started_at"`
	FinishedAt          sql.NullTime `db:"finished_at"`
	DeliveredAt         sql.NullTime `db:"delivered_at"`
	CancelledAt         sql.NullTime `db:"cancelled_at"`

	ImagePath sql.NullString `db:"image_path"`
	Status    string         `db:"status"`
	BagID     string         `db:"bag_id"`
	ClientID  string         `db:"client_id"`
	WorkerID  string         `db:"worker_id"`
}

// OrderView is an order row joined with its client and worker.
type OrderView struct {
	Order
	ClientName       string    `db:"client_name"`
	ClientNationalID string    `db:"client_national_id"`
	ClientPhone      string    `db:"client_phone"`
	ClientCreatedAt  time.Time `db:"client_created_at"`
	WorkerName       string    `db:"worker_name"`
	WorkerActive     bool      `db:"worker_active"`
}

type Bag struct {
	ID     string `db:"id"`
	Status string `db:"status"`
}

type Client struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	NationalID string    `db:"national_id"`
	Phone      string    `db:"phone"`
	CreatedAt  time.Time `db:"created_at"`
}

type Worker struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Active bool   `db:"active"`
}

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:           o.ID,
		Type:         entities.OrderType(o.Type),
		Description:  o.Description,
		GarmentCount: o.GarmentCount,
		Deposit:      o.Deposit,
		Total:        o.Total,
		DueDate:      o.DueDate,
		CreatedAt:    o.CreatedAt,

		ProductionStartedAt: nullTimeToPtr(o.ProductionStartedAt),
		FinishedAt:          nullTimeToPtr(o.FinishedAt),
		DeliveredAt:         nullTimeToPtr(o.DeliveredAt),
		CancelledAt:         nullTimeToPtr(o.CancelledAt),

		ImagePath: nullStringToString(o.ImagePath),
		Status:    entities.OrderStatus(o.Status),
		BagID:     o.BagID,
		ClientID:  o.ClientID,
		WorkerID:  o.WorkerID,
	}
}

func OrderViewToEntity(v OrderView) entities.Order {
	order := OrderToEntity(v.Order)
	order.Client = entities.Client{
		ID:         v.ClientID,
		Name:       v.ClientName,
		NationalID: v.ClientNationalID,
		Phone:      v.ClientPhone,
		CreatedAt:  v.ClientCreatedAt,
	}
	order.Worker = entities.Worker{
		ID:     v.WorkerID,
		Name:   v.WorkerName,
		Active: v.WorkerActive,
	}
	return order
}

func BagToEntity(b Bag) entities.Bag {
	return entities.Bag{ID: b.ID, Status: entities.BagStatus(b.Status)}
}

func ClientToEntity(c Client) entities.Client {
	return entities.Client{
		ID:         c.ID,
		Name:       c.Name,
		NationalID: c.NationalID,
		Phone:      c.Phone,
		CreatedAt:  c.CreatedAt,
	}
}

func WorkerToEntity(w Worker) entities.Worker {
	return entities.Worker{ID: w.ID, Name: w.Name, Active: w.Active}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         entities.Role(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
