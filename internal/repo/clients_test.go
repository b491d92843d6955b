package repo_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/pedidos-service/internal/entities"
	"github.com/SergeyBogomolovv/pedidos-service/internal/repo"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientRowColumns = []string{"id", "name", "national_id", "phone", "created_at"}

func TestPostgresRepo_UpsertClient(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresRepo(db)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"ON CONFLICT (national_id) DO UPDATE SET name = EXCLUDED.name, phone = EXCLUDED.phone RETURNING id, name, national_id, phone, created_at",
	)).
		WithArgs("new-id", "Ana", "0102", "0999").
		WillReturnRows(sqlmock.NewRows(clientRowColumns).AddRow("existing-id", "Ana", "0102", "0999", created))

	client, err := r.UpsertClient(context.Background(), entities.Client{
		ID: "new-id", Name: "Ana", NationalID: "0102", Phone: "0999",
	})
	require.NoError(t, err)
	assert.Equal(t, "existing-id", client.ID)
	assert.Equal(t, created, client.CreatedAt)
}

func TestPostgresRepo_SearchClients(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE (name ILIKE $1 OR national_id ILIKE $2 OR phone ILIKE $3) ORDER BY lower(name), id LIMIT 10",
	)).
		WithArgs(`%50\%%`, `%50\%%`, `%50\%%`).
		WillReturnRows(sqlmock.NewRows(clientRowColumns))

	clients, err := r.SearchClients(context.Background(), "50%", entities.ClientSearchLimit)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestPostgresRepo_UpdateClient_DuplicateNationalID(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectExec("UPDATE clients").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "clients_national_id_key"})

	err := r.UpdateClient(context.Background(), entities.Client{ID: "c1", NationalID: "0102"})
	assert.ErrorIs(t, err, entities.ErrClientExists)
}

func TestPostgresRepo_DeleteClient_HasOrders(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectExec("DELETE FROM clients").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "orders_client_id_fkey"})

	err := r.DeleteClient(context.Background(), "c1")
	assert.ErrorIs(t, err, entities.ErrClientHasOrders)
}

func TestPostgresRepo_ListWorkers(t *testing.T) {
	db, mock := newMockDB(t)
	r := repo.NewPostgresRepo(db)

	active := true
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, active FROM workers WHERE active = $1 AND name ILIKE $2 ORDER BY lower(name), id",
	)).
		WithArgs(true, "%lu%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "active"}).AddRow("w1", "Luis", true))

	workers, err := r.ListWorkers(context.Background(), entities.WorkerFilter{Active: &active, Search: "lu"})
	require.NoError(t, err)
	assert.Equal(t, []entities.Worker{{ID: "w1", Name: "Luis", Active: true}}, workers)
}
