package repo_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return sqlx.NewDb(db, "postgres"), mock
}

var orderViewRowColumns = []string{
	"id", "type", "description", "garment_count", "deposit", "total",
	"due_date", "created_at", "production_started_at", "finished_at",
	"delivered_at", "cancelled_at", "image_path", "status",
	"bag_id", "client_id", "worker_id",
	"client_name", "client_national_id", "client_phone", "client_created_at",
	"worker_name", "worker_active",
}

func orderViewRows(ids ...string) *sqlmock.Rows {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(orderViewRowColumns)
	for _, id := range ids {
		rows.AddRow(
			id, "BORDADO", "logo on 10 polos", 10, "50.00", "150.00",
			due, created, created, nil,
			nil, nil, "uploads/a.png", "EN_PRODUCCION",
			"7", "client-1", "worker-1",
			"Ana Perez", "0102030405", "0999999999", created,
			"Luis", true,
		)
	}
	return rows
}
