package repository_test

import (
	"context"
	"errors"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/repository"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mock
}

func beginTx(t *testing.T, conn *postgres.Connection, mock sqlmock.Sqlmock) *sqlx.Tx {
	t.Helper()

	mock.ExpectBegin()

	tx, err := conn.Write.Beginx()
	require.NoError(t, err)

	return tx
}

var (
	insertCustomer = `INSERT INTO customers \(name,email,phone_no\) VALUES \(\$1,\$2,\$3\) ` +
		`ON CONFLICT \(email\) DO NOTHING RETURNING customer_id`
	selectCustomer = regexp.QuoteMeta("SELECT customer_id FROM customers WHERE email = $1")
)

func TestCustomerRepository_UpsertTx(t *testing.T) {
	customer := model.Customer{Name: "Asha", Email: "asha@example.com", Phone: "98450"}

	t.Run("new email inserts the customer", func(t *testing.T) {
		conn, mock := newConnection(t)
		repo := repository.New(conn, mocks.NewOtel())
		tx := beginTx(t, conn, mock)

		mock.ExpectQuery(selectCustomer).
			WithArgs("asha@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))
		mock.ExpectQuery(insertCustomer).
			WithArgs("Asha", "asha@example.com", "98450").
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}).AddRow(int64(111)))

		id, err := repo.UpsertTx(context.Background(), tx, customer)

		require.NoError(t, err)
		assert.Equal(t, int64(111), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("known email reuses the customer without inserting", func(t *testing.T) {
		conn, mock := newConnection(t)
		repo := repository.New(conn, mocks.NewOtel())
		tx := beginTx(t, conn, mock)

		// any INSERT here would fail the test as an unexpected query
		mock.ExpectQuery(selectCustomer).
			WithArgs("asha@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}).AddRow(int64(115)))

		id, err := repo.UpsertTx(context.Background(), tx, customer)

		require.NoError(t, err)
		assert.Equal(t, int64(115), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("email registered concurrently falls back to the lookup", func(t *testing.T) {
		conn, mock := newConnection(t)
		repo := repository.New(conn, mocks.NewOtel())
		tx := beginTx(t, conn, mock)

		mock.ExpectQuery(selectCustomer).
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))
		mock.ExpectQuery(insertCustomer).
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))
		mock.ExpectQuery(selectCustomer).
			WithArgs("asha@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}).AddRow(int64(116)))

		id, err := repo.UpsertTx(context.Background(), tx, customer)

		require.NoError(t, err)
		assert.Equal(t, int64(116), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lookup failure", func(t *testing.T) {
		conn, mock := newConnection(t)
		repo := repository.New(conn, mocks.NewOtel())
		tx := beginTx(t, conn, mock)

		mock.ExpectQuery(selectCustomer).WillReturnError(errors.New("connection reset"))

		_, err := repo.UpsertTx(context.Background(), tx, customer)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure", func(t *testing.T) {
		conn, mock := newConnection(t)
		repo := repository.New(conn, mocks.NewOtel())
		tx := beginTx(t, conn, mock)

		mock.ExpectQuery(selectCustomer).
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))
		mock.ExpectQuery(insertCustomer).WillReturnError(errors.New("connection reset"))

		_, err := repo.UpsertTx(context.Background(), tx, customer)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCustomerRepository_GetSummaries(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	checkIn := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT c.name, c.email, c.phone_no, lb.room_id, r.room_type, lb.checkin_date, lb.checkout_date ` +
		`FROM customers c LEFT JOIN LATERAL \(.*ORDER BY b.checkin_date DESC, b.booking_id DESC LIMIT 1 \) lb ON TRUE ` +
		`LEFT JOIN rooms r ON r.room_id = lb.room_id ORDER BY c.name`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "email", "phone_no", "room_id", "room_type", "checkin_date", "checkout_date"}).
			AddRow("Arun", "arun@example.com", "902", int64(201), "Deluxe", checkIn, checkOut).
			AddRow("Zara", "zara@example.com", "900", nil, nil, nil, nil))

	got, err := repo.GetSummaries(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(201), *got[0].RoomID)
	assert.Equal(t, "Deluxe", *got[0].RoomType)
	assert.True(t, checkOut.Equal(*got[0].CheckOut))
	assert.Nil(t, got[1].RoomID)
	assert.Nil(t, got[1].CheckOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_GetSummaries_Error(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	mock.ExpectQuery("FROM customers c").WillReturnError(errors.New("relation does not exist"))

	got, err := repo.GetSummaries(context.Background())

	assert.Error(t, err)
	assert.Nil(t, got)
}
