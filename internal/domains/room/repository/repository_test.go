package repository_test

import (
	"context"
	"errors"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
	gDto "hotel/shared/dto"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lockRooms = regexp.QuoteMeta("SELECT room_id FROM rooms WHERE room_type = $1 ORDER BY room_id FOR UPDATE")
	freeRoom  = regexp.QuoteMeta("SELECT room_id FROM rooms WHERE room_type = $1 AND NOT EXISTS " +
		"(SELECT 1 FROM bookings b WHERE b.room_id = rooms.room_id AND b.checkin_date <= $2 AND b.checkout_date >= $3) " +
		"ORDER BY room_id LIMIT 1")

	checkIn  = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC)
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

func TestRoomRepository_FindAvailableTx(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantID    int64
		wantErr   bool
	}{
		{
			name: "lowest free room",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(lockRooms).
					WithArgs("Standard").
					WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow(int64(101)).AddRow(int64(102)))
				mock.ExpectQuery(freeRoom).
					WithArgs("Standard", checkOut, checkIn).
					WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow(int64(102)))
			},
			wantID: 102,
		},
		{
			name: "unknown room type",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(lockRooms).
					WithArgs("Standard").
					WillReturnRows(sqlmock.NewRows([]string{"room_id"}))
			},
			wantID: 0,
		},
		{
			name: "every room is taken",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(lockRooms).
					WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow(int64(101)))
				mock.ExpectQuery(freeRoom).
					WillReturnRows(sqlmock.NewRows([]string{"room_id"}))
			},
			wantID: 0,
		},
		{
			name: "lock failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(lockRooms).WillReturnError(errors.New("lock timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnection(t)
			repo := repository.New(conn, mocks.NewOtel())
			tx := beginTx(t, conn, mock)

			tt.setupMock(mock)

			id, err := repo.FindAvailableTx(context.Background(), tx, "Standard", checkIn, checkOut)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomRepository_GetAll(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.New(conn, mocks.NewOtel())

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT rooms.room_id, rooms.room_type, room_types.price_per_night FROM rooms " +
			"JOIN room_types ON room_types.room_type = rooms.room_type ORDER BY rooms.room_id ASC",
	)).
		WillReturnRows(sqlmock.NewRows([]string{"room_id", "room_type", "price_per_night"}).
			AddRow(int64(101), "Standard", "2500.00").
			AddRow(int64(201), "Deluxe", "4000.00"))

	got, err := repo.GetAll(context.Background(), gDto.QueryParams{}.Sort("rooms.room_id ASC"), gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, []model.Room{
		{ID: 101, RoomType: "Standard", PricePerNight: 2500},
		{ID: 201, RoomType: "Deluxe", PricePerNight: 4000},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
