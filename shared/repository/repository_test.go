package repository_test

import (
	"context"
	"errors"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/shared/dto"
	"hotel/shared/repository"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guest struct {
	ID    int64  `db:"guest_id"   generated:"true"`
	Name  string `db:"name"`
	Level string `db:"level_name" table:"levels" column:"name"`
}

func (guest) GetJoinQuery() string {
	return "LEFT JOIN levels ON levels.level_id = guests.level_id"
}

func newConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mock
}

func TestNewRepository_InsertColumns(t *testing.T) {
	conn, _ := newConnection(t)
	repo := repository.NewRepository[guest]("guest", "guests", "guest_id", conn, mocks.NewOtel())

	assert.Equal(t, []string{"name"}, repo.InsertColumns)
}

func TestRepository_GetAll(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[guest]("guest", "guests", "guest_id", conn, mocks.NewOtel())

	filter := dto.FilterGroup{}
	filter.Add("guests", "name", "Asha")

	params := dto.QueryParams{Page: 2, Limit: 2}.Sort("guests.name " + dto.SortDirAsc)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT guests.guest_id, guests.name, levels.name AS level_name FROM guests " +
			"LEFT JOIN levels ON levels.level_id = guests.level_id WHERE (guests.name = $1) " +
			"ORDER BY guests.name ASC LIMIT $2 OFFSET $3",
	)).
		WithArgs("Asha", 2, 2).
		WillReturnRows(sqlmock.NewRows([]string{"guest_id", "name", "level_name"}).
			AddRow(int64(111), "Asha", "Gold"))

	got, err := repo.GetAll(context.Background(), params, filter)

	require.NoError(t, err)
	assert.Equal(t, []guest{{ID: 111, Name: "Asha", Level: "Gold"}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll_NoPagination(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[guest]("guest", "guests", "guest_id", conn, mocks.NewOtel())

	mock.ExpectQuery(`FROM guests LEFT JOIN levels .*ORDER BY guests.guest_id ASC\s*$`).
		WillReturnRows(sqlmock.NewRows([]string{"guest_id", "name", "level_name"}))

	got, err := repo.GetAll(context.Background(), dto.QueryParams{}.Sort("guests.guest_id ASC"), dto.FilterGroup{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll_Error(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[guest]("guest", "guests", "guest_id", conn, mocks.NewOtel())

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	_, err := repo.GetAll(context.Background(), dto.QueryParams{}, dto.FilterGroup{})

	assert.ErrorContains(t, err, "connection refused")
}

func TestRepository_Get(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		want    guest
		wantErr bool
	}{
		{
			name: "found",
			rows: sqlmock.NewRows([]string{"guest_id", "name", "level_name"}).AddRow(int64(111), "Asha", "Gold"),
			want: guest{ID: 111, Name: "Asha", Level: "Gold"},
		},
		{
			name: "no rows returns zero value",
			rows: sqlmock.NewRows([]string{"guest_id", "name", "level_name"}),
			want: guest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnection(t)
			repo := repository.NewRepository[guest]("guest", "guests", "guest_id", conn, mocks.NewOtel())

			mock.ExpectQuery(regexp.QuoteMeta("WHERE (guests.guest_id = $1) LIMIT 1")).
				WithArgs(int64(111)).
				WillReturnRows(tt.rows)

			filter := dto.FilterGroup{}
			filter.Add("guests", "guest_id", int64(111))

			got, err := repo.Get(context.Background(), filter)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_InsertTx(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[guest]("guest", "guests", "guest_id", conn, mocks.NewOtel())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO guests (name) VALUES ($1)")).
		WithArgs("Asha").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.Write.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.InsertTx(context.Background(), tx, guest{Name: "Asha"}))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertReturningTx(t *testing.T) {
	conn, mock := newConnection(t)
	repo := repository.NewRepository[guest]("guest", "guests", "guest_id", conn, mocks.NewOtel())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO guests (name) VALUES ($1) RETURNING guest_id")).
		WithArgs("Asha").
		WillReturnRows(sqlmock.NewRows([]string{"guest_id"}).AddRow(int64(111)))
	mock.ExpectRollback()

	tx, err := conn.Write.Beginx()
	require.NoError(t, err)

	id, err := repo.InsertReturningTx(context.Background(), tx, guest{Name: "Asha"})

	require.NoError(t, err)
	assert.Equal(t, int64(111), id)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
