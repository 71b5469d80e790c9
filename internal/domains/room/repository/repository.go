package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// a booking overlaps the requested stay when it starts on or before the
// requested checkout and ends on or after the requested check-in
const overlappingBooking = "NOT EXISTS (SELECT 1 FROM bookings b WHERE b.room_id = rooms.room_id " +
	"AND b.checkin_date <= ? AND b.checkout_date >= ?)"

type Room interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Room, error)
	// FindAvailableTx locks every room of roomType for the rest of tx and
	// returns the lowest room id free for the whole stay. Zero means every
	// room of the type is taken.
	FindAvailableTx(ctx context.Context, tx *sqlx.Tx, roomType string, checkIn, checkOut time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	otel otel.Otel
	psql sq.StatementBuilderType
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
		psql:       sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repositoryImpl) FindAvailableTx(ctx context.Context, tx *sqlx.Tx, roomType string, checkIn, checkOut time.Time) (roomID int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.FindAvailableTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(model.FieldRoomType, roomType)

	lockQuery, lockArgs, err := r.psql.
		Select(model.FieldID).
		From(model.TableName).
		Where(sq.Eq{model.FieldRoomType: roomType}).
		OrderBy(model.FieldID).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build room lock query: %w", err)
	}

	locked := []int64{}

	if err = tx.SelectContext(ctx, &locked, lockQuery, lockArgs...); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to lock rooms: %w", err)
	}

	if len(locked) == 0 {
		return 0, nil
	}

	query, args, err := r.psql.
		Select(model.FieldID).
		From(model.TableName).
		Where(sq.Eq{model.FieldRoomType: roomType}).
		Where(overlappingBooking, checkOut, checkIn).
		OrderBy(model.FieldID).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build room availability query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.GetContext(ctx, &roomID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to find available room: %w", err)
	}

	return roomID, nil
}
