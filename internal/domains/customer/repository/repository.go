package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/customer/model"
	"hotel/shared/constant"
	"hotel/shared/logger"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const latestBookingJoin = `LEFT JOIN LATERAL (
	SELECT b.room_id, b.checkin_date, b.checkout_date
	FROM bookings b
	WHERE b.customer_id = c.customer_id
	ORDER BY b.checkin_date DESC, b.booking_id DESC
	LIMIT 1
) lb ON TRUE`

type Customer interface {
	// UpsertTx returns the id of the customer owning customer.Email, creating
	// the customer first when the email is new. Existing rows are not updated.
	UpsertTx(ctx context.Context, tx *sqlx.Tx, customer model.Customer) (int64, error)
	GetSummaries(ctx context.Context) ([]model.Summary, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
	psql sq.StatementBuilderType
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		db:   db,
		otel: otel,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repositoryImpl) UpsertTx(ctx context.Context, tx *sqlx.Tx, customer model.Customer) (id int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.UpsertTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// look up first so returning customers do not consume a sequence value
	id, found, err := r.findIDTx(ctx, tx, customer.Email)
	if err != nil || found {
		return id, err
	}

	query, args, err := r.psql.
		Insert(model.TableName).
		Columns(model.FieldName, model.FieldEmail, model.FieldPhone).
		Values(customer.Name, customer.Email, customer.Phone).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO NOTHING RETURNING %s", model.FieldEmail, model.FieldID)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build customer insert: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.QueryRowxContext(ctx, query, args...).Scan(&id)
	if err == nil {
		return id, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to insert customer: %w", err)
	}

	// registered by a concurrent booking since the lookup
	id, found, err = r.findIDTx(ctx, tx, customer.Email)
	if err != nil {
		return 0, err
	}

	if !found {
		return 0, fmt.Errorf("failed to get existing customer: %w", sql.ErrNoRows)
	}

	return id, nil
}

func (r *repositoryImpl) findIDTx(ctx context.Context, tx *sqlx.Tx, email string) (id int64, found bool, err error) {
	query, args, err := r.psql.
		Select(model.FieldID).
		From(model.TableName).
		Where(sq.Eq{model.FieldEmail: email}).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("failed to build customer lookup: %w", err)
	}

	err = tx.GetContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return 0, false, fmt.Errorf("failed to get existing customer: %w", err)
	}

	return id, true, nil
}

func (r *repositoryImpl) GetSummaries(ctx context.Context) (res []model.Summary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.GetSummaries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := r.psql.
		Select("c.name", "c.email", "c.phone_no", "lb.room_id", "r.room_type", "lb.checkin_date", "lb.checkout_date").
		From(model.TableName + " c").
		JoinClause(latestBookingJoin).
		LeftJoin("rooms r ON r.room_id = lb.room_id").
		OrderBy("c.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build customer summary query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res = []model.Summary{}

	if err = r.db.Read.SelectContext(ctx, &res, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get customer summaries: %w", err)
	}

	return res, nil
}
