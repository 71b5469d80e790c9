package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/payment/model"
	"hotel/shared/constant"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type Payment interface {
	// GetMethodIDTx returns the id of the payment method called name, or zero
	// when no such method exists.
	GetMethodIDTx(ctx context.Context, tx *sqlx.Tx, name string) (int64, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, payment model.Payment) (int64, error)
	LinkPayerTx(ctx context.Context, tx *sqlx.Tx, pays model.Pays) error
}

type repositoryImpl struct {
	payments gRepo.Repository[model.Payment]
	pays     gRepo.Repository[model.Pays]
	otel     otel.Otel
	psql     sq.StatementBuilderType
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		payments: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		pays:     gRepo.NewRepository[model.Pays](model.PaysEntityName, model.PaysTableName, model.FieldID, db, otel),
		otel:     otel,
		psql:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repositoryImpl) GetMethodIDTx(ctx context.Context, tx *sqlx.Tx, name string) (id int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.GetMethodIDTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := r.psql.
		Select(model.FieldMethodID).
		From(model.MethodTableName).
		Where(sq.Eq{model.FieldMethodName: name}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build payment method query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.GetContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to get payment method: %w", err)
	}

	return id, nil
}

func (r *repositoryImpl) CreateTx(ctx context.Context, tx *sqlx.Tx, payment model.Payment) (int64, error) {
	return r.payments.InsertReturningTx(ctx, tx, payment) //nolint:wrapcheck
}

func (r *repositoryImpl) LinkPayerTx(ctx context.Context, tx *sqlx.Tx, pays model.Pays) error {
	return r.pays.InsertTx(ctx, tx, pays) //nolint:wrapcheck
}
