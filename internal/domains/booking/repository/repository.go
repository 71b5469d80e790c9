package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Row, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error)
}

type repositoryImpl struct {
	bookings gRepo.Repository[model.Booking]
	rows     gRepo.Repository[model.Row]
	details  gRepo.Repository[model.Detail]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		bookings: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		rows:     gRepo.NewRepository[model.Row](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:  gRepo.NewRepository[model.Detail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) CreateTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (int64, error) {
	return r.bookings.InsertReturningTx(ctx, tx, booking) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Row, error) {
	return r.rows.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error) {
	return r.details.Get(ctx, filter) //nolint:wrapcheck
}
