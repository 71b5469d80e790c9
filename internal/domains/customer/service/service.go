package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/repository"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Customer interface {
	GetAll(ctx context.Context) ([]dto.CustomerResponse, error)
}

type serviceImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func New(repo repository.Customer, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	summaries, err := s.repo.GetSummaries(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer summaries")

		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return dto.FromSummaries(summaries, timezone.Today()), nil
}
