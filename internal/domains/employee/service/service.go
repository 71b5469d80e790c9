package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/model/dto"
	"hotel/internal/domains/employee/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"

	"github.com/rs/zerolog/log"
)

type Employee interface {
	GetAll(ctx context.Context, req gDto.QueryParams) ([]dto.EmployeeResponse, error)
}

type serviceImpl struct {
	repo repository.Employee
	otel otel.Otel
}

func New(repo repository.Employee, otel otel.Otel) Employee {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res []dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := req.Sort(model.TableName+"."+model.FieldName+" "+gDto.SortDirAsc, model.TableName+"."+model.FieldID+" "+gDto.SortDirAsc)

	employees, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	return dto.FromModels(employees), nil
}
