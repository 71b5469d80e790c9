package employee

import (
	"hotel/infras/otel"
	"hotel/internal/domains/employee/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageFetchFailed = "Error fetching employees"

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEmployees)
	})
}

// GetEmployees lists employees with their role.
// @Summary List employees
// @Description List every employee with the role name, ordered by name. Page and limit are optional.
// @Tags Employee
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {array} dto.EmployeeResponse "Employees"
// @Failure 500 {object} response.Result
// @Router /employees [get]
func (handler *Handler) GetEmployees(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)

	employees, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithFailure(writer, err, messageFetchFailed)

		return
	}

	scope.AddEvent("Employees retrieved successfully")

	response.WithJSON(writer, http.StatusOK, employees)
}
