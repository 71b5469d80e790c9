package customer

import (
	"hotel/infras/otel"
	"hotel/internal/domains/customer/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageFetchFailed = "Failed to fetch customers"

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCustomers)
	})
}

// GetCustomers lists every customer with their latest booking.
// @Summary List customers
// @Description List every customer with contact details and the most recent booking, active stays first.
// @Tags Customer
// @Produce json
// @Success 200 {array} dto.CustomerResponse "Customers with latest booking"
// @Failure 500 {object} response.Error
// @Router /customers [get]
func (handler *Handler) GetCustomers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	customers, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(writer, err, messageFetchFailed)

		return
	}

	scope.AddEvent("Customers retrieved successfully")

	response.WithJSON(writer, http.StatusOK, customers)
}
