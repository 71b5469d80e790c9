package booking

import (
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	messageCreateFailed       = "Failed to create booking"
	messageFetchFailed        = "Error fetching bookings"
	messageFetchDetailsFailed = "Error fetching booking details"
)

const (
	queryCheckInFrom = "from"
	queryCheckInTo   = "to"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
	})
}

// CreateBooking books a room of the requested type.
// @Summary Create a booking
// @Description Resolve the customer by email, allocate the first free room of the requested type and record the payment, all in one transaction.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} dto.CreateBookingResponse "Booking confirmed"
// @Failure 400 {object} response.Result
// @Failure 500 {object} response.Result
// @Router /bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithFailure(writer, err, messageCreateFailed)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("roomType", req.RoomType).Msg("failed to create booking")

		response.WithFailure(writer, err, messageCreateFailed)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookings lists bookings with their customer and room.
// @Summary List bookings
// @Description List bookings with customer and room details, latest check-in first.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room, one id or a comma separated list"
// @Param customer_id query string false "Filter by customer, one id or a comma separated list"
// @Param from query string false "Earliest check-in date (yyyy-mm-dd)"
// @Param to query string false "Latest check-in date (yyyy-mm-dd)"
// @Success 200 {array} dto.BookingResponse "Bookings"
// @Failure 400 {object} response.Result
// @Failure 500 {object} response.Result
// @Router /bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)

	filterGroup, err := bookingFilter(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid booking filter")

		response.WithFailure(writer, err, messageFetchFailed)

		return
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithFailure(writer, err, messageFetchFailed)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(writer, http.StatusOK, bookings)
}

// bookingFilter turns the list query string into filters. room_id and
// customer_id take one id or a comma separated list; from and to bound the
// check-in date, both inclusive.
func bookingFilter(request *http.Request) (gDto.FilterGroup, error) {
	query := request.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldRoomID, model.FieldCustomerID} {
		value := query.Get(field)
		if value == "" {
			continue
		}

		ids, err := parseIDs(field, value)
		if err != nil {
			return filterGroup, err
		}

		if len(ids) == 1 {
			filterGroup.Add(model.TableName, field, ids[0])

			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Value:    ids,
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		})
	}

	from, err := checkInBound(query.Get(queryCheckInFrom), queryCheckInFrom)
	if err != nil {
		return filterGroup, err
	}

	to, err := checkInBound(query.Get(queryCheckInTo), queryCheckInTo)
	if err != nil {
		return filterGroup, err
	}

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return filterGroup, failure.BadRequestFromString(queryCheckInFrom + " must not be after " + queryCheckInTo) //nolint:wrapcheck
	}

	if !from.IsZero() {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "checkin_from",
			Field:    model.FieldCheckIn,
			Value:    from,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if !to.IsZero() {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "checkin_to",
			Field:    model.FieldCheckIn,
			Value:    to,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}

func parseIDs(field, value string) ([]int64, error) {
	parts := strings.Split(value, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		id, ok := shared.ParseID(strings.TrimSpace(part))
		if !ok {
			return nil, failure.BadRequestFromString(field + " must be a positive integer or a comma separated list of them") //nolint:wrapcheck
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// checkInBound returns the zero time when value is empty.
func checkInBound(value, name string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	if err := validator.ValidateVar(name, value, "isodate"); err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return time.Time{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return date, nil
}

// GetBookingByID returns one booking with its payment.
// @Summary Get a booking
// @Description Booking with customer, room, nightly price and payment details.
// @Tags Booking
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} dto.BookingDetailResponse "Booking details"
// @Failure 404 {object} response.Result
// @Failure 500 {object} response.Result
// @Router /bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking by ID")

		response.WithFailure(writer, err, messageFetchDetailsFailed)

		return
	}

	scope.AddEvent("Booking " + strconv.FormatInt(booking.ID, 10) + " retrieved successfully")

	response.WithJSON(writer, http.StatusOK, booking)
}
