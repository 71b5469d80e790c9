package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	customerRepo "hotel/internal/domains/customer/repository"
	paymentModel "hotel/internal/domains/payment/model"
	paymentRepo "hotel/internal/domains/payment/repository"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/background"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"
	"strconv"

	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var errPaymentMethodNotFound = errors.New("payment method not found")

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingDetailResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	customerRepo customerRepo.Customer
	roomRepo     roomRepo.Room
	paymentRepo  paymentRepo.Payment
	transactor   gRepo.Transactor
	kafka        kafka.Client
	s3           s3.S3
	tasks        *background.Group
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	customerRepo customerRepo.Customer,
	roomRepo roomRepo.Room,
	paymentRepo paymentRepo.Payment,
	transactor gRepo.Transactor,
	kafka kafka.Client,
	s3 s3.S3,
	tasks *background.Group,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		roomRepo:     roomRepo,
		paymentRepo:  paymentRepo,
		transactor:   transactor,
		kafka:        kafka,
		s3:           s3,
		tasks:        tasks,
		cfg:          cfg,
		otel:         otel,
	}
}

// Create books the first free room of the requested type and records the
// payment. Customer, booking, payment and payer link are written in one
// transaction; any failure leaves nothing behind.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, err := timezone.ParseDate(req.CheckInDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDate(req.CheckOutDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if checkOut.Before(checkIn) {
		return res, failure.BadRequestFromString("checkOutDate must not be before checkInDate") // nolint:wrapcheck
	}

	receipt := dto.Receipt{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		RoomType:      req.RoomType,
		CheckIn:       checkIn.Format(constant.DateFormat),
		CheckOut:      checkOut.Format(constant.DateFormat),
		PaymentMethod: s.cfg.App.Booking.PaymentMethod,
		Amount:        req.Amount,
	}

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		customerID, err := s.customerRepo.UpsertTx(ctx, tx, req.ToCustomer())
		if err != nil {
			log.Error().Err(err).Msg("failed to resolve customer")

			return fmt.Errorf("failed to resolve customer: %w", err)
		}

		roomID, err := s.roomRepo.FindAvailableTx(ctx, tx, req.RoomType, checkIn, checkOut)
		if err != nil {
			log.Error().Err(err).Msg("failed to search available rooms")

			return fmt.Errorf("failed to search available rooms: %w", err)
		}

		if roomID == 0 {
			return failure.ErrNoRoomAvailable
		}

		bookingID, err := s.repo.CreateTx(ctx, tx, model.Booking{
			CustomerID: customerID,
			RoomID:     roomID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		})
		if err != nil {
			if isExclusionViolation(err) {
				return failure.ErrNoRoomAvailable
			}

			log.Error().Err(err).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		methodID, err := s.paymentRepo.GetMethodIDTx(ctx, tx, s.cfg.App.Booking.PaymentMethod)
		if err != nil {
			log.Error().Err(err).Msg("failed to get payment method")

			return fmt.Errorf("failed to get payment method: %w", err)
		}

		if methodID == 0 {
			log.Error().Str("method", s.cfg.App.Booking.PaymentMethod).Msg("payment method is not configured in the store")

			return failure.InternalError(fmt.Errorf("%w: %s", errPaymentMethodNotFound, s.cfg.App.Booking.PaymentMethod)) // nolint:wrapcheck
		}

		paidOn := timezone.Today()

		paymentID, err := s.paymentRepo.CreateTx(ctx, tx, paymentModel.Payment{
			BookingID: bookingID,
			Amount:    req.Amount,
			MethodID:  methodID,
			Date:      paidOn,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create payment")

			return fmt.Errorf("failed to create payment: %w", err)
		}

		if err = s.paymentRepo.LinkPayerTx(ctx, tx, paymentModel.Pays{CustomerID: customerID, PaymentID: paymentID}); err != nil {
			log.Error().Err(err).Msg("failed to link payer")

			return fmt.Errorf("failed to link payer: %w", err)
		}

		receipt.BookingID = bookingID
		receipt.CustomerID = customerID
		receipt.RoomID = roomID
		receipt.PaymentID = paymentID
		receipt.PaidOn = paidOn.Format(constant.DateFormat)

		return nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	scope.SetAttribute(model.FieldID, receipt.BookingID)

	s.tasks.Go(ctx, "booking.notify", func(ctx context.Context) {
		s.notify(ctx, receipt)
	})

	return receipt.Response(), nil
}

// notify announces a committed booking. Failures are logged only, the
// booking already stands.
func (s *serviceImpl) notify(ctx context.Context, receipt dto.Receipt) {
	if s.cfg.Kafka.Enable {
		msg := kafka.Message{
			Key:   strconv.FormatInt(receipt.BookingID, 10),
			Value: receipt,
		}

		if err := s.kafka.SendMessages(ctx, s.cfg.App.Booking.EventTopic, msg); err != nil {
			log.Error().Err(err).Int64("bookingId", receipt.BookingID).Msg("failed to publish booking event")
		}
	}

	if s.cfg.External.S3.Enable {
		body, err := json.Marshal(receipt)
		if err != nil {
			log.Error().Err(err).Int64("bookingId", receipt.BookingID).Msg("failed to encode booking receipt")

			return
		}

		fileName := strconv.FormatInt(receipt.BookingID, 10) + ".json"

		url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, s.cfg.App.Booking.ReceiptDir, fileName, constant.ContentTypeJSON, body)
		if err != nil {
			log.Error().Err(err).Int64("bookingId", receipt.BookingID).Msg("failed to archive booking receipt")

			return
		}

		log.Info().Str("url", url).Int64("bookingId", receipt.BookingID).Msg("booking receipt archived")
	}
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == pgerrcode.ExclusionViolation
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := req.Sort(
		model.TableName+"."+model.FieldCheckIn+" "+gDto.SortDirDesc,
		model.TableName+"."+model.FieldID+" "+gDto.SortDirDesc,
	)

	rows, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return dto.FromModels(rows), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookingID, ok := shared.ParseID(id)
	if !ok {
		return res, failure.NotFound(failure.MessageBookingNotFound) // nolint:wrapcheck
	}

	detail, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == 0 {
		return res, failure.NotFound(failure.MessageBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}
