package dto

import (
	"hotel/internal/domains/booking/model"
	customerModel "hotel/internal/domains/customer/model"
	"hotel/shared/constant"
	"time"
)

const MessageBookingConfirmed = "Booking confirmed successfully"

type CreateBookingRequest struct {
	CustomerName  string  `json:"customerName"  validate:"required,max=100"`
	CustomerEmail string  `json:"customerEmail" validate:"required,max=100"`
	CustomerPhone string  `json:"customerPhone" validate:"omitempty,max=20"`
	CheckInDate   string  `json:"checkInDate"   validate:"required,isodate"`
	CheckOutDate  string  `json:"checkOutDate"  validate:"required,isodate"`
	RoomType      string  `json:"roomType"      validate:"required,max=50"`
	Amount        float64 `json:"amount"        validate:"gte=0"`
}

func (c *CreateBookingRequest) ToCustomer() customerModel.Customer {
	return customerModel.Customer{
		Name:  c.CustomerName,
		Email: c.CustomerEmail,
		Phone: c.CustomerPhone,
	}
}

type CreateBookingResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	BookingID  int64  `json:"bookingId"`
	CustomerID int64  `json:"customerId"`
}

// Receipt is what a confirmed booking publishes and archives.
type Receipt struct {
	BookingID     int64   `json:"bookingId"`
	CustomerID    int64   `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	RoomID        int64   `json:"roomId"`
	RoomType      string  `json:"roomType"`
	CheckIn       string  `json:"checkInDate"`
	CheckOut      string  `json:"checkOutDate"`
	PaymentID     int64   `json:"paymentId"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
	PaidOn        string  `json:"paymentDate"`
}

func (r *Receipt) Response() CreateBookingResponse {
	return CreateBookingResponse{
		Success:    true,
		Message:    MessageBookingConfirmed,
		BookingID:  r.BookingID,
		CustomerID: r.CustomerID,
	}
}

type BookingResponse struct {
	ID            int64  `json:"Booking_ID"`
	CustomerID    int64  `json:"Customer_ID"`
	RoomID        int64  `json:"Room_ID"`
	CheckIn       string `json:"CheckIn_Date"`
	CheckOut      string `json:"CheckOut_Date"`
	CustomerName  string `json:"CustomerName"`
	CustomerEmail string `json:"CustomerEmail"`
	CustomerPhone string `json:"CustomerPhone"`
	RoomType      string `json:"Room_Type"`
}

func (r *BookingResponse) FromModel(row model.Row) {
	r.ID = row.ID
	r.CustomerID = row.CustomerID
	r.RoomID = row.RoomID
	r.CheckIn = formatDate(row.CheckIn)
	r.CheckOut = formatDate(row.CheckOut)
	r.CustomerName = row.CustomerName
	r.CustomerEmail = row.CustomerEmail
	r.CustomerPhone = row.CustomerPhone
	r.RoomType = row.RoomType
}

func FromModels(rows []model.Row) []BookingResponse {
	res := make([]BookingResponse, len(rows))
	for i, row := range rows {
		res[i].FromModel(row)
	}

	return res
}

type BookingDetailResponse struct {
	ID            int64    `json:"Booking_ID"`
	CheckIn       string   `json:"CheckIn_Date"`
	CheckOut      string   `json:"CheckOut_Date"`
	CustomerID    int64    `json:"Customer_ID"`
	CustomerName  string   `json:"CustomerName"`
	Email         string   `json:"Email"`
	Phone         string   `json:"Phone_No"`
	RoomID        int64    `json:"Room_ID"`
	RoomType      string   `json:"Room_Type"`
	PricePerNight float64  `json:"Price_per_Night"`
	PaymentID     *int64   `json:"Payment_ID"`
	Amount        *float64 `json:"Amount"`
	PaymentMethod *string  `json:"PaymentMethod"`
}

func (r *BookingDetailResponse) FromModel(detail model.Detail) {
	r.ID = detail.ID
	r.CheckIn = formatDate(detail.CheckIn)
	r.CheckOut = formatDate(detail.CheckOut)
	r.CustomerID = detail.CustomerID
	r.CustomerName = detail.CustomerName
	r.Email = detail.Email
	r.Phone = detail.Phone
	r.RoomID = detail.RoomID
	r.RoomType = detail.RoomType
	r.PricePerNight = detail.PricePerNight
	r.PaymentID = detail.PaymentID
	r.Amount = detail.Amount
	r.PaymentMethod = detail.PaymentMethod
}

// DATE columns carry no zone, so the calendar fields are printed as stored.
func formatDate(t time.Time) string {
	return t.Format(constant.DateFormat)
}
