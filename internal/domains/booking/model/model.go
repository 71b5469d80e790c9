package model

import "time"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "booking_id"
	FieldCustomerID = "customer_id"
	FieldRoomID     = "room_id"
	FieldCheckIn    = "checkin_date"
)

type Booking struct {
	ID         int64     `db:"booking_id"    generated:"true"`
	CustomerID int64     `db:"customer_id"`
	RoomID     int64     `db:"room_id"`
	CheckIn    time.Time `db:"checkin_date"`
	CheckOut   time.Time `db:"checkout_date"`
}

// Row is a booking listed with its customer and room.
type Row struct {
	Booking
	CustomerName  string `db:"customer_name"  table:"customers" column:"name"`
	CustomerEmail string `db:"customer_email" table:"customers" column:"email"`
	CustomerPhone string `db:"customer_phone" table:"customers" column:"phone_no"`
	RoomType      string `db:"room_type"      table:"rooms"`
}

func (Row) GetJoinQuery() string {
	return "JOIN customers ON customers.customer_id = bookings.customer_id " +
		"JOIN rooms ON rooms.room_id = bookings.room_id"
}

// Detail is a single booking with everything known about it. Payment fields
// stay nil while no payment references the booking.
type Detail struct {
	ID            int64     `db:"booking_id"`
	CheckIn       time.Time `db:"checkin_date"`
	CheckOut      time.Time `db:"checkout_date"`
	CustomerID    int64     `db:"customer_id"`
	CustomerName  string    `db:"customer_name"   table:"customers"       column:"name"`
	Email         string    `db:"email"           table:"customers"`
	Phone         string    `db:"phone_no"        table:"customers"`
	RoomID        int64     `db:"room_id"`
	RoomType      string    `db:"room_type"       table:"rooms"`
	PricePerNight float64   `db:"price_per_night" table:"room_types"`
	PaymentID     *int64    `db:"payment_id"      table:"payments"`
	Amount        *float64  `db:"amount"          table:"payments"`
	PaymentMethod *string   `db:"payment_method"  table:"payment_methods" column:"method_name"`
}

func (Detail) GetJoinQuery() string {
	return "JOIN customers ON customers.customer_id = bookings.customer_id " +
		"JOIN rooms ON rooms.room_id = bookings.room_id " +
		"JOIN room_types ON room_types.room_type = rooms.room_type " +
		"LEFT JOIN payments ON payments.booking_id = bookings.booking_id " +
		"LEFT JOIN payment_methods ON payment_methods.method_id = payments.method_id"
}
