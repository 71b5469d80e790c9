package model

import "time"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID    = "customer_id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone_no"
)

type Customer struct {
	ID    int64  `db:"customer_id" generated:"true"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone_no"`
}

// Summary is a customer joined with its most recent booking. The booking
// fields are nil for customers who never booked.
type Summary struct {
	Name     string     `db:"name"`
	Email    string     `db:"email"`
	Phone    string     `db:"phone_no"`
	RoomID   *int64     `db:"room_id"`
	RoomType *string    `db:"room_type"`
	CheckIn  *time.Time `db:"checkin_date"`
	CheckOut *time.Time `db:"checkout_date"`
}
