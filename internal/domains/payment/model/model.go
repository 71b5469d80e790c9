package model

import "time"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID = "payment_id"
)

const (
	MethodTableName = "payment_methods"

	FieldMethodID   = "method_id"
	FieldMethodName = "method_name"
)

const (
	PaysTableName  = "pays"
	PaysEntityName = "pays"

	FieldCustomerID = "customer_id"
)

type Payment struct {
	ID        int64     `db:"payment_id"   generated:"true"`
	BookingID int64     `db:"booking_id"`
	Amount    float64   `db:"amount"`
	MethodID  int64     `db:"method_id"`
	Date      time.Time `db:"payment_date"`
}

// Pays links the paying customer with a payment.
type Pays struct {
	CustomerID int64 `db:"customer_id"`
	PaymentID  int64 `db:"payment_id"`
}
