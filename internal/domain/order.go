package domain

import "time"

// PaymentMethod identifies how the customer intends to pay.
// No payment is actually captured; the value is recorded on the order only.
type PaymentMethod string

const (
	PaymentMobileMoney    PaymentMethod = "mobile-money"
	PaymentCard           PaymentMethod = "card"
	PaymentCashOnDelivery PaymentMethod = "cash-on-delivery"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMobileMoney, PaymentCard, PaymentCashOnDelivery:
		return true
	}
	return false
}

// OrderStatus is the lifecycle state of a submitted order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// Address is the delivery address collected at checkout.
type Address struct {
	FirstName  string
	LastName   string
	Phone      string
	Region     string
	City       string
	Street     string
	PostalCode string
}

// OrderLine is an immutable snapshot of one cart line at submission time.
// It copies name and price so later catalog changes cannot alter the record.
type OrderLine struct {
	ProductID      string
	ProductName    string
	Quantity       int64
	UnitPriceCents int64
	LineTotalCents int64
}

// Order is the record produced by a successful checkout submission.
type Order struct {
	ID              string
	UserID          string
	Lines           []OrderLine
	SubtotalCents   int64
	DeliveryCents   int64
	TaxCents        int64
	GrandTotalCents int64
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	MobileNumber    string
	ShippingAddress Address
	CreatedAt       time.Time
}

// Order-specific errors.
var (
	ErrEmptyCart     = &Error{Code: EINVALID, Message: "Cannot submit an order with an empty cart"}
	ErrOrderNotFound = &Error{Code: ENOTFOUND, Message: "Order not found"}
)
