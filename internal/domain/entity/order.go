package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipient is the delivery contact captured on the checkout form.
type Recipient struct {
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	Patronymic string `json:"patronymic,omitempty"`
}

// OrderItem is a line-item snapshot taken at checkout. It is deliberately
// decoupled from the live Product so historical orders stay stable even if
// the catalog changes.
type OrderItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is one row of the hosted `order_history` collection. Created once at
// checkout, never mutated afterwards; the backend owns it and assigns the ID.
type Order struct {
	ID              string      `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	Email           string      `json:"email"`
	Recipient       Recipient   `json:"recipient"`
	Phone           string      `json:"phone"`
	Items           []OrderItem `json:"items"`
	TotalPrice      float64     `json:"total_price"`
	PaymentCategory string      `json:"payment_category"`
	PaymentMethod   string      `json:"payment_method"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Payment categories and methods are labels stored with the order; no
// gateway is ever invoked.
const (
	PaymentOnDelivery = "on_delivery"
	PaymentPayNow     = "pay_now"
	PaymentCredit     = "credit"

	PaymentMethodCard      = "card"
	PaymentMethodGooglePay = "google_pay"
	PaymentMethodApplePay  = "apple_pay"
)

// ValidPaymentCategory reports whether the label is one the storefront offers.
func ValidPaymentCategory(category string) bool {
	switch category {
	case PaymentOnDelivery, PaymentPayNow, PaymentCredit:
		return true
	}

	return false
}

// ValidPaymentMethod reports whether the pay-now sub-method label is known.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCard, PaymentMethodGooglePay, PaymentMethodApplePay:
		return true
	}

	return false
}
