package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput carries the checkout form and the payment choice. The
// cart itself is resolved from the session key.
type PlaceOrderInput struct {
	User            *entity.AuthUser
	SessionKey      string
	Email           string
	Phone           string
	LastName        string
	FirstName       string
	Patronymic      string
	PaymentCategory string
	PaymentMethod   string
}

// PlaceOrderOutput returns the stored order with its backend-assigned ID.
type PlaceOrderOutput struct {
	Order          *entity.Order `json:"order"`
	FormattedTotal string        `json:"formattedTotal"`
}

// CheckoutUsecase defines the interface for the checkout flow.
type CheckoutUsecase interface {
	// PlaceOrder validates the form, snapshots the cart into an order row,
	// removes ordered products from the wishlist and clears the cart.
	// Validation failures surface as a FieldErrors value.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderOutput, error)

	// OrderQR renders the pickup QR code for one of the user's orders.
	OrderQR(ctx context.Context, userID uuid.UUID, orderID string) ([]byte, error)

	// VerifyOrderQR resolves a scanned pickup QR payload back to one of
	// the user's orders.
	VerifyOrderQR(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Order, error)
}
