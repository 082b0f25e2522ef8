package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order row does not exist.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository covers the `order_history` collection: insert-only from
// this client, read back newest-first for the profile's order history.
type OrderRepository interface {
	// CreateOrder inserts the order row and returns it with the
	// backend-assigned ID and creation timestamp.
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// ListOrdersByUser retrieves the user's orders, newest first.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)

	// FindOrderByID retrieves one order row, scoped to its owner.
	FindOrderByID(ctx context.Context, userID uuid.UUID, orderID string) (*entity.Order, error)
}
