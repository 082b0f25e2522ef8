package usecase

import (
	"context"

	"storefront/internal/domain/cart"
)

// CartOutput is the cart's full state with its derived totals. The
// formatted total uses locale-aware grouping for display.
type CartOutput struct {
	Lines          []cart.Line `json:"lines"`
	TotalItems     int         `json:"totalItems"`
	TotalPrice     float64     `json:"totalPrice"`
	FormattedTotal string      `json:"formattedTotal"`
}

// CartUsecase defines the interface for cart operations. Carts are keyed
// by session: the authenticated user's ID when logged in, otherwise an
// anonymous session key supplied by the client.
type CartUsecase interface {
	// Get returns the session's cart.
	Get(ctx context.Context, sessionKey string) (*CartOutput, error)

	// AddItem adds one unit of the product, merging into an existing line.
	AddItem(ctx context.Context, sessionKey, productID string) (*CartOutput, error)

	// RemoveItem removes the product's line entirely.
	RemoveItem(ctx context.Context, sessionKey, productID string) (*CartOutput, error)

	// SetQuantity replaces the line's quantity; zero or less removes it.
	SetQuantity(ctx context.Context, sessionKey, productID string, quantity int) (*CartOutput, error)

	// Clear empties the cart.
	Clear(ctx context.Context, sessionKey string) (*CartOutput, error)
}
