package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ToggleWishlistInput identifies the pair to toggle. Confirmed marks the
// second step of a removal: the first toggle on a wishlisted product only
// asks for confirmation.
type ToggleWishlistInput struct {
	UserID    uuid.UUID
	ProductID string
	Confirmed bool
}

// ToggleWishlistOutput reports the pair's state after the toggle.
type ToggleWishlistOutput struct {
	// InWishlist is the pair's state after the call.
	InWishlist bool `json:"inWishlist"`

	// RequiresConfirmation is set when the product is wishlisted and the
	// call was not confirmed; nothing changed.
	RequiresConfirmation bool `json:"requiresConfirmation"`
}

// WishlistUsecase defines the interface for wishlist operations.
type WishlistUsecase interface {
	// Toggle adds the product when absent. When present it first demands
	// confirmation, then removes on the confirmed call.
	Toggle(ctx context.Context, input ToggleWishlistInput) (*ToggleWishlistOutput, error)

	// List loads the user's wishlisted products.
	List(ctx context.Context, userID uuid.UUID) ([]entity.Product, error)
}
