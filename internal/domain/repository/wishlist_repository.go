package repository

import (
	"context"

	"github.com/google/uuid"
)

// WishlistRepository covers the `wishlist` collection of (user, product)
// pairs, unique per pair. Toggle actions insert or delete one pair; reads
// return the user's product IDs as a set for O(1) membership checks.
type WishlistRepository interface {
	// AddEntry inserts a (user, product) pair.
	AddEntry(ctx context.Context, userID uuid.UUID, productID string) error

	// RemoveEntry deletes a (user, product) pair; no-op if absent.
	RemoveEntry(ctx context.Context, userID uuid.UUID, productID string) error

	// RemoveEntries deletes all pairs for the user matching the given
	// product IDs. Used for the post-checkout cleanup.
	RemoveEntries(ctx context.Context, userID uuid.UUID, productIDs []string) error

	// ListProductIDs retrieves the user's wishlisted product IDs as a set.
	ListProductIDs(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error)
}
