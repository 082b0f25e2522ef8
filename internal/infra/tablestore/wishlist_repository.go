package tablestore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const wishlistTable = "wishlist"

type wishlistRepository struct {
	client *Client
}

// NewWishlistRepository creates a wishlist repository backed by the hosted
// `wishlist` collection of (user, product) pairs.
func NewWishlistRepository(client *Client) repository.WishlistRepository {
	return &wishlistRepository{client: client}
}

func (r *wishlistRepository) AddEntry(ctx context.Context, userID uuid.UUID, productID string) error {
	entry := entity.WishlistEntry{UserID: userID, ProductID: productID}
	if err := r.client.From(wishlistTable).Insert(ctx, entry, nil); err != nil {
		return errors.Wrap(err, "failed to add wishlist entry")
	}

	return nil
}

func (r *wishlistRepository) RemoveEntry(ctx context.Context, userID uuid.UUID, productID string) error {
	err := r.client.From(wishlistTable).
		Eq("user_id", userID.String()).
		Eq("product_id", productID).
		Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to remove wishlist entry")
	}

	return nil
}

func (r *wishlistRepository) RemoveEntries(ctx context.Context, userID uuid.UUID, productIDs []string) error {
	if len(productIDs) == 0 {
		return nil
	}

	err := r.client.From(wishlistTable).
		Eq("user_id", userID.String()).
		In("product_id", productIDs).
		Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to remove wishlist entries")
	}

	return nil
}

func (r *wishlistRepository) ListProductIDs(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error) {
	var entries []entity.WishlistEntry
	err := r.client.From(wishlistTable).
		Select("product_id").
		Eq("user_id", userID.String()).
		Get(ctx, &entries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist entries")
	}

	ids := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		ids[entry.ProductID] = struct{}{}
	}

	return ids, nil
}
