package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle adds the product when absent. When present it first demands
// confirmation, then removes on the confirmed call. The membership check
// and the write are two backend round-trips; the pair's uniqueness
// constraint resolves races in favour of a single row.
func (srv *wishlistService) Toggle(ctx context.Context, input usecase.ToggleWishlistInput) (*usecase.ToggleWishlistOutput, error) {
	ids, err := srv.wishlistRepo.ListProductIDs(ctx, input.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to read wishlist", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrWishlistUpdateFailed
	}

	_, present := ids[input.ProductID]
	if !present {
		if err := srv.wishlistRepo.AddEntry(ctx, input.UserID, input.ProductID); err != nil {
			srv.log(ctx).Error("Failed to add wishlist entry", slog.Any("userID", input.UserID), slog.Any("error", err))

			return nil, domainerrors.ErrWishlistUpdateFailed
		}

		return &usecase.ToggleWishlistOutput{InWishlist: true}, nil
	}

	if !input.Confirmed {
		return &usecase.ToggleWishlistOutput{InWishlist: true, RequiresConfirmation: true}, nil
	}

	if err := srv.wishlistRepo.RemoveEntry(ctx, input.UserID, input.ProductID); err != nil {
		srv.log(ctx).Error("Failed to remove wishlist entry", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrWishlistUpdateFailed
	}

	return &usecase.ToggleWishlistOutput{InWishlist: false}, nil
}

// List loads the user's wishlisted products.
func (srv *wishlistService) List(ctx context.Context, userID uuid.UUID) ([]entity.Product, error) {
	ids, err := srv.wishlistRepo.ListProductIDs(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to read wishlist", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrWishlistUpdateFailed
	}

	if len(ids) == 0 {
		return []entity.Product{}, nil
	}

	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load products for wishlist", slog.Any("error", err))

		return nil, domainerrors.ErrProductsLoadFailed
	}

	wishlisted := make([]entity.Product, 0, len(ids))
	for _, product := range products {
		if _, ok := ids[product.ID]; ok {
			wishlisted = append(wishlisted, product)
		}
	}

	return wishlisted, nil
}
