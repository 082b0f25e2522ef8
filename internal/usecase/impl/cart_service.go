package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. Carts live in memory
// keyed by session; the backend never sees them until checkout.
type cartService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger

	mu    sync.RWMutex
	carts map[string][]cart.Line
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
		carts:       make(map[string][]cart.Line),
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the session's cart.
func (srv *cartService) Get(_ context.Context, sessionKey string) (*usecase.CartOutput, error) {
	srv.mu.RLock()
	lines := srv.carts[sessionKey]
	srv.mu.RUnlock()

	return buildCartOutput(lines), nil
}

// AddItem adds one unit of the product, merging into an existing line.
func (srv *cartService) AddItem(ctx context.Context, sessionKey, productID string) (*usecase.CartOutput, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load product for cart", slog.String("id", productID), slog.Any("error", err))

		return nil, domainerrors.ErrProductsLoadFailed
	}

	srv.mu.Lock()
	srv.carts[sessionKey] = cart.Add(srv.carts[sessionKey], *product)
	lines := srv.carts[sessionKey]
	srv.mu.Unlock()

	return buildCartOutput(lines), nil
}

// RemoveItem removes the product's line entirely.
func (srv *cartService) RemoveItem(_ context.Context, sessionKey, productID string) (*usecase.CartOutput, error) {
	srv.mu.Lock()
	srv.carts[sessionKey] = cart.Remove(srv.carts[sessionKey], productID)
	lines := srv.carts[sessionKey]
	srv.mu.Unlock()

	return buildCartOutput(lines), nil
}

// SetQuantity replaces the line's quantity; zero or less removes it.
func (srv *cartService) SetQuantity(_ context.Context, sessionKey, productID string, quantity int) (*usecase.CartOutput, error) {
	srv.mu.Lock()
	srv.carts[sessionKey] = cart.SetQuantity(srv.carts[sessionKey], productID, quantity)
	lines := srv.carts[sessionKey]
	srv.mu.Unlock()

	return buildCartOutput(lines), nil
}

// Clear empties the cart.
func (srv *cartService) Clear(_ context.Context, sessionKey string) (*usecase.CartOutput, error) {
	srv.mu.Lock()
	srv.carts[sessionKey] = cart.Clear()
	srv.mu.Unlock()

	return buildCartOutput(nil), nil
}

func buildCartOutput(lines []cart.Line) *usecase.CartOutput {
	total := cart.TotalPrice(lines)

	return &usecase.CartOutput{
		Lines:          lines,
		TotalItems:     cart.TotalItems(lines),
		TotalPrice:     total,
		FormattedTotal: validation.FormatPrice(total),
	}
}
