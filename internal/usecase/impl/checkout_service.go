package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cartUsecase  usecase.CartUsecase
	orderRepo    repository.OrderRepository
	wishlistRepo repository.WishlistRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartUsecase  usecase.CartUsecase
	OrderRepo    repository.OrderRepository
	WishlistRepo repository.WishlistRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartUsecase:  params.CartUsecase,
		orderRepo:    params.OrderRepo,
		wishlistRepo: params.WishlistRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the form, snapshots the cart into an order row,
// removes ordered products from the wishlist and clears the cart.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if input.User == nil {
		return nil, domainerrors.ErrAuthRequired
	}

	fieldErrs := validation.ValidateCheckoutForm(validation.CheckoutForm{
		Email:     input.Email,
		Phone:     input.Phone,
		LastName:  input.LastName,
		FirstName: input.FirstName,
	})
	if len(fieldErrs) > 0 {
		return nil, domainerrors.NewFieldErrors(fieldErrs)
	}

	if !entity.ValidPaymentCategory(input.PaymentCategory) {
		return nil, domainerrors.ErrUnknownPaymentOption
	}
	if input.PaymentCategory == entity.PaymentPayNow && !entity.ValidPaymentMethod(input.PaymentMethod) {
		return nil, domainerrors.ErrUnknownPaymentOption
	}

	cartState, err := srv.cartUsecase.Get(ctx, input.SessionKey)
	if err != nil {
		return nil, err
	}
	if len(cartState.Lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	order := &entity.Order{
		UserID: input.User.ID,
		Email:  input.Email,
		Recipient: entity.Recipient{
			LastName:   input.LastName,
			FirstName:  input.FirstName,
			Patronymic: input.Patronymic,
		},
		Phone:           input.Phone,
		Items:           cart.Snapshot(cartState.Lines),
		TotalPrice:      cartState.TotalPrice,
		PaymentCategory: input.PaymentCategory,
		PaymentMethod:   input.PaymentMethod,
	}

	created, err := srv.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		srv.log(ctx).Error("Failed to save order", slog.Any("userID", input.User.ID), slog.Any("error", err))

		return nil, domainerrors.ErrOrderSaveFailed
	}

	// Ordered products leave the wishlist. The order is already stored, so
	// a cleanup failure is logged and swallowed rather than failing the
	// checkout.
	orderedIDs := make([]string, 0, len(created.Items))
	for _, item := range created.Items {
		orderedIDs = append(orderedIDs, item.ID)
	}
	if err := srv.wishlistRepo.RemoveEntries(ctx, input.User.ID, orderedIDs); err != nil {
		srv.log(ctx).Warn("Failed to clean up wishlist after checkout", slog.Any("userID", input.User.ID), slog.Any("error", err))
	}

	if _, err := srv.cartUsecase.Clear(ctx, input.SessionKey); err != nil {
		srv.log(ctx).Warn("Failed to clear cart after checkout", slog.Any("error", err))
	}

	srv.log(ctx).Info("Order placed", slog.String("orderID", created.ID), slog.Any("userID", input.User.ID))

	return &usecase.PlaceOrderOutput{
		Order:          created,
		FormattedTotal: validation.FormatPrice(created.TotalPrice),
	}, nil
}

// OrderQR renders the pickup QR code for one of the user's orders.
func (srv *checkoutService) OrderQR(ctx context.Context, userID uuid.UUID, orderID string) ([]byte, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, userID, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load order for QR", slog.String("orderID", orderID), slog.Any("error", err))

		return nil, domainerrors.ErrBackendUnavailable
	}

	png, err := srv.qrService.GenerateOrderQR(order.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to render order QR", slog.String("orderID", orderID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	return png, nil
}

// VerifyOrderQR resolves a scanned pickup QR payload back to one of the
// user's orders.
func (srv *checkoutService) VerifyOrderQR(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Order, error) {
	orderID, err := srv.qrService.ParseOrderQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, userID, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load order for QR verification", slog.String("orderID", orderID), slog.Any("error", err))

		return nil, domainerrors.ErrBackendUnavailable
	}

	return order, nil
}
