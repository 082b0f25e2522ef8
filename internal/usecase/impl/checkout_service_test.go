package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	svc          usecase.CheckoutUsecase
	cart         usecase.CartUsecase
	orderRepo    *fakeOrderRepo
	wishlistRepo *fakeWishlistRepo
	user         *entity.AuthUser
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	productRepo := &fakeProductRepo{products: []entity.Product{
		{ID: "p1", Title: "Ноутбук", Price: 100},
		{ID: "p2", Title: "Смартфон", Price: 250},
	}}
	cartSvc := newCartService(productRepo)
	orderRepo := &fakeOrderRepo{}
	wishlistRepo := newFakeWishlistRepo()

	svc := NewCheckoutService(CheckoutServiceParams{
		CartUsecase:  cartSvc,
		OrderRepo:    orderRepo,
		WishlistRepo: wishlistRepo,
		QRService:    &fakeQRService{},
		Logger:       testLogger(),
	})

	return &checkoutFixture{
		svc:          svc,
		cart:         cartSvc,
		orderRepo:    orderRepo,
		wishlistRepo: wishlistRepo,
		user:         &entity.AuthUser{ID: uuid.New(), Email: "user@example.com"},
	}
}

func validOrderInput(user *entity.AuthUser) usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		User:            user,
		SessionKey:      "session",
		Email:           "user@example.com",
		Phone:           "+38 050 123 45 67",
		LastName:        "Шевченко",
		FirstName:       "Тарас",
		PaymentCategory: entity.PaymentOnDelivery,
	}
}

func TestCheckoutService_RequiresAuth(t *testing.T) {
	t.Parallel()

	fixture := newCheckoutFixture(t)
	input := validOrderInput(nil)

	_, err := fixture.svc.PlaceOrder(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestCheckoutService_FormValidation(t *testing.T) {
	t.Parallel()

	fixture := newCheckoutFixture(t)
	input := validOrderInput(fixture.user)
	input.Email = ""
	input.Phone = "123"

	_, err := fixture.svc.PlaceOrder(context.Background(), input)

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs.Fields, 2)
	assert.Contains(t, fieldErrs.Fields, "email")
	assert.Contains(t, fieldErrs.Fields, "phone")
}

func TestCheckoutService_UnknownPayment(t *testing.T) {
	t.Parallel()

	fixture := newCheckoutFixture(t)

	input := validOrderInput(fixture.user)
	input.PaymentCategory = "crypto"
	_, err := fixture.svc.PlaceOrder(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownPaymentOption)

	// pay_now requires a known sub-method.
	input = validOrderInput(fixture.user)
	input.PaymentCategory = entity.PaymentPayNow
	input.PaymentMethod = "cash"
	_, err = fixture.svc.PlaceOrder(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownPaymentOption)
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	t.Parallel()

	fixture := newCheckoutFixture(t)

	_, err := fixture.svc.PlaceOrder(context.Background(), validOrderInput(fixture.user))
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	t.Parallel()

	fixture := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := fixture.cart.AddItem(ctx, "session", "p1")
	require.NoError(t, err)
	_, err = fixture.cart.AddItem(ctx, "session", "p1")
	require.NoError(t, err)
	_, err = fixture.cart.AddItem(ctx, "session", "p2")
	require.NoError(t, err)

	// p1 is wishlisted; checkout must remove it.
	require.NoError(t, fixture.wishlistRepo.AddEntry(ctx, fixture.user.ID, "p1"))

	output, err := fixture.svc.PlaceOrder(ctx, validOrderInput(fixture.user))
	require.NoError(t, err)

	assert.Equal(t, "ord-1", output.Order.ID)
	assert.InDelta(t, 450, output.Order.TotalPrice, 1e-9)
	assert.Equal(t, "450 грн", output.FormattedTotal)
	require.Len(t, output.Order.Items, 2)
	assert.Equal(t, 2, output.Order.Items[0].Quantity)
	assert.Equal(t, "Шевченко", output.Order.Recipient.LastName)

	// The wishlist pair for the ordered product is gone.
	ids, err := fixture.wishlistRepo.ListProductIDs(ctx, fixture.user.ID)
	require.NoError(t, err)
	assert.NotContains(t, ids, "p1")

	// The cart is cleared.
	cartState, err := fixture.cart.Get(ctx, "session")
	require.NoError(t, err)
	assert.Empty(t, cartState.Lines)
}

func TestCheckoutService_WishlistCleanupFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	fixture := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := fixture.cart.AddItem(ctx, "session", "p1")
	require.NoError(t, err)
	fixture.wishlistRepo.removeErr = errors.New("backend down")

	output, err := fixture.svc.PlaceOrder(ctx, validOrderInput(fixture.user))
	require.NoError(t, err)
	assert.Equal(t, "ord-1", output.Order.ID)
}

func TestCheckoutService_OrderSaveFailure(t *testing.T) {
	t.Parallel()

	fixture := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := fixture.cart.AddItem(ctx, "session", "p1")
	require.NoError(t, err)
	fixture.orderRepo.createErr = errors.New("backend down")

	_, err = fixture.svc.PlaceOrder(ctx, validOrderInput(fixture.user))
	assert.ErrorIs(t, err, domainerrors.ErrOrderSaveFailed)

	// The cart survives a failed checkout.
	cartState, err := fixture.cart.Get(ctx, "session")
	require.NoError(t, err)
	assert.Len(t, cartState.Lines, 1)
}

func TestCheckoutService_OrderQR(t *testing.T) {
	t.Parallel()

	fixture := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := fixture.cart.AddItem(ctx, "session", "p1")
	require.NoError(t, err)
	output, err := fixture.svc.PlaceOrder(ctx, validOrderInput(fixture.user))
	require.NoError(t, err)

	png, err := fixture.svc.OrderQR(ctx, fixture.user.ID, output.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png:ord-1"), png)

	_, err = fixture.svc.OrderQR(ctx, fixture.user.ID, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	// Orders are scoped to their owner.
	_, err = fixture.svc.OrderQR(ctx, uuid.New(), output.Order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCheckoutService_VerifyOrderQR(t *testing.T) {
	t.Parallel()

	fixture := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := fixture.cart.AddItem(ctx, "session", "p1")
	require.NoError(t, err)
	placed, err := fixture.svc.PlaceOrder(ctx, validOrderInput(fixture.user))
	require.NoError(t, err)

	// A scanned QR payload round-trips back to the stored order.
	png, err := fixture.svc.OrderQR(ctx, fixture.user.ID, placed.Order.ID)
	require.NoError(t, err)

	order, err := fixture.svc.VerifyOrderQR(ctx, fixture.user.ID, string(png))
	require.NoError(t, err)
	assert.Equal(t, placed.Order.ID, order.ID)

	_, err = fixture.svc.VerifyOrderQR(ctx, fixture.user.ID, "not-a-qr-payload")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)

	// Scans are scoped to the order's owner.
	_, err = fixture.svc.VerifyOrderQR(ctx, uuid.New(), string(png))
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
