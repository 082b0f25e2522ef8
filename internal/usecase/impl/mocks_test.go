package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- fakes ---

type fakeProductRepo struct {
	products []entity.Product
	listErr  error
	findErr  error
}

func (f *fakeProductRepo) ListProducts(context.Context) ([]entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.products, nil
}

func (f *fakeProductRepo) FindProductByID(_ context.Context, id string) (*entity.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}

	return nil, repository.ErrProductNotFound
}

type fakeProfileRepo struct {
	profiles  map[uuid.UUID]*entity.Profile
	createErr error
	created   []*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
}

func (f *fakeProfileRepo) CreateProfile(_ context.Context, profile *entity.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.profiles[profile.ID] = profile
	f.created = append(f.created, profile)

	return nil
}

func (f *fakeProfileRepo) FindProfileByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return profile, nil
}

type fakeWishlistRepo struct {
	entries   map[uuid.UUID]map[string]struct{}
	listErr   error
	addErr    error
	removeErr error

	removedBatches [][]string
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: make(map[uuid.UUID]map[string]struct{})}
}

func (f *fakeWishlistRepo) set(userID uuid.UUID) map[string]struct{} {
	if f.entries[userID] == nil {
		f.entries[userID] = make(map[string]struct{})
	}

	return f.entries[userID]
}

func (f *fakeWishlistRepo) AddEntry(_ context.Context, userID uuid.UUID, productID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.set(userID)[productID] = struct{}{}

	return nil
}

func (f *fakeWishlistRepo) RemoveEntry(_ context.Context, userID uuid.UUID, productID string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.set(userID), productID)

	return nil
}

func (f *fakeWishlistRepo) RemoveEntries(_ context.Context, userID uuid.UUID, productIDs []string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removedBatches = append(f.removedBatches, productIDs)
	for _, id := range productIDs {
		delete(f.set(userID), id)
	}

	return nil
}

func (f *fakeWishlistRepo) ListProductIDs(_ context.Context, userID uuid.UUID) (map[string]struct{}, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	ids := make(map[string]struct{}, len(f.set(userID)))
	for id := range f.entries[userID] {
		ids[id] = struct{}{}
	}

	return ids, nil
}

type fakeOrderRepo struct {
	orders    []entity.Order
	createErr error
	listErr   error
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, order *entity.Order) (*entity.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *order
	created.ID = fmt.Sprintf("ord-%d", len(f.orders)+1)
	created.CreatedAt = time.Now().UTC()
	f.orders = append(f.orders, created)

	return &created, nil
}

func (f *fakeOrderRepo) ListOrdersByUser(_ context.Context, userID uuid.UUID) ([]entity.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var orders []entity.Order
	for i := len(f.orders) - 1; i >= 0; i-- {
		if f.orders[i].UserID == userID {
			orders = append(orders, f.orders[i])
		}
	}

	return orders, nil
}

func (f *fakeOrderRepo) FindOrderByID(_ context.Context, userID uuid.UUID, orderID string) (*entity.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == orderID && f.orders[i].UserID == userID {
			return &f.orders[i], nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

type fakeAuthProvider struct {
	signUpErr  error
	signInErr  error
	signOutErr error

	session *entity.Session

	lastEmail    string
	lastPassword string
	signedOut    []string
}

func (f *fakeAuthProvider) SignUp(_ context.Context, email, password string) (*entity.Session, error) {
	f.lastEmail, f.lastPassword = email, password
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}

	return f.session, nil
}

func (f *fakeAuthProvider) SignIn(_ context.Context, email, password string) (*entity.Session, error) {
	f.lastEmail, f.lastPassword = email, password
	if f.signInErr != nil {
		return nil, f.signInErr
	}

	return f.session, nil
}

func (f *fakeAuthProvider) SignOut(_ context.Context, accessToken string) error {
	f.signedOut = append(f.signedOut, accessToken)

	return f.signOutErr
}

type fakeQRService struct {
	generateErr error
}

func (f *fakeQRService) GenerateOrderQR(orderID string) ([]byte, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}

	return []byte("png:" + orderID), nil
}

func (f *fakeQRService) ParseOrderQR(qrData string) (string, error) {
	orderID, ok := strings.CutPrefix(qrData, "png:")
	if !ok || orderID == "" {
		return "", fmt.Errorf("malformed QR payload")
	}

	return orderID, nil
}

var (
	_ repository.ProductRepository  = (*fakeProductRepo)(nil)
	_ repository.ProfileRepository  = (*fakeProfileRepo)(nil)
	_ repository.WishlistRepository = (*fakeWishlistRepo)(nil)
	_ repository.OrderRepository    = (*fakeOrderRepo)(nil)
	_ service.AuthProvider          = (*fakeAuthProvider)(nil)
	_ service.QRCodeService         = (*fakeQRService)(nil)
)
