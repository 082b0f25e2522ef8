package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalogConfig(debounce time.Duration) *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			DefaultMaxPrice: 100000,
			SearchDebounce:  debounce,
			SuggestionLimit: 5,
		},
	}
}

func catalogProducts() []entity.Product {
	return []entity.Product{
		{ID: "p1", Title: "Ноутбук Axiom 15", Price: 25000, Category: "laptops", Brand: "Axiom", Description: "16GB RAM, OLED, 120Hz"},
		{ID: "p2", Title: "Ноутбук Vega Air", Price: 45000, Category: "laptops", Brand: "Vega", Description: "8GB RAM, IPS"},
		{ID: "p3", Title: "Смартфон Vega X", Price: 12000, Category: "phones", Brand: "Vega", Description: "IPS, 5000mAh"},
	}
}

func newCatalogService(t *testing.T, repo *fakeProductRepo, debounce time.Duration) usecase.CatalogUsecase {
	t.Helper()

	return NewCatalogService(CatalogServiceParams{
		ProductRepo: repo,
		Config:      testCatalogConfig(debounce),
		Logger:      testLogger(),
	})
}

func TestCatalogService_Browse(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t, &fakeProductRepo{products: catalogProducts()}, time.Millisecond)

	output, err := svc.Browse(context.Background(), usecase.BrowseInput{
		Category: "laptops",
		Sort:     "price-asc",
	})

	require.NoError(t, err)
	require.Len(t, output.Products, 2)
	assert.Equal(t, "p1", output.Products[0].ID)
	assert.Equal(t, []string{"Axiom", "Vega"}, output.Brands)
	assert.Contains(t, output.Specs, "Display")
	assert.InDelta(t, 100000, output.MaxPrice, 1e-9)
}

func TestCatalogService_Browse_SpecAndPriceFilters(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t, &fakeProductRepo{products: catalogProducts()}, time.Millisecond)

	output, err := svc.Browse(context.Background(), usecase.BrowseInput{
		Category:   "laptops",
		MinPrice:   20000,
		MaxPrice:   30000,
		SpecFilter: map[string]string{"Display": "OLED"},
	})

	require.NoError(t, err)
	require.Len(t, output.Products, 1)
	assert.Equal(t, "p1", output.Products[0].ID)
}

func TestCatalogService_Browse_BackendError(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t, &fakeProductRepo{listErr: errors.New("boom")}, time.Millisecond)

	_, err := svc.Browse(context.Background(), usecase.BrowseInput{})
	assert.ErrorIs(t, err, domainerrors.ErrProductsLoadFailed)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t, &fakeProductRepo{products: catalogProducts()}, time.Millisecond)

	_, err := svc.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_TypeaheadDebounce(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t, &fakeProductRepo{products: catalogProducts()}, 20*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, svc.SetSearchText(ctx, usecase.SuggestInput{SessionID: "s1", Query: "Ноут"}))

	// Inside the debounce window nothing is applied yet.
	output, err := svc.Suggestions(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, output.Products)

	time.Sleep(80 * time.Millisecond)

	output, err = svc.Suggestions(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ноут", output.Query)
	assert.Len(t, output.Products, 2)
}

func TestCatalogService_TypeaheadClearAppliesImmediately(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t, &fakeProductRepo{products: catalogProducts()}, 20*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, svc.SetSearchText(ctx, usecase.SuggestInput{SessionID: "s1", Query: "Ноут"}))
	time.Sleep(80 * time.Millisecond)

	require.NoError(t, svc.SetSearchText(ctx, usecase.SuggestInput{SessionID: "s1", Query: ""}))

	output, err := svc.Suggestions(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, output.Products)
	assert.Empty(t, output.Query)
}

func TestCatalogService_TypeaheadSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t, &fakeProductRepo{products: catalogProducts()}, time.Millisecond)
	ctx := context.Background()

	require.NoError(t, svc.SetSearchText(ctx, usecase.SuggestInput{SessionID: "s1", Query: "Смартфон"}))
	time.Sleep(50 * time.Millisecond)

	output, err := svc.Suggestions(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, output.Products)
}
