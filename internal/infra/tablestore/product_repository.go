package tablestore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const productsTable = "products"

type productRepository struct {
	client *Client
}

// NewProductRepository creates a product repository backed by the hosted
// `products` collection.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.client.From(productsTable).Select("*").Get(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (r *productRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	var products []entity.Product
	if err := r.client.From(productsTable).Select("*").Eq("id", id).Limit(1).Get(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if len(products) == 0 {
		return nil, repository.ErrProductNotFound
	}

	return &products[0], nil
}
