// Package repository defines the interfaces for the hosted backend's row
// collections. Implementations live in internal/infra/tablestore.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for product reads.
var (
	// ErrProductNotFound is returned when a product row does not exist.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository reads the `products` collection. The collection is
// read-only from this client; every call is a single one-shot query with
// no retry, pagination or caching.
type ProductRepository interface {
	// ListProducts retrieves the full product list.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// FindProductByID retrieves a single product row.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)
}
