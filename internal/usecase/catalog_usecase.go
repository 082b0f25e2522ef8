// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// BrowseInput carries every knob of the catalog screen: category and brand
// narrowing, the price slider, selected spec values, search text and sort.
type BrowseInput struct {
	Category   string
	Brand      string
	MinPrice   float64
	MaxPrice   float64
	SpecFilter map[string]string
	Search     string
	Sort       string
}

// SuggestInput identifies one typeahead session and its current text.
type SuggestInput struct {
	SessionID string
	Query     string
}

// --- Output DTOs ---

// BrowseOutput is the catalog screen's full payload.
type BrowseOutput struct {
	Products []entity.Product    `json:"products"`
	Brands   []string            `json:"brands"`
	Specs    map[string][]string `json:"specs"`
	MaxPrice float64             `json:"maxPrice"`
}

// SuggestOutput carries the suggestions computed for the session's last
// debounced query.
type SuggestOutput struct {
	Query    string           `json:"query"`
	Products []entity.Product `json:"products"`
}

// CatalogUsecase defines the interface for product browsing operations.
type CatalogUsecase interface {
	// Browse loads the product list in one shot and applies the given
	// filters and sort. A backend failure surfaces as an error; there is
	// no retry and no caching.
	Browse(ctx context.Context, input BrowseInput) (*BrowseOutput, error)

	// GetProduct loads a single product.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// SetSearchText records the session's typeahead text. The matching
	// suggestions are recomputed only after the debounce window passes
	// without another keystroke.
	SetSearchText(ctx context.Context, input SuggestInput) error

	// Suggestions returns the suggestions for the session's last applied
	// query. Text newer than the debounce window is not reflected yet.
	Suggestions(ctx context.Context, sessionID string) (*SuggestOutput, error)
}
