package catalog

import (
	"sort"
	"strings"
	"time"

	"storefront/internal/domain/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects the ordering of a filtered product list.
type SortMode string

const (
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortName      SortMode = "name"
	SortNewest    SortMode = "newest"
)

// ParseSortMode maps a query value onto a known sort mode.
func ParseSortMode(s string) (SortMode, bool) {
	switch SortMode(s) {
	case SortPriceAsc, SortPriceDesc, SortName, SortNewest:
		return SortMode(s), true
	}

	return "", false
}

// PriceRange is the inclusive [Min, Max] price filter. Min ≤ Max is
// expected but not enforced here; the caller clamps its inputs.
type PriceRange struct {
	Min float64
	Max float64
}

// Apply filters the product list by price range and spec filter, then
// orders it by the sort mode. The input slice is never mutated and ties
// keep their relative order (stable sort), so the function is pure and
// deterministic.
func Apply(products []entity.Product, priceRange PriceRange, specFilter map[string]string, sortBy SortMode) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if product.Price < priceRange.Min || product.Price > priceRange.Max {
			continue
		}
		if !matchesSpecFilter(product, specFilter) {
			continue
		}
		filtered = append(filtered, product)
	}

	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortName:
		// Locale-aware title comparison.
		collator := collate.New(language.Ukrainian)
		sort.SliceStable(filtered, func(i, j int) bool {
			return collator.CompareString(filtered[i].Title, filtered[j].Title) < 0
		})
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return createdAt(filtered[i]).After(createdAt(filtered[j]))
		})
	}

	return filtered
}

// createdAt treats a missing timestamp as the oldest possible value.
func createdAt(product entity.Product) time.Time {
	if product.CreatedAt == nil {
		return time.Unix(0, 0)
	}

	return *product.CreatedAt
}

// FilterByCategory keeps products with the given category tag.
func FilterByCategory(products []entity.Product, category string) []entity.Product {
	result := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if product.Category == category {
			result = append(result, product)
		}
	}

	return result
}

// FilterByBrand keeps products matching both category and brand.
func FilterByBrand(products []entity.Product, category, brand string) []entity.Product {
	result := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if product.Category == category && product.Brand == brand {
			result = append(result, product)
		}
	}

	return result
}

// Brands enumerates the distinct non-empty brands within a category,
// preserving first-seen order.
func Brands(products []entity.Product, category string) []string {
	seen := make(map[string]struct{})
	brands := make([]string, 0)
	for _, product := range products {
		if product.Category != category || product.Brand == "" {
			continue
		}
		if _, ok := seen[product.Brand]; ok {
			continue
		}
		seen[product.Brand] = struct{}{}
		brands = append(brands, product.Brand)
	}

	return brands
}

// SearchByTitle keeps products whose title contains the query,
// case-insensitively. An empty query matches everything.
func SearchByTitle(products []entity.Product, query string) []entity.Product {
	needle := strings.ToLower(query)
	result := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Title), needle) {
			result = append(result, product)
		}
	}

	return result
}

// Suggest returns the first limit title matches for the typed query. An
// empty query yields no suggestions.
func Suggest(products []entity.Product, query string, limit int) []entity.Product {
	if query == "" || limit <= 0 {
		return []entity.Product{}
	}

	matches := SearchByTitle(products, query)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}
