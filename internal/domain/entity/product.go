// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Product is one row of the hosted `products` collection. It is fetched,
// never mutated locally; the catalog treats it as an immutable value.
type Product struct {
	ID          string            `json:"id"`                    // Opaque identifier assigned by the backend.
	Title       string            `json:"title"`                 // Display title, also the search key.
	Price       float64           `json:"price"`                 // Non-negative price in hryvnias.
	Category    string            `json:"category"`              // Category tag, e.g. "laptops".
	Brand       string            `json:"brand,omitempty"`       // Optional brand, doubles as the sub-category.
	SubCategory string            `json:"sub_category,omitempty"`
	Description string            `json:"description,omitempty"` // Free text the spec extractor scans.
	ImageURL    string            `json:"image_url,omitempty"`
	Specs       map[string]string `json:"specs,omitempty"`       // Optional structured specs from the backend.
	CreatedAt   *time.Time        `json:"created_at,omitempty"`  // Missing timestamp sorts as the oldest value.
}
