// Package cart implements the shopping cart as pure transitions over an
// ordered list of lines. State ownership and locking live with the caller;
// every function here returns a fresh slice and never mutates its input.
package cart

import "storefront/internal/domain/entity"

// Line is one row of the cart: a product reference plus a quantity.
// Invariant: at most one line per product ID, quantity ≥ 1.
type Line struct {
	Product  entity.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Add increments the quantity of an existing line by one, or appends a new
// line with quantity 1. Existing line order is preserved; new lines go to
// the end.
func Add(lines []Line, product entity.Product) []Line {
	next := make([]Line, len(lines))
	copy(next, lines)

	for i := range next {
		if next[i].Product.ID == product.ID {
			next[i].Quantity++

			return next
		}
	}

	return append(next, Line{Product: product, Quantity: 1})
}

// Remove deletes the line for the product ID if present; no-op otherwise.
func Remove(lines []Line, productID string) []Line {
	next := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.Product.ID == productID {
			continue
		}
		next = append(next, line)
	}

	return next
}

// SetQuantity replaces the line's quantity, leaving its position unchanged.
// A quantity of zero or below removes the line instead of storing a
// non-positive quantity. No-op if the product is absent.
func SetQuantity(lines []Line, productID string, quantity int) []Line {
	if quantity <= 0 {
		return Remove(lines, productID)
	}

	next := make([]Line, len(lines))
	copy(next, lines)
	for i := range next {
		if next[i].Product.ID == productID {
			next[i].Quantity = quantity

			break
		}
	}

	return next
}

// Clear empties the cart. Invoked after a successful checkout.
func Clear() []Line {
	return []Line{}
}

// TotalItems derives the total item count as the sum of line quantities.
func TotalItems(lines []Line) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}

	return total
}

// TotalPrice derives the total price as Σ(price × quantity). Totals are
// always recomputed from current state, never stored alongside it.
func TotalPrice(lines []Line) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Product.Price * float64(line.Quantity)
	}

	return total
}

// Snapshot converts the cart lines into order line-item snapshots,
// decoupled from the live products.
func Snapshot(lines []Line) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.OrderItem{
			ID:       line.Product.ID,
			Title:    line.Product.Title,
			Price:    line.Product.Price,
			Quantity: line.Quantity,
		})
	}

	return items
}
