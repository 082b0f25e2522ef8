package cart

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	productA = entity.Product{ID: "a", Title: "Ноутбук Axiom 15", Price: 100}
	productB = entity.Product{ID: "b", Title: "Смартфон Vega X", Price: 250}
)

func TestAdd(t *testing.T) {
	t.Parallel()

	var lines []Line

	lines = Add(lines, productA)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	// Adding the same product again increments the existing line.
	lines = Add(lines, productA)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	// A different product appends at the end, preserving order.
	lines = Add(lines, productB)
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].Product.ID)
	assert.Equal(t, "b", lines[1].Product.ID)
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	original := []Line{{Product: productA, Quantity: 1}}
	Add(original, productA)

	assert.Equal(t, 1, original[0].Quantity)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	lines := []Line{{Product: productA, Quantity: 2}, {Product: productB, Quantity: 1}}

	lines = Remove(lines, "a")
	require.Len(t, lines, 1)
	assert.Equal(t, "b", lines[0].Product.ID)

	// Removing an absent product is a no-op.
	lines = Remove(lines, "missing")
	assert.Len(t, lines, 1)
}

func TestSetQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{name: "replaces quantity", quantity: 5, wantLen: 2, wantQty: 5},
		{name: "zero removes the line", quantity: 0, wantLen: 1},
		{name: "negative removes the line", quantity: -3, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := []Line{{Product: productA, Quantity: 2}, {Product: productB, Quantity: 1}}
			got := SetQuantity(lines, "a", tt.quantity)

			require.Len(t, got, tt.wantLen)
			if tt.wantQty > 0 {
				// Position is unchanged.
				assert.Equal(t, "a", got[0].Product.ID)
				assert.Equal(t, tt.wantQty, got[0].Quantity)
			}
		})
	}

	t.Run("absent product is a no-op", func(t *testing.T) {
		t.Parallel()

		lines := []Line{{Product: productA, Quantity: 2}}
		got := SetQuantity(lines, "missing", 7)
		assert.Equal(t, lines, got)
	})
}

func TestDerivedTotals(t *testing.T) {
	t.Parallel()

	// Product A (price 100) qty 2 and product B (price 250) qty 1.
	lines := []Line{{Product: productA, Quantity: 2}, {Product: productB, Quantity: 1}}

	assert.Equal(t, 3, TotalItems(lines))
	assert.InDelta(t, 450, TotalPrice(lines), 1e-9)

	assert.Equal(t, 0, TotalItems(Clear()))
	assert.InDelta(t, 0, TotalPrice(Clear()), 1e-9)
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	lines := []Line{{Product: productA, Quantity: 2}}
	items := Snapshot(lines)

	require.Len(t, items, 1)
	assert.Equal(t, entity.OrderItem{ID: "a", Title: "Ноутбук Axiom 15", Price: 100, Quantity: 2}, items[0])
}
