package catalog

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSpecs(t *testing.T) {
	t.Parallel()

	t.Run("tags a laptop description", func(t *testing.T) {
		t.Parallel()

		specs := ExtractSpecs("16GB RAM, 512GB SSD, OLED, 120Hz")

		require.Len(t, specs, 4)
		assert.Equal(t, []string{"16GB RAM"}, specs["RAM"])
		assert.Len(t, specs["Storage"], 1)
		assert.Equal(t, []string{"OLED"}, specs["Display"])
		assert.Equal(t, []string{"120Hz"}, specs["Refresh Rate"])
	})

	t.Run("empty description yields no specs", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ExtractSpecs(""))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		specs := ExtractSpecs("дисплей oled, процесор ryzen")
		assert.Equal(t, []string{"oled"}, specs["Display"])
		assert.Equal(t, []string{"ryzen"}, specs["Processor"])
	})

	t.Run("battery and resolution buckets", func(t *testing.T) {
		t.Parallel()

		specs := ExtractSpecs("6.1-inch QHD, Snapdragon, 4500mAh")
		assert.Equal(t, []string{"QHD"}, specs["Resolution"])
		assert.Equal(t, []string{"Snapdragon"}, specs["Processor"])
		assert.Equal(t, []string{"4500mAh"}, specs["Battery"])
	})
}

func TestAllSpecs(t *testing.T) {
	t.Parallel()

	products := []entity.Product{
		{ID: "a", Description: "16GB RAM, OLED"},
		{ID: "b", Description: "8GB RAM, IPS"},
		{ID: "c", Description: "8GB RAM, IPS"}, // duplicate values collapse
		{ID: "d"},
	}

	all := AllSpecs(products)

	assert.ElementsMatch(t, []string{"16GB RAM", "8GB RAM"}, all["RAM"])
	assert.ElementsMatch(t, []string{"OLED", "IPS"}, all["Display"])
}
