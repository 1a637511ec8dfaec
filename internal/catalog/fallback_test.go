package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackShape(t *testing.T) {
	categories := Fallback()
	require.Len(t, categories, 4)

	names := []string{}
	var nextID uint = 1
	for i, c := range categories {
		assert.Equal(t, uint(i+1), c.ID)
		names = append(names, c.Name)
		require.Len(t, c.MenuItems, 3)
		for _, item := range c.MenuItems {
			assert.Equal(t, nextID, item.ID)
			assert.Equal(t, c.ID, item.CategoryID)
			assert.NotEmpty(t, item.Image)
			nextID++
		}
	}
	assert.Equal(t, []string{"Burgers", "Pizzas", "Beverages", "Desserts"}, names)
	assert.Equal(t, "150.00", categories[0].MenuItems[0].Price.String())
	assert.Equal(t, "Ayran", categories[2].MenuItems[1].Name)
}

func TestFallbackReturnsCopies(t *testing.T) {
	first := Fallback()
	first[0].Name = "Changed"
	*first[0].Description = "Changed"

	second := Fallback()
	assert.Equal(t, "Burgers", second[0].Name)
	assert.Equal(t, "Delicious burgers", *second[0].Description)
}

func TestSeedCategoriesHaveNoIDs(t *testing.T) {
	for _, c := range SeedCategories() {
		assert.Zero(t, c.ID)
		for _, item := range c.MenuItems {
			assert.Zero(t, item.ID)
			assert.Zero(t, item.CategoryID)
		}
	}
}
