package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuCategoryJSON struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	MenuItems []struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Price string `json:"price"`
	} `json:"menuItems"`
}

func TestMenuController_GetMenu_EmptyDatabaseServesFallback(t *testing.T) {
	env := setupControllerTest(t, envOptions{})

	w := env.do(t, http.MethodGet, "/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var categories []menuCategoryJSON
	decode(t, w, &categories)
	require.Len(t, categories, 4)
	assert.Equal(t, "Burgers", categories[0].Name)
	require.NotEmpty(t, categories[0].MenuItems)
	assert.Equal(t, "150.00", categories[0].MenuItems[0].Price)
}

func TestMenuController_GetMenu_FromDatabase(t *testing.T) {
	env := setupControllerTest(t, envOptions{})
	env.seedItem(t, "Lentil Soup", "45.5")

	w := env.do(t, http.MethodGet, "/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var categories []menuCategoryJSON
	decode(t, w, &categories)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].MenuItems, 1)
	assert.Equal(t, "Lentil Soup", categories[0].MenuItems[0].Name)
	assert.Equal(t, "45.50", categories[0].MenuItems[0].Price)
}
