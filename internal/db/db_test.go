package db

import (
	"testing"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	testDB, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(testDB)

	require.NoError(t, Seed(testDB))
	require.NoError(t, Seed(testDB))

	var categories, items, tables int64
	testDB.Model(&model.MenuCategory{}).Count(&categories)
	testDB.Model(&model.MenuItem{}).Count(&items)
	testDB.Model(&model.Table{}).Count(&tables)

	assert.Equal(t, int64(4), categories)
	assert.Equal(t, int64(12), items)
	assert.Equal(t, int64(DefaultTableCount), tables)

	var classic model.MenuItem
	require.NoError(t, testDB.Where("name = ?", "Classic Burger").First(&classic).Error)
	assert.Equal(t, "150.00", classic.Price.String())
}

func TestTruncateAllTables(t *testing.T) {
	testDB, err := SetupTestDB()
	require.NoError(t, err)
	defer CleanupTestDB(testDB)

	require.NoError(t, Seed(testDB))
	require.NoError(t, TruncateAllTables(testDB))

	var count int64
	testDB.Model(&model.MenuItem{}).Count(&count)
	assert.Zero(t, count)
	assert.NoError(t, Ping(testDB))
}
