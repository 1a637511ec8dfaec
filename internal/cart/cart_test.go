package cart

import (
	"math/rand"
	"testing"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burger() Item {
	return Item{ID: 1, Name: "Classic Burger", Price: model.MustMoney("150"), Image: "burger.jpg"}
}

func cola() Item {
	return Item{ID: 7, Name: "Cola", Price: model.MustMoney("30"), Image: "cola.jpg"}
}

func TestAddItemDeduplicates(t *testing.T) {
	c := New()
	for i := 0; i < 3; i++ {
		c.AddItem(burger())
	}
	c.AddItem(cola())

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 4, c.TotalItems())
}

func TestAddItemIgnoresSuppliedQuantity(t *testing.T) {
	c := New()
	item := burger()
	item.Quantity = 10
	c.AddItem(item)
	assert.Equal(t, 1, c.TotalItems())
}

func TestAddItemKeepsFirstCapturedPrice(t *testing.T) {
	c := New()
	c.AddItem(burger())
	cheaper := burger()
	cheaper.Price = model.MustMoney("1")
	c.AddItem(cheaper)

	assert.Equal(t, "300.00", c.TotalPrice().String())
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	a := New()
	a.AddItem(burger())
	a.AddItem(cola())
	a.UpdateQuantity(1, 0)

	b := New()
	b.AddItem(burger())
	b.AddItem(cola())
	b.RemoveItem(1)

	assert.Equal(t, a.Items(), b.Items())
	assert.False(t, a.Contains(1))

	a.UpdateQuantity(7, -2)
	assert.True(t, a.IsEmpty())
}

func TestUpdateQuantitySetsExactly(t *testing.T) {
	c := New()
	c.AddItem(burger())
	c.UpdateQuantity(1, 42)
	assert.Equal(t, 42, c.TotalItems())

	c.UpdateQuantity(99, 3)
	assert.Equal(t, 1, len(c.Items()))
}

func TestRemoveItemIgnoresQuantity(t *testing.T) {
	c := New()
	c.AddItem(burger())
	c.UpdateQuantity(1, 5)
	c.RemoveItem(1)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "0.00", c.TotalPrice().String())
}

func TestClear(t *testing.T) {
	c := New(burger(), cola())
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.TotalItems())
}

func TestNewNormalizesStoredLines(t *testing.T) {
	b := burger()
	b.Quantity = 2
	dup := burger()
	dup.Quantity = 1
	zero := cola()
	zero.Quantity = 0

	c := New(b, dup, zero)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(burger())
	items := c.Items()
	items[0].Quantity = 100
	assert.Equal(t, 1, c.TotalItems())
}

// random operation sequences keep the total equal to the sum over lines
func TestTotalsInvariantUnderRandomOperations(t *testing.T) {
	catalog := []Item{
		burger(),
		cola(),
		{ID: 10, Name: "Chocolate Souffle", Price: model.MustMoney("80.55")},
		{ID: 11, Name: "Tiramisu", Price: model.MustMoney("70.10")},
	}
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		c := New()
		for step := 0; step < 40; step++ {
			item := catalog[rng.Intn(len(catalog))]
			switch rng.Intn(3) {
			case 0:
				c.AddItem(item)
			case 1:
				c.RemoveItem(item.ID)
			default:
				c.UpdateQuantity(item.ID, rng.Intn(6)-1)
			}
		}

		expected := decimal.Zero
		seen := map[uint]bool{}
		count := 0
		for _, line := range c.Items() {
			require.False(t, seen[line.ID], "duplicate line for id %d", line.ID)
			require.GreaterOrEqual(t, line.Quantity, 1)
			seen[line.ID] = true
			count += line.Quantity
			expected = expected.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		assert.Equal(t, count, c.TotalItems())
		assert.Equal(t, expected.StringFixed(2), c.TotalPrice().String())
	}
}
