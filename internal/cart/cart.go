// Package cart implements the selection of menu items a browsing session holds before checkout.
package cart

import (
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/shopspring/decimal"
)

// Item is one cart line. Price is the price captured when the item was added.
type Item struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Price    model.Money `json:"price"`
	Image    string      `json:"image"`
	Quantity int         `json:"quantity"`
}

// Cart keeps at most one line per item id, each with quantity >= 1, in insertion order.
// A Cart is not safe for concurrent use.
type Cart struct {
	items []Item
}

// New builds a cart from stored lines, merging duplicate ids and dropping non-positive quantities
func New(items ...Item) *Cart {
	c := &Cart{}
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if i := c.index(item.ID); i >= 0 {
			c.items[i].Quantity += item.Quantity
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

func (c *Cart) index(id uint) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// AddItem increments the quantity of an existing line by one, or inserts item with quantity 1.
// item.Quantity is ignored.
func (c *Cart) AddItem(item Item) {
	if i := c.index(item.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	item.Quantity = 1
	c.items = append(c.items, item)
}

// RemoveItem deletes the line regardless of its quantity
func (c *Cart) RemoveItem(id uint) {
	if i := c.index(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// UpdateQuantity sets the quantity of a line exactly. q <= 0 removes the line.
// Ids not in the cart are ignored.
func (c *Cart) UpdateQuantity(id uint, q int) {
	if q <= 0 {
		c.RemoveItem(id)
		return
	}
	if i := c.index(id); i >= 0 {
		c.items[i].Quantity = q
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Contains(id uint) bool {
	return c.index(id) >= 0
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the lines
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of quantities
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price * quantity over all lines
func (c *Cart) TotalPrice() model.Money {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return model.NewMoney(total)
}
