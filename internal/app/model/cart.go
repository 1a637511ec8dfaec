package model

import "time"

// CartItem is one persisted line of a browsing session's cart
type CartItem struct {
	ID         uint      `gorm:"primarykey" json:"-"`
	SessionID  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_item" json:"-"`
	MenuItemID uint      `gorm:"not null;uniqueIndex:idx_cart_session_item" json:"id"`
	Name       string    `gorm:"type:varchar(150);not null" json:"name"`
	Price      Money     `gorm:"type:numeric(10,2);not null" json:"price"` // captured when added
	Image      string    `gorm:"type:text" json:"image"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	Position   int       `gorm:"not null;default:0" json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
