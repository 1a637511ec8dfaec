package model

import "time"

type MenuCategory struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	MenuItems   []MenuItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"menuItems"`
}

func (MenuCategory) TableName() string {
	return "menu_categories"
}

type MenuItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Price       Money     `gorm:"type:numeric(10,2);not null" json:"price"` // authoritative catalog price
	Image       string    `gorm:"type:text" json:"image"`
	CategoryID  uint      `gorm:"not null;index" json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
