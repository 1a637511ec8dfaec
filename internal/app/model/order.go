package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// position in the kitchen flow; CANCELLED is handled separately
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPreparing: 1,
	OrderStatusReady:     2,
	OrderStatusDelivered: 3,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok || s == OrderStatusCancelled
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo allows forward moves only. Cancelling is allowed from any non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return orderStatusRank[next] > orderStatusRank[s]
}

type Order struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	TotalAmount  Money       `gorm:"type:numeric(10,2);not null" json:"totalAmount"`
	CustomerNote *string     `gorm:"type:text" json:"customerNote"`
	TableID      *uint       `gorm:"index" json:"tableId"`
	CreatedAt    time.Time   `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`

	Table      *Table      `gorm:"foreignKey:TableID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"table,omitempty"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a frozen snapshot of a catalog item at order time.
// MenuItemID is not a foreign key: unknown ids may be recorded at zero price.
type OrderItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"orderId"`
	MenuItemID uint      `gorm:"not null;index" json:"menuItemId"`
	Name       string    `gorm:"type:varchar(150)" json:"name"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  Money     `gorm:"type:numeric(10,2);not null" json:"unitPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
