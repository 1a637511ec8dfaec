package repository

import (
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"gorm.io/gorm"
)

// OrderFilter narrows order listings; zero values are ignored
type OrderFilter struct {
	TableID *uint
	Status  model.OrderStatus
}

type OrderRepository interface {
	Create(order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindAll(filter OrderFilter) ([]model.Order, error)
	UpdateStatus(id uint, from, to model.OrderStatus) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) preloadOrder() *gorm.DB {
	return r.db.Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Preload("Table")
}

// Create writes the order and its items in a single transaction
func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"total_amount": order.TotalAmount.String(),
		"items":        len(order.OrderItems),
		"table_id":     order.TableID,
	})

	items := order.OrderItems
	err := r.db.Transaction(func(tx *gorm.DB) error {
		order.OrderItems = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	order.OrderItems = items
	if err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"total_amount": order.TotalAmount.String(),
			"items":        len(items),
		})
		return err
	}

	logger.Debug("Order created in database", map[string]interface{}{
		"order_id": order.ID,
	})
	return nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.preloadOrder().First(&order, id).Error; err != nil {
		logger.Debug("Order not found in database", map[string]interface{}{
			"order_id": id,
			"error":    err.Error(),
		})
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindAll(filter OrderFilter) ([]model.Order, error) {
	query := r.preloadOrder()
	if filter.TableID != nil {
		query = query.Where("table_id = ?", *filter.TableID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var orders []model.Order
	if err := query.Order("created_at DESC").Order("id DESC").Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders in database", err, map[string]interface{}{
			"table_id": filter.TableID,
			"status":   filter.Status,
		})
		return nil, err
	}

	logger.Debug("Orders found in database", map[string]interface{}{
		"count": len(orders),
	})
	return orders, nil
}

// UpdateStatus moves the order from one status to another.
// It returns ErrStatusChanged when the stored status is no longer from.
func (r *orderRepository) UpdateStatus(id uint, from, to model.OrderStatus) error {
	result := r.db.Model(&model.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		logger.Error("Failed to update order status in database", result.Error, map[string]interface{}{
			"order_id": id,
			"from":     from,
			"to":       to,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&model.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		logger.Warn("Order status changed before update", map[string]interface{}{
			"order_id": id,
			"from":     from,
			"to":       to,
		})
		return ErrStatusChanged
	}

	logger.Debug("Order status updated in database", map[string]interface{}{
		"order_id": id,
		"status":   to,
	})
	return nil
}
