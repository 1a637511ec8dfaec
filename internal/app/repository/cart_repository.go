package repository

import (
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"gorm.io/gorm"
)

type CartRepository interface {
	Load(sessionID string) ([]model.CartItem, error)
	Replace(sessionID string, items []model.CartItem) error
	Clear(sessionID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Load returns the session's lines in the order they were added
func (r *cartRepository) Load(sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.Where("session_id = ?", sessionID).
		Order("position ASC").
		Find(&items).Error; err != nil {
		logger.Error("Failed to load cart from database", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, err
	}
	return items, nil
}

// Replace swaps the stored lines for items in one transaction
func (r *cartRepository) Replace(sessionID string, items []model.CartItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ID = 0
			items[i].SessionID = sessionID
			items[i].Position = i
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		logger.Error("Failed to save cart to database", err, map[string]interface{}{
			"session_id": sessionID,
			"items":      len(items),
		})
		return err
	}
	return nil
}

func (r *cartRepository) Clear(sessionID string) error {
	return r.Replace(sessionID, nil)
}
