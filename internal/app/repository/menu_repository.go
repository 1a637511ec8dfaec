package repository

import (
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"gorm.io/gorm"
)

type MenuRepository interface {
	FindAllCategories() ([]model.MenuCategory, error)
	FindItemByID(id uint) (*model.MenuItem, error)
	FindItemsByIDs(ids []uint) ([]model.MenuItem, error)
	CreateCategory(category *model.MenuCategory) error
	CountCategories() (int64, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) FindAllCategories() ([]model.MenuCategory, error) {
	var categories []model.MenuCategory
	err := r.db.
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		logger.Error("Failed to find menu categories in database", err)
		return nil, err
	}

	logger.Debug("Menu categories found in database", map[string]interface{}{
		"count": len(categories),
	})
	return categories, nil
}

func (r *menuRepository) FindItemByID(id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		logger.Debug("Menu item not found in database", map[string]interface{}{
			"menu_item_id": id,
			"error":        err.Error(),
		})
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) FindItemsByIDs(ids []uint) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		logger.Error("Failed to find menu items by IDs in database", err, map[string]interface{}{
			"ids": ids,
		})
		return nil, err
	}
	return items, nil
}

// CreateCategory inserts a category together with its items
func (r *menuRepository) CreateCategory(category *model.MenuCategory) error {
	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create menu category in database", err, map[string]interface{}{
			"name": category.Name,
		})
		return err
	}

	logger.Debug("Menu category created in database", map[string]interface{}{
		"category_id": category.ID,
		"items":       len(category.MenuItems),
	})
	return nil
}

func (r *menuRepository) CountCategories() (int64, error) {
	var count int64
	err := r.db.Model(&model.MenuCategory{}).Count(&count).Error
	return count, err
}
