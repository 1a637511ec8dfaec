package repository

import (
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"gorm.io/gorm"
)

type TableRepository interface {
	Create(table *model.Table) error
	FindAll() ([]model.Table, error)
	FindByID(id uint) (*model.Table, error)
	UpdateQRCodeURL(id uint, url string) error
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(table *model.Table) error {
	if err := r.db.Create(table).Error; err != nil {
		logger.Warn("Failed to create table in database", map[string]interface{}{
			"number": table.Number,
			"error":  err.Error(),
		})
		return err
	}

	logger.Debug("Table created in database", map[string]interface{}{
		"table_id": table.ID,
		"number":   table.Number,
	})
	return nil
}

func (r *tableRepository) FindAll() ([]model.Table, error) {
	var tables []model.Table
	if err := r.db.Order("number ASC").Find(&tables).Error; err != nil {
		logger.Error("Failed to find tables in database", err)
		return nil, err
	}
	return tables, nil
}

func (r *tableRepository) FindByID(id uint) (*model.Table, error) {
	var table model.Table
	if err := r.db.First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) UpdateQRCodeURL(id uint, url string) error {
	result := r.db.Model(&model.Table{}).Where("id = ?", id).Update("qr_code_url", url)
	if result.Error != nil {
		logger.Error("Failed to update table QR code URL", result.Error, map[string]interface{}{
			"table_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
