package db

import (
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/catalog"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"gorm.io/gorm"
)

// DefaultTableCount is how many tables Seed creates in an empty database
const DefaultTableCount = 10

func models() []interface{} {
	return []interface{}{
		&model.MenuCategory{},
		&model.MenuItem{},
		&model.Table{},
		&model.Order{},
		&model.OrderItem{},
		&model.Reservation{},
		&model.CartItem{},
	}
}

// Migrate runs database migrations
func Migrate(database *gorm.DB) error {
	logger.Info("Running database migrations...")

	all := models()
	if err := database.AutoMigrate(all...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(all),
	})
	return nil
}

// Seed fills an empty database with the static menu and the default tables
func Seed(database *gorm.DB) error {
	logger.Info("Seeding initial data...")

	if err := seedMenu(database); err != nil {
		logger.Error("Failed to seed menu", err)
		return err
	}
	if err := seedTables(database, DefaultTableCount); err != nil {
		logger.Error("Failed to seed tables", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

func seedMenu(database *gorm.DB) error {
	var count int64
	if err := database.Model(&model.MenuCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Menu already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	categories := catalog.SeedCategories()
	return database.Transaction(func(tx *gorm.DB) error {
		for i := range categories {
			if err := tx.Create(&categories[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func seedTables(database *gorm.DB, n int) error {
	var count int64
	if err := database.Model(&model.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tables := make([]model.Table, 0, n)
	for i := 1; i <= n; i++ {
		tables = append(tables, model.Table{Number: i})
	}
	return database.Create(&tables).Error
}
