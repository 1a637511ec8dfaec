package db

import (
	"fmt"

	"github.com/elegance/restaurant-backend/config"
	appLogger "github.com/elegance/restaurant-backend/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ephemeralDSN is a shared in-memory sqlite database living as long as the process
const ephemeralDSN = "file:restaurant?mode=memory&cache=shared"

// Open connects to the configured database. Without a connection string it opens
// an ephemeral in-memory database; config validation keeps that out of production.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // Use silent mode, we'll use our own logger
		TranslateError: true,
	}

	var (
		database *gorm.DB
		err      error
	)
	if cfg.UseEphemeral() {
		appLogger.Warn("DATABASE_URL not set, using ephemeral in-memory database", map[string]interface{}{
			"durable": false,
		})
		database, err = gorm.Open(sqlite.Open(ephemeralDSN), gormConfig)
	} else {
		appLogger.Info("Connecting to database")
		database, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if cfg.UseEphemeral() {
		// a single connection keeps the in-memory database alive and serializes writers
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	appLogger.Info("Database connection established successfully", map[string]interface{}{
		"ephemeral":      cfg.UseEphemeral(),
		"max_idle_conns": cfg.MaxIdleConns,
		"max_open_conns": cfg.MaxOpenConns,
	})
	return database, nil
}

// Close closes the underlying connection pool
func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping reports whether the database is reachable
func Ping(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
