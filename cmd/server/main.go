package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elegance/restaurant-backend/config"
	"github.com/elegance/restaurant-backend/internal/app/controller"
	"github.com/elegance/restaurant-backend/internal/app/repository"
	"github.com/elegance/restaurant-backend/internal/app/service"
	"github.com/elegance/restaurant-backend/internal/cache"
	"github.com/elegance/restaurant-backend/internal/db"
	"github.com/elegance/restaurant-backend/internal/router"
	"github.com/elegance/restaurant-backend/internal/scheduler"
	"github.com/elegance/restaurant-backend/internal/storage"
	ws "github.com/elegance/restaurant-backend/internal/websocket"
	"github.com/elegance/restaurant-backend/internal/worker"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"github.com/elegance/restaurant-backend/pkg/mailer"
	redisclient "github.com/elegance/restaurant-backend/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.IsDevelopment(),
	})

	logger.Info("Starting restaurant backend", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   cfg.Log.Level,
	})

	// Initialize database
	database, err := db.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}
	if err := db.Seed(database); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Optional menu cache
	var menuCache service.MenuCache
	var redis *goredis.Client
	if cfg.Redis.Enabled() {
		redis, err = redisclient.NewClient(&cfg.Redis)
		if err != nil {
			logger.Warn("Menu cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			menuCache = cache.NewMenuCache(redis, cfg.Redis.MenuCacheTTL)
		}
	}

	// Optional email provider
	var sender mailer.Sender
	if cfg.Email.ResendAPIKey != "" {
		client, err := mailer.NewClient(mailer.Config{APIKey: cfg.Email.ResendAPIKey})
		if err != nil {
			logger.Fatal("Failed to create mail client", err)
		}
		sender = client
	} else {
		logger.Warn("RESEND_API_KEY not set, reservation emails are disabled")
	}

	// Optional QR code storage
	var objectStorage service.ObjectStorage
	if cfg.S3.Enabled() {
		objectStorage = storage.NewS3Storage(&cfg.S3)
	}

	hub := ws.NewHub()
	go hub.Run()

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	reservationRepo := repository.NewReservationRepository(database)
	tableRepo := repository.NewTableRepository(database)
	cartRepo := repository.NewCartRepository(database)

	// Initialize services
	notificationService := service.NewNotificationService(sender, service.NotificationConfig{
		From:            cfg.Email.From,
		RestaurantEmail: cfg.Email.RestaurantEmail,
		RestaurantName:  cfg.App.RestaurantName,
		BaseURL:         cfg.App.BaseURL,
	})
	queue := worker.NewNotificationQueue(notificationService, cfg.Notification.Workers, cfg.Notification.QueueSize)
	queue.Start()

	menuService := service.NewMenuService(menuRepo, menuCache)
	orderService := service.NewOrderService(orderRepo, menuRepo, tableRepo, cfg.Order.UnknownItemPolicy, hub)
	cartService := service.NewCartService(cartRepo, menuService, orderService)
	reservationService := service.NewReservationService(reservationRepo, queue)
	tableService := service.NewTableService(tableRepo, nil, objectStorage, cfg.App.BaseURL)

	var cacheScheduler *scheduler.MenuCacheScheduler
	if menuCache != nil {
		cacheScheduler = scheduler.NewMenuCacheScheduler(menuService, cfg.Redis.RefreshSpec)
		if err := cacheScheduler.Start(); err != nil {
			logger.Warn("Menu cache scheduler not started", map[string]interface{}{
				"error": err.Error(),
			})
			cacheScheduler = nil
		}
	}

	// Initialize controllers
	expose := cfg.IsDevelopment()
	r := router.NewRouter(router.Controllers{
		Health:       controller.NewHealthController(func() error { return db.Ping(database) }),
		Menu:         controller.NewMenuController(menuService),
		Cart:         controller.NewCartController(cartService, expose),
		Order:        controller.NewOrderController(orderService, expose),
		Reservation:  controller.NewReservationController(reservationService, expose),
		Notification: controller.NewNotificationController(notificationService, expose),
		Table:        controller.NewTableController(tableService, expose),
		Kitchen:      controller.NewKitchenController(hub, cfg.CORS.AllowedOrigins),
	}, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": server.Addr,
			"pid":     os.Getpid(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
	if cacheScheduler != nil {
		cacheScheduler.Stop()
	}
	hub.Stop()
	if err := queue.Stop(ctx); err != nil {
		logger.Error("Notification queue did not drain", err)
	}
	if err := redisclient.Close(redis); err != nil {
		logger.Error("Failed to close Redis connection", err)
	}

	logger.Info("Server stopped successfully")
}
