package router

import (
	"net/http"

	"github.com/elegance/restaurant-backend/config"
	"github.com/elegance/restaurant-backend/internal/app/controller"
	"github.com/elegance/restaurant-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// Controllers groups every HTTP handler the router mounts
type Controllers struct {
	Health       *controller.HealthController
	Menu         *controller.MenuController
	Cart         *controller.CartController
	Order        *controller.OrderController
	Reservation  *controller.ReservationController
	Notification *controller.NotificationController
	Table        *controller.TableController
	Kitchen      *controller.KitchenController
}

type Router struct {
	controllers Controllers
	config      *config.Config
}

func NewRouter(controllers Controllers, cfg *config.Config) *Router {
	return &Router{
		controllers: controllers,
		config:      cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", r.controllers.Health.Health)

	api := router.Group("/api")
	{
		api.GET("/menu", r.controllers.Menu.GetMenu)

		cart := api.Group("/cart")
		cart.Use(middleware.CartSession())
		{
			cart.GET("", r.controllers.Cart.GetCart)
			cart.DELETE("", r.controllers.Cart.ClearCart)
			cart.POST("/items", r.controllers.Cart.AddToCart)
			cart.PUT("/items/:id", r.controllers.Cart.UpdateCartItem)
			cart.DELETE("/items/:id", r.controllers.Cart.RemoveFromCart)
			cart.POST("/checkout", r.controllers.Cart.Checkout)
		}

		api.POST("/checkout", r.controllers.Order.CreateOrder)

		orders := api.Group("/orders")
		{
			orders.POST("", r.controllers.Order.CreateOrder)
			orders.GET("", r.controllers.Order.GetOrders)
			orders.PUT("", r.controllers.Order.UpdateOrderStatus)
			orders.GET("/:id", r.controllers.Order.GetOrderByID)
		}

		reservations := api.Group("/reservations")
		{
			reservations.POST("", r.controllers.Reservation.CreateReservation)
			reservations.GET("", r.controllers.Reservation.GetReservations)
			reservations.PUT("", r.controllers.Reservation.UpdateReservationStatus)
		}

		api.POST("/send-reservation-email", r.controllers.Notification.SendReservationEmail)
		api.POST("/email", r.controllers.Notification.SendEmail)

		tables := api.Group("/tables")
		{
			tables.GET("", r.controllers.Table.GetTables)
			tables.POST("", r.controllers.Table.CreateTable)
			tables.GET("/:id", r.controllers.Table.GetTable)
			tables.GET("/:id/qrcode", r.controllers.Table.GetQRCode)
			tables.POST("/:id/qrcode/publish", r.controllers.Table.PublishQRCode)
		}

		if r.controllers.Kitchen != nil {
			api.GET("/kitchen/ws", r.controllers.Kitchen.Connect)
		}
	}

	return router
}

// Handler returns the engine wrapped with CORS handling
func (r *Router) Handler() http.Handler {
	origins := r.config.CORS.AllowedOrigins
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader, middleware.CartSessionHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, middleware.CartSessionHeader},
		AllowCredentials: !allowsAnyOrigin(origins),
		MaxAge:           43200,
	}).Handler(r.Setup())
}

func allowsAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
