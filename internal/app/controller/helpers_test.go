package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/elegance/restaurant-backend/config"
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/app/repository"
	"github.com/elegance/restaurant-backend/internal/app/service"
	"github.com/elegance/restaurant-backend/internal/db"
	"github.com/elegance/restaurant-backend/internal/middleware"
	"github.com/elegance/restaurant-backend/pkg/mailer"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const restaurantInbox = "kitchen@elegance.example"

type fakeSender struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failFor map[string]bool
}

func (f *fakeSender) Send(ctx context.Context, msg mailer.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, to := range msg.To {
		if f.failFor[to] {
			return "", errors.New("provider rejected " + to)
		}
	}
	f.sent = append(f.sent, msg)
	return fmt.Sprintf("msg_%d", len(f.sent)), nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeStorage struct{}

func (fakeStorage) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	return "https://cdn.elegance.example/" + key, nil
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

type envOptions struct {
	sender  mailer.Sender
	storage service.ObjectStorage
	policy  string
}

// setupControllerTest wires the real services over an in-memory database
func setupControllerTest(t *testing.T, opts envOptions) *testEnv {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	if opts.policy == "" {
		opts.policy = config.UnknownItemZeroPrice
	}

	menuRepo := repository.NewMenuRepository(testDB)
	tableRepo := repository.NewTableRepository(testDB)

	menuService := service.NewMenuService(menuRepo, nil)
	orderService := service.NewOrderService(repository.NewOrderRepository(testDB), menuRepo, tableRepo, opts.policy, nil)
	cartService := service.NewCartService(repository.NewCartRepository(testDB), menuService, orderService)
	reservationService := service.NewReservationService(repository.NewReservationRepository(testDB), nil)
	notificationService := service.NewNotificationService(opts.sender, service.NotificationConfig{
		From:            "Elegance Restaurant <hello@elegance.example>",
		RestaurantEmail: restaurantInbox,
		RestaurantName:  "Elegance Restaurant",
		BaseURL:         "https://elegance.example",
	})
	tableService := service.NewTableService(tableRepo, nil, opts.storage, "https://elegance.example")

	menuCtrl := NewMenuController(menuService)
	cartCtrl := NewCartController(cartService, true)
	orderCtrl := NewOrderController(orderService, true)
	reservationCtrl := NewReservationController(reservationService, true)
	notificationCtrl := NewNotificationController(notificationService, true)
	tableCtrl := NewTableController(tableService, true)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.LoggingMiddleware())

	router.GET("/menu", menuCtrl.GetMenu)

	cart := router.Group("/cart", middleware.CartSession())
	cart.GET("", cartCtrl.GetCart)
	cart.DELETE("", cartCtrl.ClearCart)
	cart.POST("/items", cartCtrl.AddToCart)
	cart.PUT("/items/:id", cartCtrl.UpdateCartItem)
	cart.DELETE("/items/:id", cartCtrl.RemoveFromCart)
	cart.POST("/checkout", cartCtrl.Checkout)

	router.POST("/checkout", orderCtrl.CreateOrder)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders", orderCtrl.GetOrders)
	router.PUT("/orders", orderCtrl.UpdateOrderStatus)
	router.GET("/orders/:id", orderCtrl.GetOrderByID)

	router.POST("/reservations", reservationCtrl.CreateReservation)
	router.GET("/reservations", reservationCtrl.GetReservations)
	router.PUT("/reservations", reservationCtrl.UpdateReservationStatus)

	router.POST("/send-reservation-email", notificationCtrl.SendReservationEmail)
	router.POST("/email", notificationCtrl.SendEmail)

	router.GET("/tables", tableCtrl.GetTables)
	router.POST("/tables", tableCtrl.CreateTable)
	router.GET("/tables/:id", tableCtrl.GetTable)
	router.GET("/tables/:id/qrcode", tableCtrl.GetQRCode)
	router.POST("/tables/:id/qrcode/publish", tableCtrl.PublishQRCode)

	return &testEnv{db: testDB, router: router}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (e *testEnv) seedItem(t *testing.T, name, price string) model.MenuItem {
	category := model.MenuCategory{Name: name + " category"}
	require.NoError(t, e.db.Create(&category).Error)
	item := model.MenuItem{Name: name, Price: model.MustMoney(price), Image: name + ".jpg", CategoryID: category.ID}
	require.NoError(t, e.db.Create(&item).Error)
	return item
}
