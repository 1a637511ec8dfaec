package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/app/repository"
	"github.com/elegance/restaurant-backend/internal/app/service"
	apperrors "github.com/elegance/restaurant-backend/internal/errors"
	"github.com/elegance/restaurant-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService  service.OrderService
	exposeDetails bool
}

func NewOrderController(orderService service.OrderService, exposeDetails bool) *OrderController {
	return &OrderController{
		orderService:  orderService,
		exposeDetails: exposeDetails,
	}
}

// OrderItemInput is one requested line. Any price the client sends is not read.
type OrderItemInput struct {
	ID       uint `json:"id"`
	Quantity int  `json:"quantity"`
}

type CreateOrderRequest struct {
	Items        []OrderItemInput `json:"items"`
	TableID      *uint            `json:"tableId"`
	CustomerNote *string          `json:"customerNote"`
}

type UpdateOrderStatusRequest struct {
	OrderID uint              `json:"orderId"`
	Status  model.OrderStatus `json:"status"`
}

func (r CreateOrderRequest) input() service.CreateOrderInput {
	lines := make([]service.OrderLine, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, service.OrderLine{ItemID: item.ID, Quantity: item.Quantity})
	}
	return service.CreateOrderInput{
		Items:        lines,
		TableID:      r.TableID,
		CustomerNote: r.CustomerNote,
	}
}

// respondOrderError reports an unknown tableId as a bad request rather than a missing resource
func respondOrderError(c *gin.Context, err error, exposeDetails bool) {
	if errors.Is(err, service.ErrTableNotFound) {
		apperrors.BadRequest(c, apperrors.ValidationUnknownTable, "Table does not exist")
		return
	}
	respondServiceError(c, err, "create order", exposeDetails)
}

// CreateOrder prices the requested items from the catalog and stores the order
// POST /api/orders and POST /api/checkout
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid order data")
		return
	}

	order, err := ctrl.orderService.CreateOrder(req.input())
	if err != nil {
		respondOrderError(c, err, ctrl.exposeDetails)
		return
	}

	log.Info("Order created successfully", map[string]interface{}{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount.String(),
		"item_count":   len(order.OrderItems),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// GetOrders lists orders, newest first
// GET /api/orders?tableId=&status=
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var filter repository.OrderFilter
	if raw := c.Query("tableId"); raw != "" {
		tableID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid tableId")
			return
		}
		id := uint(tableID)
		filter.TableID = &id
	}
	if raw := c.Query("status"); raw != "" {
		status := model.OrderStatus(raw)
		if !status.Valid() {
			apperrors.BadRequest(c, apperrors.ValidationInvalidStatus, "Invalid status")
			return
		}
		filter.Status = status
	}

	orders, err := ctrl.orderService.ListOrders(filter)
	if err != nil {
		respondServiceError(c, err, "fetch orders", ctrl.exposeDetails)
		return
	}

	log.Info("Orders fetched successfully", map[string]interface{}{
		"count": len(orders),
	})
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID returns one order with its items
// GET /api/orders/:id
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.orderService.GetOrder(id)
	if err != nil {
		respondServiceError(c, err, "fetch order", ctrl.exposeDetails)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus moves an order forward through its lifecycle
// PUT /api/orders
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == 0 || !req.Status.Valid() {
		apperrors.BadRequest(c, apperrors.ValidationInvalidStatus, "Invalid order ID or status")
		return
	}

	order, err := ctrl.orderService.UpdateOrderStatus(req.OrderID, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatusTransition) {
			apperrors.Conflict(c, apperrors.OrderInvalidTransition, "Order cannot move to "+string(req.Status))
			return
		}
		respondServiceError(c, err, "update order", ctrl.exposeDetails)
		return
	}

	log.Info("Order status updated", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})
	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"order":   order,
	})
}
