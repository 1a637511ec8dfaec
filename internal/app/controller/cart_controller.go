package controller

import (
	"net/http"

	"github.com/elegance/restaurant-backend/internal/app/service"
	apperrors "github.com/elegance/restaurant-backend/internal/errors"
	"github.com/elegance/restaurant-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService   service.CartService
	exposeDetails bool
}

func NewCartController(cartService service.CartService, exposeDetails bool) *CartController {
	return &CartController{
		cartService:   cartService,
		exposeDetails: exposeDetails,
	}
}

type AddToCartRequest struct {
	ID uint `json:"id" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type CheckoutCartRequest struct {
	TableID      *uint   `json:"tableId"`
	CustomerNote *string `json:"customerNote"`
}

// GetCart returns the session's cart
// GET /api/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cartService.GetCart(middleware.GetCartSession(c))
	if err != nil {
		respondServiceError(c, err, "fetch cart", ctrl.exposeDetails)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddToCart adds one unit of a menu item
// POST /api/cart/items
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sessionID := middleware.GetCartSession(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithMissingFields(c, []string{"id"}, nil)
		return
	}

	cart, err := ctrl.cartService.AddItem(sessionID, req.ID)
	if err != nil {
		respondServiceError(c, err, "update cart", ctrl.exposeDetails)
		return
	}

	log.Info("Item added to cart", map[string]interface{}{
		"menu_item_id": req.ID,
		"total_items":  cart.TotalItems,
	})
	c.JSON(http.StatusOK, cart)
}

// UpdateCartItem sets an item's quantity; zero or less removes it
// PUT /api/cart/items/:id
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithMissingFields(c, []string{"quantity"}, nil)
		return
	}

	cart, err := ctrl.cartService.UpdateQuantity(middleware.GetCartSession(c), id, *req.Quantity)
	if err != nil {
		respondServiceError(c, err, "update cart", ctrl.exposeDetails)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveFromCart deletes an item regardless of quantity
// DELETE /api/cart/items/:id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cart, err := ctrl.cartService.RemoveItem(middleware.GetCartSession(c), id)
	if err != nil {
		respondServiceError(c, err, "update cart", ctrl.exposeDetails)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// ClearCart empties the session's cart
// DELETE /api/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cartService.ClearCart(middleware.GetCartSession(c)); err != nil {
		respondServiceError(c, err, "update cart", ctrl.exposeDetails)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

// Checkout turns the cart into an order
// POST /api/cart/checkout
func (ctrl *CartController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CheckoutCartRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
			return
		}
	}

	order, err := ctrl.cartService.Checkout(middleware.GetCartSession(c), req.TableID, req.CustomerNote)
	if err != nil {
		respondOrderError(c, err, ctrl.exposeDetails)
		return
	}

	log.Info("Cart checked out", map[string]interface{}{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount.String(),
	})
	c.JSON(http.StatusOK, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}
