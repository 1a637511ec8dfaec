package service

import (
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/app/repository"
	"github.com/elegance/restaurant-backend/internal/cart"
	"github.com/elegance/restaurant-backend/pkg/logger"
)

// CartView is a cart with its computed totals
type CartView struct {
	Items      []cart.Item `json:"items"`
	TotalItems int         `json:"totalItems"`
	TotalPrice model.Money `json:"totalPrice"`
}

type CartService interface {
	GetCart(sessionID string) (*CartView, error)
	AddItem(sessionID string, itemID uint) (*CartView, error)
	UpdateQuantity(sessionID string, itemID uint, quantity int) (*CartView, error)
	RemoveItem(sessionID string, itemID uint) (*CartView, error)
	ClearCart(sessionID string) error
	Checkout(sessionID string, tableID *uint, customerNote *string) (*model.Order, error)
}

type cartService struct {
	cartRepo     repository.CartRepository
	menuService  MenuService
	orderService OrderService
}

func NewCartService(cartRepo repository.CartRepository, menuService MenuService, orderService OrderService) CartService {
	return &cartService{
		cartRepo:     cartRepo,
		menuService:  menuService,
		orderService: orderService,
	}
}

func (s *cartService) load(sessionID string) (*cart.Cart, error) {
	rows, err := s.cartRepo.Load(sessionID)
	if err != nil {
		return nil, err
	}
	items := make([]cart.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, cart.Item{
			ID:       row.MenuItemID,
			Name:     row.Name,
			Price:    row.Price,
			Image:    row.Image,
			Quantity: row.Quantity,
		})
	}
	return cart.New(items...), nil
}

func (s *cartService) save(sessionID string, c *cart.Cart) (*CartView, error) {
	items := c.Items()
	rows := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, model.CartItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Image:      item.Image,
			Quantity:   item.Quantity,
		})
	}
	if err := s.cartRepo.Replace(sessionID, rows); err != nil {
		return nil, err
	}
	return view(c), nil
}

func view(c *cart.Cart) *CartView {
	return &CartView{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

func (s *cartService) GetCart(sessionID string) (*CartView, error) {
	c, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	return view(c), nil
}

// AddItem captures the item's current catalog price; later price changes do not affect the line
func (s *cartService) AddItem(sessionID string, itemID uint) (*CartView, error) {
	c, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}

	if !c.Contains(itemID) {
		menuItem, err := s.menuService.FindItem(itemID)
		if err != nil {
			return nil, err
		}
		c.AddItem(cart.Item{
			ID:    menuItem.ID,
			Name:  menuItem.Name,
			Price: menuItem.Price,
			Image: menuItem.Image,
		})
	} else {
		c.AddItem(cart.Item{ID: itemID})
	}

	return s.save(sessionID, c)
}

func (s *cartService) UpdateQuantity(sessionID string, itemID uint, quantity int) (*CartView, error) {
	c, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if !c.Contains(itemID) {
		return nil, ErrCartItemNotFound
	}
	c.UpdateQuantity(itemID, quantity)
	return s.save(sessionID, c)
}

func (s *cartService) RemoveItem(sessionID string, itemID uint) (*CartView, error) {
	c, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	c.RemoveItem(itemID)
	return s.save(sessionID, c)
}

func (s *cartService) ClearCart(sessionID string) error {
	return s.cartRepo.Clear(sessionID)
}

// Checkout submits the cart as an order. The cart is only cleared once the order exists.
func (s *cartService) Checkout(sessionID string, tableID *uint, customerNote *string) (*model.Order, error) {
	c, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrCartEmpty
	}

	items := c.Items()
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderLine{ItemID: item.ID, Quantity: item.Quantity})
	}

	order, err := s.orderService.CreateOrder(CreateOrderInput{
		Items:        lines,
		TableID:      tableID,
		CustomerNote: customerNote,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.Clear(sessionID); err != nil {
		logger.Error("Failed to clear cart after checkout", err, map[string]interface{}{
			"session_id": sessionID,
			"order_id":   order.ID,
		})
	}
	return order, nil
}
