package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/elegance/restaurant-backend/config"
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/app/repository"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order event types broadcast to the kitchen
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
)

// OrderLine is one requested item. Client-supplied prices never reach this type.
type OrderLine struct {
	ItemID   uint
	Quantity int
}

type CreateOrderInput struct {
	Items        []OrderLine
	TableID      *uint
	CustomerNote *string
}

// OrderEventPublisher receives order events; it must not block
type OrderEventPublisher interface {
	PublishOrderEvent(eventType string, order *model.Order)
}

type OrderService interface {
	CreateOrder(input CreateOrderInput) (*model.Order, error)
	ListOrders(filter repository.OrderFilter) ([]model.Order, error)
	GetOrder(id uint) (*model.Order, error)
	UpdateOrderStatus(id uint, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	orderRepo         repository.OrderRepository
	menuRepo          repository.MenuRepository
	tableRepo         repository.TableRepository
	unknownItemPolicy string
	events            OrderEventPublisher
}

// NewOrderService creates the order service. events may be nil.
func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	tableRepo repository.TableRepository,
	unknownItemPolicy string,
	events OrderEventPublisher,
) OrderService {
	if unknownItemPolicy == "" {
		unknownItemPolicy = config.UnknownItemZeroPrice
	}
	return &orderService{
		orderRepo:         orderRepo,
		menuRepo:          menuRepo,
		tableRepo:         tableRepo,
		unknownItemPolicy: unknownItemPolicy,
		events:            events,
	}
}

func validateLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}
	verr := &ValidationError{}
	for i, line := range lines {
		if line.ItemID == 0 {
			verr.InvalidFields = append(verr.InvalidFields, fmt.Sprintf("items[%d].id", i))
		}
		if line.Quantity < 1 {
			verr.InvalidFields = append(verr.InvalidFields, fmt.Sprintf("items[%d].quantity", i))
		}
	}
	if verr.empty() {
		return nil
	}
	return verr
}

// PriceLines resolves every line against catalog prices and computes the order total.
// The total is rounded half away from zero to two places.
func PriceLines(lines []OrderLine, catalog map[uint]model.MenuItem, policy string) ([]model.OrderItem, model.Money, error) {
	var unknown []uint
	items := make([]model.OrderItem, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		unitPrice := model.ZeroMoney()
		name := ""
		if menuItem, ok := catalog[line.ItemID]; ok {
			unitPrice = model.NewMoney(menuItem.Price.Decimal)
			name = menuItem.Name
		} else {
			unknown = append(unknown, line.ItemID)
		}

		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, model.OrderItem{
			MenuItemID: line.ItemID,
			Name:       name,
			Quantity:   line.Quantity,
			UnitPrice:  unitPrice,
		})
	}

	if len(unknown) > 0 && policy == config.UnknownItemReject {
		sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
		return nil, model.Money{}, &UnknownMenuItemsError{IDs: unknown}
	}
	return items, model.NewMoney(total), nil
}

func (s *orderService) CreateOrder(input CreateOrderInput) (*model.Order, error) {
	if err := validateLines(input.Items); err != nil {
		return nil, err
	}

	if input.TableID != nil {
		if _, err := s.tableRepo.FindByID(*input.TableID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTableNotFound
			}
			return nil, err
		}
	}

	ids := make([]uint, 0, len(input.Items))
	for _, line := range input.Items {
		ids = append(ids, line.ItemID)
	}
	menuItems, err := s.menuRepo.FindItemsByIDs(ids)
	if err != nil {
		logger.Error("Failed to load catalog prices", err, map[string]interface{}{
			"ids": ids,
		})
		return nil, err
	}
	byID := make(map[uint]model.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}

	orderItems, total, err := PriceLines(input.Items, byID, s.unknownItemPolicy)
	if err != nil {
		logger.Warn("Order rejected for unknown menu items", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if len(byID) < len(uniqueIDs(ids)) {
		logger.Warn("Order contains unknown menu items priced at zero", map[string]interface{}{
			"ids": ids,
		})
	}

	order := &model.Order{
		Status:       model.OrderStatusPending,
		TotalAmount:  total,
		CustomerNote: input.CustomerNote,
		TableID:      input.TableID,
		OrderItems:   orderItems,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	created, err := s.orderRepo.FindByID(order.ID)
	if err != nil {
		// the write succeeded; return what we have
		created = order
	}

	logger.Info("Order created", map[string]interface{}{
		"order_id":     created.ID,
		"total_amount": created.TotalAmount.String(),
		"items":        len(created.OrderItems),
		"table_id":     created.TableID,
	})

	s.publish(EventOrderCreated, created)
	return created, nil
}

func uniqueIDs(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s *orderService) ListOrders(filter repository.OrderFilter) ([]model.Order, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.orderRepo.FindAll(filter)
}

func (s *orderService) GetOrder(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(id uint, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		logger.Warn("Rejected order status transition", map[string]interface{}{
			"order_id": id,
			"from":     order.Status,
			"to":       status,
		})
		return nil, ErrInvalidStatusTransition
	}
	if order.Status == status {
		return order, nil
	}

	if err := s.orderRepo.UpdateStatus(id, order.Status, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		if errors.Is(err, repository.ErrStatusChanged) {
			return nil, ErrInvalidStatusTransition
		}
		return nil, err
	}
	order.Status = status

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})

	s.publish(EventOrderStatusUpdated, order)
	return order, nil
}

func (s *orderService) publish(eventType string, order *model.Order) {
	if s.events != nil {
		s.events.PublishOrderEvent(eventType, order)
	}
}
