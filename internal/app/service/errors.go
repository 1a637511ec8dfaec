package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrEmptyOrder       = errors.New("order has no items")
	ErrTableNotFound    = errors.New("table not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid status")

	ErrInvalidStatusTransition = errors.New("invalid status transition")

	ErrReservationNotFound  = errors.New("reservation not found")
	ErrDuplicateReservation = errors.New("duplicate reservation")

	ErrTableNumberExists    = errors.New("table number already exists")
	ErrStorageNotConfigured = errors.New("object storage is not configured")
	ErrEmailNotConfigured   = errors.New("email service not configured")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrCartItemNotFound     = errors.New("item is not in the cart")
)

// ValidationError lists request fields that were missing or malformed
type ValidationError struct {
	MissingFields []string
	InvalidFields []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingFields) > 0 {
		parts = append(parts, "missing fields: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.InvalidFields) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.InvalidFields, ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) empty() bool {
	return len(e.MissingFields) == 0 && len(e.InvalidFields) == 0
}

// UnknownMenuItemsError is returned under the reject policy when an order references ids absent from the catalog
type UnknownMenuItemsError struct {
	IDs []uint
}

func (e *UnknownMenuItemsError) Error() string {
	return fmt.Sprintf("unknown menu items: %v", e.IDs)
}
