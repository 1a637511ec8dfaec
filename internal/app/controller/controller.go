package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/elegance/restaurant-backend/internal/app/service"
	apperrors "github.com/elegance/restaurant-backend/internal/errors"
	"github.com/elegance/restaurant-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// FlexString accepts a JSON string or number. Forms often post numeric fields as text.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return strings.TrimSpace(string(f))
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		middleware.GetLoggerFromContext(c).Warn("Invalid ID format", map[string]interface{}{
			"param": name,
			"value": raw,
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service errors onto HTTP responses. Unrecognised errors become a 500.
func respondServiceError(c *gin.Context, err error, context string, exposeDetails bool) {
	var verr *service.ValidationError
	var unknown *service.UnknownMenuItemsError

	switch {
	case errors.As(err, &verr):
		apperrors.RespondWithMissingFields(c, verr.MissingFields, verr.InvalidFields)
	case errors.As(err, &unknown):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          apperrors.ValidationUnknownMenuItem,
			"message":        "Order references items that are not on the menu",
			"unknownItemIds": unknown.IDs,
		})
	case errors.Is(err, service.ErrEmptyOrder):
		apperrors.BadRequest(c, apperrors.ValidationEmptyOrder, "Order must contain at least one item")
	case errors.Is(err, service.ErrInvalidStatus):
		apperrors.BadRequest(c, apperrors.ValidationInvalidStatus, "Invalid status")
	case errors.Is(err, service.ErrCartEmpty):
		apperrors.BadRequest(c, apperrors.CartEmpty, "Cart is empty")
	case errors.Is(err, service.ErrMenuItemNotFound):
		apperrors.NotFound(c, apperrors.MenuItemNotFound, "Menu item not found")
	case errors.Is(err, service.ErrCartItemNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Item is not in the cart")
	case errors.Is(err, service.ErrTableNotFound):
		apperrors.NotFound(c, apperrors.TableNotFound, "Table not found")
	case errors.Is(err, service.ErrOrderNotFound):
		apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
	case errors.Is(err, service.ErrReservationNotFound):
		apperrors.NotFound(c, apperrors.ReservationNotFound, "Reservation not found")
	case errors.Is(err, service.ErrDuplicateReservation):
		apperrors.Conflict(c, apperrors.ReservationDuplicate, "A reservation with this email already exists")
	case errors.Is(err, service.ErrTableNumberExists):
		apperrors.Conflict(c, apperrors.TableNumberExists, "Table number already exists")
	case errors.Is(err, service.ErrInvalidStatusTransition):
		apperrors.Conflict(c, apperrors.ResourceConflict, "Status transition not allowed")
	case errors.Is(err, service.ErrStorageNotConfigured):
		apperrors.ServiceUnavailable(c, apperrors.StorageUnavailable, "Object storage is not configured")
	case errors.Is(err, service.ErrEmailNotConfigured):
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.EmailNotConfigured, "Email service not configured")
	default:
		middleware.GetLoggerFromContext(c).Error("Request failed", err, map[string]interface{}{
			"context": context,
		})
		apperrors.RespondWithInternal(c, err, context, exposeDetails)
	}
}
