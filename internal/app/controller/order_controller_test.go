package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/elegance/restaurant-backend/config"
	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderJSON struct {
	ID          uint    `json:"id"`
	Status      string  `json:"status"`
	TotalAmount string  `json:"totalAmount"`
	TableID     *uint   `json:"tableId"`
	Note        *string `json:"customerNote"`
	OrderItems  []struct {
		MenuItemID uint   `json:"menuItemId"`
		Name       string `json:"name"`
		Quantity   int    `json:"quantity"`
		UnitPrice  string `json:"unitPrice"`
	} `json:"orderItems"`
}

type orderEnvelope struct {
	Message string    `json:"message"`
	Order   orderJSON `json:"order"`
}

func TestOrderController_CreateOrder_UsesCatalogPrice(t *testing.T) {
	env := setupControllerTest(t, envOptions{})
	item := env.seedItem(t, "Classic Burger", "150.00")

	body := fmt.Sprintf(`{"items":[{"id":%d,"quantity":2,"price":1}]}`, item.ID)
	w := env.do(t, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp orderEnvelope
	decode(t, w, &resp)
	assert.Equal(t, "PENDING", resp.Order.Status)
	assert.Equal(t, "300.00", resp.Order.TotalAmount)
	require.Len(t, resp.Order.OrderItems, 1)
	assert.Equal(t, "150.00", resp.Order.OrderItems[0].UnitPrice)
	assert.Equal(t, 2, resp.Order.OrderItems[0].Quantity)
	assert.Equal(t, item.ID, resp.Order.OrderItems[0].MenuItemID)
}

func TestOrderController_Checkout_SharesOrderFlow(t *testing.T) {
	env := setupControllerTest(t, envOptions{})
	burger := env.seedItem(t, "Classic Burger", "150")
	cola := env.seedItem(t, "Cola", "30")

	body := fmt.Sprintf(`{"items":[{"id":%d,"quantity":1},{"id":%d,"quantity":3}]}`, burger.ID, cola.ID)
	w := env.do(t, http.MethodPost, "/checkout", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp orderEnvelope
	decode(t, w, &resp)
	assert.Equal(t, "240.00", resp.Order.TotalAmount)
}

func TestOrderController_CreateOrder_UnknownItemZeroPriced(t *testing.T) {
	env := setupControllerTest(t, envOptions{})

	w := env.do(t, http.MethodPost, "/orders", `{"items":[{"id":404,"quantity":2}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp orderEnvelope
	decode(t, w, &resp)
	assert.Equal(t, "0.00", resp.Order.TotalAmount)
	assert.Equal(t, "0.00", resp.Order.OrderItems[0].UnitPrice)
}

func TestOrderController_CreateOrder_UnknownItemRejected(t *testing.T) {
	env := setupControllerTest(t, envOptions{policy: config.UnknownItemReject})

	w := env.do(t, http.MethodPost, "/orders", `{"items":[{"id":404,"quantity":2}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	decode(t, w, &resp)
	assert.Equal(t, "VALIDATION_UNKNOWN_MENU_ITEM", resp["error"])
	assert.Equal(t, []interface{}{float64(404)}, resp["unknownItemIds"])
}

func TestOrderController_CreateOrder_Invalid(t *testing.T) {
	env := setupControllerTest(t, envOptions{})
	item := env.seedItem(t, "Classic Burger", "150")

	cases := map[string]string{
		"empty items":    `{"items":[]}`,
		"missing items":  `{}`,
		"malformed json": `{"items":`,
		"zero quantity":  fmt.Sprintf(`{"items":[{"id":%d,"quantity":0}]}`, item.ID),
	}
	for name, body := range cases {
		w := env.do(t, http.MethodPost, "/orders", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestOrderController_CreateOrder_UnknownTable(t *testing.T) {
	env := setupControllerTest(t, envOptions{})
	item := env.seedItem(t, "Classic Burger", "150")

	w := env.do(t, http.MethodPost, "/orders", fmt.Sprintf(`{"items":[{"id":%d,"quantity":1}],"tableId":99}`, item.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	decode(t, w, &resp)
	assert.Equal(t, "VALIDATION_UNKNOWN_TABLE", resp["error"])
}

func TestOrderController_GetOrders_Filters(t *testing.T) {
	env := setupControllerTest(t, envOptions{})
	item := env.seedItem(t, "Classic Burger", "150")
	table := model.Table{Number: 4}
	require.NoError(t, env.db.Create(&table).Error)

	env.do(t, http.MethodPost, "/orders", fmt.Sprintf(`{"items":[{"id":%d,"quantity":1}],"tableId":%d}`, item.ID, table.ID))
	env.do(t, http.MethodPost, "/orders", fmt.Sprintf(`{"items":[{"id":%d,"quantity":1}]}`, item.ID))

	w := env.do(t, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []orderJSON
	decode(t, w, &all)
	assert.Len(t, all, 2)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/orders?tableId=%d&status=PENDING", table.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []orderJSON
	decode(t, w, &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, table.ID, *filtered[0].TableID)

	w = env.do(t, http.MethodGet, "/orders?status=SHIPPED", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderController_UpdateOrderStatus(t *testing.T) {
	env := setupControllerTest(t, envOptions{})
	item := env.seedItem(t, "Classic Burger", "150")

	w := env.do(t, http.MethodPost, "/orders", fmt.Sprintf(`{"items":[{"id":%d,"quantity":1}]}`, item.ID))
	var created orderEnvelope
	decode(t, w, &created)

	w = env.do(t, http.MethodPut, "/orders", map[string]interface{}{"orderId": created.Order.ID, "status": "PREPARING"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated orderEnvelope
	decode(t, w, &updated)
	assert.Equal(t, "PREPARING", updated.Order.Status)

	w = env.do(t, http.MethodPut, "/orders", map[string]interface{}{"orderId": created.Order.ID, "status": "PENDING"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPut, "/orders", map[string]interface{}{"orderId": created.Order.ID, "status": "EATEN"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, "/orders", map[string]interface{}{"orderId": 999, "status": "READY"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderController_GetOrderByID(t *testing.T) {
	env := setupControllerTest(t, envOptions{})
	item := env.seedItem(t, "Classic Burger", "150")

	w := env.do(t, http.MethodPost, "/orders", fmt.Sprintf(`{"items":[{"id":%d,"quantity":1}]}`, item.ID))
	var created orderEnvelope
	decode(t, w, &created)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/orders/%d", created.Order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/orders/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/orders/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
