package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/elegance/restaurant-backend/internal/app/model"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHubServer(t *testing.T) (*Hub, string) {
	hub := NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	upgrader := gorilla.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, &Conn{Conn: conn})
		hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(server.Close)

	return hub, "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestHub_BroadcastsOrderEvents(t *testing.T) {
	hub, url := startHubServer(t)

	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.PublishOrderEvent("order.created", &model.Order{ID: 9, Status: model.OrderStatusPending, TotalAmount: model.MustMoney("300")})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type  string `json:"type"`
		Order struct {
			ID          uint   `json:"id"`
			Status      string `json:"status"`
			TotalAmount string `json:"totalAmount"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(message, &event))
	assert.Equal(t, "order.created", event.Type)
	assert.Equal(t, uint(9), event.Order.ID)
	assert.Equal(t, "PENDING", event.Order.Status)
	assert.Equal(t, "300.00", event.Order.TotalAmount)
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub, url := startHubServer(t)

	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 2000; i++ {
			hub.PublishOrderEvent("order.created", &model.Order{ID: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("PublishOrderEvent blocked")
	}
}
