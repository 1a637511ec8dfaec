package controller

import (
	"net/http"

	"github.com/elegance/restaurant-backend/internal/middleware"
	ws "github.com/elegance/restaurant-backend/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type KitchenController struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewKitchenController accepts websocket connections from allowedOrigins; "*" allows any origin
func NewKitchenController(hub *ws.Hub, allowedOrigins []string) *KitchenController {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return &KitchenController{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

// Connect streams order events to a kitchen screen
// GET /api/kitchen/ws
func (ctrl *KitchenController) Connect(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	conn, err := ctrl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("Failed to upgrade to WebSocket", err)
		return
	}

	client := ws.NewClient(ctrl.hub, &ws.Conn{Conn: conn})
	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	log.Info("Kitchen WebSocket connection established")
}
