package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable
type Pinger func() error

type HealthController struct {
	ping Pinger
}

func NewHealthController(ping Pinger) *HealthController {
	return &HealthController{ping: ping}
}

// Health reports process and database status
// GET /health
func (ctrl *HealthController) Health(c *gin.Context) {
	database := "up"
	if ctrl.ping == nil || ctrl.ping() != nil {
		database = "down"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": database,
	})
}
