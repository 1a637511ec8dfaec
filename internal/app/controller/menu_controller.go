package controller

import (
	"net/http"

	"github.com/elegance/restaurant-backend/internal/app/service"
	"github.com/elegance/restaurant-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menuService service.MenuService
}

func NewMenuController(menuService service.MenuService) *MenuController {
	return &MenuController{
		menuService: menuService,
	}
}

// GetMenu returns every category with its items
// GET /api/menu
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, source := ctrl.menuService.ListCategories(c.Request.Context())

	log.Info("Menu fetched", map[string]interface{}{
		"categories": len(categories),
		"source":     source,
	})

	c.JSON(http.StatusOK, categories)
}
