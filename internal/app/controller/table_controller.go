package controller

import (
	"fmt"
	"net/http"

	"github.com/elegance/restaurant-backend/internal/app/service"
	apperrors "github.com/elegance/restaurant-backend/internal/errors"
	"github.com/elegance/restaurant-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type TableController struct {
	tableService  service.TableService
	exposeDetails bool
}

func NewTableController(tableService service.TableService, exposeDetails bool) *TableController {
	return &TableController{
		tableService:  tableService,
		exposeDetails: exposeDetails,
	}
}

type CreateTableRequest struct {
	Number int `json:"number"`
}

// tableResponse adds the menu link each table's QR code points to
type tableResponse struct {
	ID        uint   `json:"id"`
	Number    int    `json:"number"`
	QRCodeURL string `json:"qrCodeUrl,omitempty"`
	MenuURL   string `json:"menuUrl"`
}

// GetTables lists tables by number
// GET /api/tables
func (ctrl *TableController) GetTables(c *gin.Context) {
	tables, err := ctrl.tableService.ListTables()
	if err != nil {
		respondServiceError(c, err, "fetch tables", ctrl.exposeDetails)
		return
	}

	resp := make([]tableResponse, 0, len(tables))
	for i := range tables {
		resp = append(resp, tableResponse{
			ID:        tables[i].ID,
			Number:    tables[i].Number,
			QRCodeURL: tables[i].QRCodeURL,
			MenuURL:   ctrl.tableService.MenuURL(&tables[i]),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetTable returns one table
// GET /api/tables/:id
func (ctrl *TableController) GetTable(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	table, err := ctrl.tableService.GetTable(id)
	if err != nil {
		respondServiceError(c, err, "fetch table", ctrl.exposeDetails)
		return
	}
	c.JSON(http.StatusOK, tableResponse{
		ID:        table.ID,
		Number:    table.Number,
		QRCodeURL: table.QRCodeURL,
		MenuURL:   ctrl.tableService.MenuURL(table),
	})
}

// CreateTable registers a physical table
// POST /api/tables
func (ctrl *TableController) CreateTable(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid table data")
		return
	}

	table, err := ctrl.tableService.CreateTable(req.Number)
	if err != nil {
		respondServiceError(c, err, "create table", ctrl.exposeDetails)
		return
	}

	log.Info("Table created", map[string]interface{}{
		"table_id": table.ID,
	})
	c.JSON(http.StatusCreated, gin.H{
		"message": "Table created successfully",
		"table":   table,
	})
}

// GetQRCode downloads the PNG QR code for a table's menu link
// GET /api/tables/:id/qrcode
func (ctrl *TableController) GetQRCode(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	code, err := ctrl.tableService.QRCode(id)
	if err != nil {
		respondServiceError(c, err, "fetch table", ctrl.exposeDetails)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, code.Filename))
	c.Data(http.StatusOK, "image/png", code.PNG)
}

// PublishQRCode uploads the table's QR code to object storage
// POST /api/tables/:id/qrcode/publish
func (ctrl *TableController) PublishQRCode(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	table, err := ctrl.tableService.PublishQRCode(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "publish table qr code", ctrl.exposeDetails)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "QR code published",
		"table":   table,
	})
}
