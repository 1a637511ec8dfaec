package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/app/repository"
	apperrors "github.com/elegance/restaurant-backend/internal/errors"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

const qrCodeSize = 256

// QRGenerator renders content as a PNG QR code
type QRGenerator interface {
	Generate(content string) ([]byte, error)
}

type PNGQRGenerator struct {
	Size int
}

func (g PNGQRGenerator) Generate(content string) ([]byte, error) {
	size := g.Size
	if size == 0 {
		size = qrCodeSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}

// ObjectStorage publishes files and returns their public URL
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// TableQRCode is a rendered QR code pointing at a table's menu page
type TableQRCode struct {
	Table    *model.Table
	URL      string
	Filename string
	PNG      []byte
}

type TableService interface {
	ListTables() ([]model.Table, error)
	GetTable(id uint) (*model.Table, error)
	CreateTable(number int) (*model.Table, error)
	MenuURL(table *model.Table) string
	QRCode(id uint) (*TableQRCode, error)
	PublishQRCode(ctx context.Context, id uint) (*model.Table, error)
}

type tableService struct {
	tableRepo repository.TableRepository
	qr        QRGenerator
	storage   ObjectStorage
	baseURL   string
}

// NewTableService creates the table service. storage may be nil when publishing is disabled.
func NewTableService(tableRepo repository.TableRepository, qr QRGenerator, storage ObjectStorage, baseURL string) TableService {
	if qr == nil {
		qr = PNGQRGenerator{}
	}
	return &tableService{
		tableRepo: tableRepo,
		qr:        qr,
		storage:   storage,
		baseURL:   baseURL,
	}
}

func (s *tableService) ListTables() ([]model.Table, error) {
	return s.tableRepo.FindAll()
}

func (s *tableService) GetTable(id uint) (*model.Table, error) {
	table, err := s.tableRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}

func (s *tableService) CreateTable(number int) (*model.Table, error) {
	if number < 1 {
		return nil, &ValidationError{InvalidFields: []string{"number"}}
	}

	table := &model.Table{Number: number}
	if err := s.tableRepo.Create(table); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrTableNumberExists
		}
		return nil, err
	}

	logger.Info("Table created", map[string]interface{}{
		"table_id": table.ID,
		"number":   table.Number,
	})
	return table, nil
}

// MenuURL is the link a table's QR code encodes
func (s *tableService) MenuURL(table *model.Table) string {
	return fmt.Sprintf("%s/menu/%d", s.baseURL, table.ID)
}

func (s *tableService) QRCode(id uint) (*TableQRCode, error) {
	table, err := s.GetTable(id)
	if err != nil {
		return nil, err
	}

	url := s.MenuURL(table)
	png, err := s.qr.Generate(url)
	if err != nil {
		logger.Error("Failed to generate table QR code", err, map[string]interface{}{
			"table_id": id,
		})
		return nil, err
	}

	return &TableQRCode{
		Table:    table,
		URL:      url,
		Filename: fmt.Sprintf("table-%d-qr.png", table.Number),
		PNG:      png,
	}, nil
}

// PublishQRCode uploads the table's QR code and records its public URL
func (s *tableService) PublishQRCode(ctx context.Context, id uint) (*model.Table, error) {
	if s.storage == nil {
		return nil, ErrStorageNotConfigured
	}

	code, err := s.QRCode(id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("qr-codes/table-%d.png", code.Table.Number)
	url, err := s.storage.Upload(ctx, key, "image/png", code.PNG)
	if err != nil {
		logger.Error("Failed to upload table QR code", err, map[string]interface{}{
			"table_id": id,
			"key":      key,
		})
		return nil, err
	}

	if err := s.tableRepo.UpdateQRCodeURL(id, url); err != nil {
		return nil, err
	}
	code.Table.QRCodeURL = url

	logger.Info("Table QR code published", map[string]interface{}{
		"table_id": id,
		"url":      url,
	})
	return code.Table, nil
}
