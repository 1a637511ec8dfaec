package main

import (
	"fmt"
	"strings"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const menuSheet = "Menu"

// Column layout of the menu sheet
const (
	colCategory = iota
	colCategoryDescription
	colItem
	colItemDescription
	colPrice
	colImage
	columnCount
)

// readMenuFromXLSX groups the sheet's rows into categories in first-seen order.
// Rows without a category, item name or valid price are skipped and counted.
func readMenuFromXLSX(filePath string) ([]model.MenuCategory, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := menuSheet
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	var categories []model.MenuCategory
	index := make(map[string]int)
	skipped := 0

	// first row is the header
	for _, row := range rows[1:] {
		cells := make([]string, columnCount)
		for i := 0; i < columnCount && i < len(row); i++ {
			cells[i] = strings.TrimSpace(row[i])
		}

		categoryName := cells[colCategory]
		itemName := cells[colItem]
		if categoryName == "" || itemName == "" {
			skipped++
			continue
		}

		amount, err := decimal.NewFromString(cells[colPrice])
		if err != nil || amount.IsNegative() {
			skipped++
			continue
		}
		price := model.NewMoney(amount)

		key := strings.ToLower(categoryName)
		pos, ok := index[key]
		if !ok {
			categories = append(categories, model.MenuCategory{
				Name:        categoryName,
				Description: optional(cells[colCategoryDescription]),
			})
			pos = len(categories) - 1
			index[key] = pos
		}

		categories[pos].MenuItems = append(categories[pos].MenuItems, model.MenuItem{
			Name:        itemName,
			Description: optional(cells[colItemDescription]),
			Price:       price,
			Image:       cells[colImage],
		})
	}

	if len(categories) == 0 {
		return nil, skipped, fmt.Errorf("no valid menu rows found")
	}
	return categories, skipped, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
