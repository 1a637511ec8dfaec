package main

import (
	"fmt"
	"log"
	"os"

	"github.com/elegance/restaurant-backend/config"
	"github.com/elegance/restaurant-backend/internal/app/repository"
	"github.com/elegance/restaurant-backend/internal/db"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <menu.xlsx>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.Database.UseEphemeral() {
		log.Fatal("DATABASE_URL must be set to import a menu")
	}

	database, err := db.Open(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(database)

	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	menuRepo := repository.NewMenuRepository(database)

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	categories, skipped, err := readMenuFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	items := 0
	for _, category := range categories {
		items += len(category.MenuItems)
	}
	fmt.Printf("Categories to import: %d, items: %d, skipped rows: %d\n", len(categories), items, skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	for i := range categories {
		if err := menuRepo.CreateCategory(&categories[i]); err != nil {
			log.Fatalf("Failed to create category %q: %v", categories[i].Name, err)
		}
	}

	fmt.Println("Import completed successfully!")
}
