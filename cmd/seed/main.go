// Command seed populates the catalog database with a default set of
// categories and products. Seeding is idempotent: existing rows are left
// untouched.
package main

import (
	"os"

	"catalog_service/config"
	"catalog_service/pkg/db"

	"github.com/sirupsen/logrus"
)

type seedProduct struct {
	id           string
	name         string
	price        int64
	categoryName string
}

var defaultCategories = []string{
	"Electronics",
	"Books",
	"Furniture",
	"Clothing",
	"Groceries",
}

var defaultProducts = []seedProduct{
	{"3fa85f64-5717-4562-b3fc-2c963f66afa6", "Smartphone", 699, "Electronics"},
	{"7b7f4b21-8c7a-4d8a-8c7c-2b7c8b7a8c7a", "Laptop computer", 1299, "Electronics"},
	{"9b8a7c6d-5e4f-4a2b-9c0d-9e8f7a6b5c4d", "Office chair", 149, "Furniture"},
	{"2f1e0d9c-8b7a-4c5d-8e3f-2a1b0c9d8e7f", "Cotton t-shirt", 25, "Clothing"},
	{"0a1b2c3d-4e5f-4789-abcd-ef0123456789", "Paperback novel", 19, "Books"},
	{"123e4567-e89b-42d3-a456-426614174000", "Apples (1 kg)", 4, "Groceries"},
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DatabasePath, cfg.BusyTimeoutMS)
	if err != nil {
		logger.Fatalf("Failed to open database at %s: %v", cfg.DatabasePath, err)
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		logger.Fatalf("Failed to begin seed transaction: %v", err)
	}
	defer tx.Rollback()

	for _, name := range defaultCategories {
		if _, err := tx.Exec(
			`INSERT INTO categories (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name,
		); err != nil {
			logger.Fatalf("Failed to seed category '%s': %v", name, err)
		}
	}

	for _, p := range defaultProducts {
		if _, err := tx.Exec(
			`INSERT INTO products (id, name, price, category_name)
			 VALUES (?, ?, ?, ?) ON CONFLICT(id) DO NOTHING`,
			p.id, p.name, p.price, p.categoryName,
		); err != nil {
			logger.Fatalf("Failed to seed product '%s': %v", p.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Fatalf("Failed to commit seed transaction: %v", err)
	}

	logger.Infof("Seeded %d categories and %d products into %s",
		len(defaultCategories), len(defaultProducts), cfg.DatabasePath)
}
