package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"velora_back_end/internal/config"
	"velora_back_end/internal/models"
)

// Connect opens the Postgres connection from the environment and runs the
// schema migration. The returned handle is the single persistence handle
// for the process; callers inject it where it is needed.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		config.Get("DB_HOST", "localhost"),
		config.Get("DB_USER", "postgres"),
		config.Get("DB_PASSWORD", "postgres"),
		config.Get("DB_NAME", "velora"),
		config.Get("DB_PORT", "5432"),
		config.Get("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("✅ Postgres connected")
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
