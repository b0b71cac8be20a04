package main

import (
	"fmt"
	"log"

	"restaurant_pos/internal/config"
	"restaurant_pos/internal/database"
	"restaurant_pos/internal/migrations"
	"restaurant_pos/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Category{},
		&models.RawMaterial{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Order{},
		&models.OrderItem{},
		&models.UserProfile{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables and seed the demo catalog
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Database initialization completed successfully!")
	fmt.Println("Profiles are created on first authenticated request with the")
	fmt.Println("cashier role; promote an owner directly in user_profiles.")
}
