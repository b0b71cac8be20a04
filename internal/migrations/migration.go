package migrations

import (
	"log"

	"gorm.io/gorm"

	"restaurant_pos/internal/models"
)

// RunMigrations migrates the schema and seeds the demo catalog when the
// store is empty. Safe to run on every start.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Category{},
		&models.RawMaterial{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Order{},
		&models.OrderItem{},
		&models.UserProfile{},
	)
	if err != nil {
		return err
	}

	if err := SeedCatalog(db); err != nil {
		log.Printf("Warning: Failed to seed catalog: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// SeedCatalog creates a starter menu and raw-material list. A non-empty
// categories table means the catalog is managed elsewhere and the seed is
// skipped.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog already seeded")
		return nil
	}

	log.Println("Seeding demo catalog...")

	food := models.Category{Name: "Makanan", Description: strPtr("Main dishes"), IsActive: true}
	drinks := models.Category{Name: "Minuman", Description: strPtr("Drinks"), IsActive: true}
	if err := db.Create(&food).Error; err != nil {
		return err
	}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}

	nasiGoreng := models.Product{
		CategoryID:     &food.ID,
		Name:           "Nasi Goreng",
		BasePrice:      15000,
		CalculatedCOGS: 6000,
		IsActive:       true,
	}
	ayamBakar := models.Product{
		CategoryID:     &food.ID,
		Name:           "Ayam Bakar",
		BasePrice:      22000,
		CalculatedCOGS: 11000,
		IsActive:       true,
	}
	esTeh := models.Product{
		CategoryID:     &drinks.ID,
		Name:           "Es Teh",
		BasePrice:      5000,
		CalculatedCOGS: 1200,
		IsActive:       true,
	}
	for _, p := range []*models.Product{&nasiGoreng, &ayamBakar, &esTeh} {
		if err := db.Create(p).Error; err != nil {
			return err
		}
	}

	variants := []models.ProductVariant{
		{ProductID: ayamBakar.ID, Name: "Paha", Price: 22000, IsActive: true},
		{ProductID: ayamBakar.ID, Name: "Dada", Price: 24000, IsActive: true},
		{ProductID: esTeh.ID, Name: "Kecil", Price: 5000, IsActive: true},
		{ProductID: esTeh.ID, Name: "Besar", Price: 7000, IsActive: true},
	}
	if err := db.Create(&variants).Error; err != nil {
		return err
	}

	materials := []models.RawMaterial{
		{Name: "Beras", BaseUnit: "gram", PurchaseUnit: "kg", ConversionFactor: 1000, CurrentStock: 25000, CostPerBaseUnit: 12, MinimumStock: 5000, IsActive: true},
		{Name: "Ayam", BaseUnit: "gram", PurchaseUnit: "kg", ConversionFactor: 1000, CurrentStock: 8000, CostPerBaseUnit: 38, MinimumStock: 3000, IsActive: true},
		{Name: "Minyak Goreng", BaseUnit: "ml", PurchaseUnit: "liter", ConversionFactor: 1000, CurrentStock: 2000, CostPerBaseUnit: 16, MinimumStock: 2500, IsActive: true},
		{Name: "Teh", BaseUnit: "gram", PurchaseUnit: "pack", ConversionFactor: 250, CurrentStock: 900, CostPerBaseUnit: 60, MinimumStock: 250, IsActive: true},
	}
	if err := db.Create(&materials).Error; err != nil {
		return err
	}

	log.Println("Demo catalog seeded successfully!")
	return nil
}

func strPtr(s string) *string {
	return &s
}
