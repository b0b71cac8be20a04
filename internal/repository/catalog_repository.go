package repository

import (
	"restaurant_pos/internal/models"

	"gorm.io/gorm"
)

type CatalogRepository interface {
	GetActiveCategories() ([]models.Category, error)
	GetActiveProducts() ([]models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	GetVariantsByProduct(productID uint) ([]models.ProductVariant, error)
	GetVariantByID(id uint) (*models.ProductVariant, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetActiveCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_active = ?", true).Order("name").Find(&categories).Error
	return categories, err
}

func (r *catalogRepository) GetActiveProducts() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Model(&models.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = ?", true).
		Order("categories.name, products.name").
		Find(&products).Error
	return products, err
}

func (r *catalogRepository) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) GetVariantsByProduct(productID uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Where("product_id = ? AND is_active = ?", productID, true).
		Order("price").
		Find(&variants).Error
	return variants, err
}

func (r *catalogRepository) GetVariantByID(id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.First(&variant, id).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}
