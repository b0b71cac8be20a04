package repository

import (
	"restaurant_pos/internal/models"

	"gorm.io/gorm"
)

type RawMaterialRepository interface {
	Create(material *models.RawMaterial) error
	GetByID(id uint) (*models.RawMaterial, error)
	GetAll() ([]models.RawMaterial, error)
	GetLowStock(limit int) ([]models.LowStockMaterial, error)
	Update(material *models.RawMaterial) error
}

type rawMaterialRepository struct {
	db *gorm.DB
}

func NewRawMaterialRepository(db *gorm.DB) RawMaterialRepository {
	return &rawMaterialRepository{db: db}
}

func (r *rawMaterialRepository) Create(material *models.RawMaterial) error {
	return r.db.Create(material).Error
}

func (r *rawMaterialRepository) GetByID(id uint) (*models.RawMaterial, error) {
	var material models.RawMaterial
	err := r.db.First(&material, id).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *rawMaterialRepository) GetAll() ([]models.RawMaterial, error) {
	var materials []models.RawMaterial
	err := r.db.Where("is_active = ?", true).Order("name").Find(&materials).Error
	return materials, err
}

// GetLowStock returns active materials at or below their minimum stock,
// most depleted first.
func (r *rawMaterialRepository) GetLowStock(limit int) ([]models.LowStockMaterial, error) {
	var materials []models.LowStockMaterial
	err := r.db.Model(&models.RawMaterial{}).
		Select("name, current_stock, minimum_stock, base_unit").
		Where("current_stock <= minimum_stock AND is_active = ?", true).
		Order("(current_stock / NULLIF(minimum_stock, 0)) ASC").
		Limit(limit).
		Scan(&materials).Error
	return materials, err
}

func (r *rawMaterialRepository) Update(material *models.RawMaterial) error {
	return r.db.Save(material).Error
}
