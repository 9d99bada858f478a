package repositories

import (
	"fmt"

	"diskon/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSaleRepository is a GORM implementation of SaleRepository.
type GORMSaleRepository struct {
	db *gorm.DB
}

// NewGORMSaleRepository creates a new instance of GORMSaleRepository.
func NewGORMSaleRepository(db *gorm.DB) *GORMSaleRepository {
	return &GORMSaleRepository{
		db: db,
	}
}

// GetAll retrieves all sales with their products and categories.
func (r *GORMSaleRepository) GetAll() ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.db.Preload("Products").Preload("Categories").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to get all sales: %w", err)
	}
	return sales, nil
}

// GetByID retrieves a single sale by its ID.
func (r *GORMSaleRepository) GetByID(id string) (*models.Sale, error) {
	var sale models.Sale
	if err := r.db.Preload("Products").Preload("Categories").First(&sale, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("sale with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get sale by ID %s: %w", id, err)
	}
	return &sale, nil
}

// Create creates a new sale, including its product/category links.
func (r *GORMSaleRepository) Create(sale *models.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	if err := r.db.Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

// Update updates an existing sale and replaces its product/category
// links with the ones set on the instance.
func (r *GORMSaleRepository) Update(sale *models.Sale) error {
	res := r.db.Omit("Products", "Categories").Save(sale)
	if res.Error != nil {
		return fmt.Errorf("failed to update sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sale with ID %s not found for update", sale.ID)
	}
	if err := r.db.Model(sale).Association("Products").Replace(sale.Products); err != nil {
		return fmt.Errorf("failed to update sale products: %w", err)
	}
	if err := r.db.Model(sale).Association("Categories").Replace(sale.Categories); err != nil {
		return fmt.Errorf("failed to update sale categories: %w", err)
	}
	return nil
}

// Delete deletes a sale by its ID.
func (r *GORMSaleRepository) Delete(id string) error {
	res := r.db.Delete(&models.Sale{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sale with ID %s not found for deletion", id)
	}
	return nil
}
