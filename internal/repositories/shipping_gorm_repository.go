package repositories

import (
	"fmt"

	"diskon/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMShippingRepository is a GORM implementation of ShippingRepository.
type GORMShippingRepository struct {
	db *gorm.DB
}

// NewGORMShippingRepository creates a new instance of GORMShippingRepository.
func NewGORMShippingRepository(db *gorm.DB) *GORMShippingRepository {
	return &GORMShippingRepository{
		db: db,
	}
}

// GetAll retrieves all shipping method country entries.
func (r *GORMShippingRepository) GetAll() ([]models.ShippingMethodCountry, error) {
	var entries []models.ShippingMethodCountry
	if err := r.db.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get all shipping method countries: %w", err)
	}
	return entries, nil
}

// DistinctCountryCodes retrieves the distinct country codes used by
// shipping method entries, sorted for stable dropdown ordering.
func (r *GORMShippingRepository) DistinctCountryCodes() ([]string, error) {
	var codes []string
	err := r.db.Model(&models.ShippingMethodCountry{}).
		Distinct("country_code").
		Order("country_code").
		Pluck("country_code", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct country codes: %w", err)
	}
	return codes, nil
}

// Create creates a new shipping method country entry.
func (r *GORMShippingRepository) Create(entry *models.ShippingMethodCountry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create shipping method country: %w", err)
	}
	return nil
}

// Delete deletes a shipping method country entry by its ID.
func (r *GORMShippingRepository) Delete(id string) error {
	res := r.db.Delete(&models.ShippingMethodCountry{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete shipping method country: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("shipping method country with ID %s not found for deletion", id)
	}
	return nil
}
