package repositories

import (
	"diskon/internal/models"
)

// ShippingRepository defines the interface for shipping method country
// data access.
type ShippingRepository interface {
	GetAll() ([]models.ShippingMethodCountry, error)
	DistinctCountryCodes() ([]string, error)
	Create(entry *models.ShippingMethodCountry) error
	Delete(id string) error
}
