package repositories

import (
	"diskon/internal/models"
)

// SaleRepository defines the interface for sale data access.
type SaleRepository interface {
	GetAll() ([]models.Sale, error)
	GetByID(id string) (*models.Sale, error)
	Create(sale *models.Sale) error
	Update(sale *models.Sale) error
	Delete(id string) error
}
