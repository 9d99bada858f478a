package repositories

import (
	"fmt"
	"sync"

	"diskon/internal/models"

	"github.com/google/uuid"
)

// MockSaleRepository is an in-memory implementation of SaleRepository.
type MockSaleRepository struct {
	sales map[string]models.Sale
	mu    sync.RWMutex
}

// NewMockSaleRepository creates a new instance of MockSaleRepository.
func NewMockSaleRepository() *MockSaleRepository {
	return &MockSaleRepository{
		sales: make(map[string]models.Sale),
	}
}

// GetAll returns all sales.
func (r *MockSaleRepository) GetAll() ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	saleList := make([]models.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		saleList = append(saleList, s)
	}
	return saleList, nil
}

// GetByID returns a sale by its ID.
func (r *MockSaleRepository) GetByID(id string) (*models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sale, ok := r.sales[id]
	if !ok {
		return nil, fmt.Errorf("sale with ID %s not found", id)
	}
	return &sale, nil
}

// Create adds a new sale.
func (r *MockSaleRepository) Create(sale *models.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	r.sales[sale.ID] = *sale
	return nil
}

// Update modifies an existing sale.
func (r *MockSaleRepository) Update(sale *models.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sales[sale.ID]
	if !ok {
		return fmt.Errorf("sale with ID %s not found for update", sale.ID)
	}
	r.sales[sale.ID] = *sale
	return nil
}

// Delete removes a sale by its ID.
func (r *MockSaleRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sales[id]
	if !ok {
		return fmt.Errorf("sale with ID %s not found for deletion", id)
	}
	delete(r.sales, id)
	return nil
}
