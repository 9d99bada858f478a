package repositories

import (
	"fmt"
	"sort"
	"sync"

	"diskon/internal/models"

	"github.com/google/uuid"
)

// MockShippingRepository is an in-memory implementation of ShippingRepository.
type MockShippingRepository struct {
	entries map[string]models.ShippingMethodCountry
	mu      sync.RWMutex
}

// NewMockShippingRepository creates a new instance of MockShippingRepository.
func NewMockShippingRepository() *MockShippingRepository {
	return &MockShippingRepository{
		entries: make(map[string]models.ShippingMethodCountry),
	}
}

// GetAll returns all shipping method country entries.
func (r *MockShippingRepository) GetAll() ([]models.ShippingMethodCountry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entryList := make([]models.ShippingMethodCountry, 0, len(r.entries))
	for _, e := range r.entries {
		entryList = append(entryList, e)
	}
	return entryList, nil
}

// DistinctCountryCodes returns the distinct country codes, sorted.
func (r *MockShippingRepository) DistinctCountryCodes() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var codes []string
	for _, e := range r.entries {
		if !seen[e.CountryCode] {
			seen[e.CountryCode] = true
			codes = append(codes, e.CountryCode)
		}
	}
	sort.Strings(codes)
	return codes, nil
}

// Create adds a new shipping method country entry.
func (r *MockShippingRepository) Create(entry *models.ShippingMethodCountry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	r.entries[entry.ID] = *entry
	return nil
}

// Delete removes a shipping method country entry by its ID.
func (r *MockShippingRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("shipping method country with ID %s not found for deletion", id)
	}
	delete(r.entries, id)
	return nil
}
