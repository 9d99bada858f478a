package repositories

import (
	"fmt"
	"sync"

	"diskon/internal/models"

	"github.com/google/uuid"
)

// MockVoucherRepository is an in-memory implementation of VoucherRepository.
type MockVoucherRepository struct {
	vouchers map[string]models.Voucher
	mu       sync.RWMutex
}

// NewMockVoucherRepository creates a new instance of MockVoucherRepository.
func NewMockVoucherRepository() *MockVoucherRepository {
	return &MockVoucherRepository{
		vouchers: make(map[string]models.Voucher),
	}
}

// GetAll returns all vouchers.
func (r *MockVoucherRepository) GetAll() ([]models.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	voucherList := make([]models.Voucher, 0, len(r.vouchers))
	for _, v := range r.vouchers {
		voucherList = append(voucherList, v)
	}
	return voucherList, nil
}

// GetByID returns a voucher by its ID.
func (r *MockVoucherRepository) GetByID(id string) (*models.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	voucher, ok := r.vouchers[id]
	if !ok {
		return nil, fmt.Errorf("voucher with ID %s not found", id)
	}
	return &voucher, nil
}

// GetByCode returns a voucher by its code.
func (r *MockVoucherRepository) GetByCode(code string) (*models.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.vouchers {
		if v.Code == code {
			voucher := v
			return &voucher, nil
		}
	}
	return nil, fmt.Errorf("voucher with code %s not found", code)
}

// CodeExists reports whether a voucher with the given code is stored.
func (r *MockVoucherRepository) CodeExists(code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.vouchers {
		if v.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// Create adds a new voucher.
func (r *MockVoucherRepository) Create(voucher *models.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if voucher.ID == "" {
		voucher.ID = uuid.New().String()
	}
	for _, v := range r.vouchers {
		if v.Code == voucher.Code {
			return fmt.Errorf("voucher code %s already exists", voucher.Code)
		}
	}
	r.vouchers[voucher.ID] = *voucher
	return nil
}

// Update modifies an existing voucher.
func (r *MockVoucherRepository) Update(voucher *models.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.vouchers[voucher.ID]
	if !ok {
		return fmt.Errorf("voucher with ID %s not found for update", voucher.ID)
	}
	r.vouchers[voucher.ID] = *voucher
	return nil
}

// Delete removes a voucher by its ID.
func (r *MockVoucherRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.vouchers[id]
	if !ok {
		return fmt.Errorf("voucher with ID %s not found for deletion", id)
	}
	delete(r.vouchers, id)
	return nil
}
