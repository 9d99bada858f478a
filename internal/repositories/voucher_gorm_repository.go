package repositories

import (
	"fmt"

	"diskon/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMVoucherRepository is a GORM implementation of VoucherRepository.
type GORMVoucherRepository struct {
	db *gorm.DB
}

// NewGORMVoucherRepository creates a new instance of GORMVoucherRepository.
func NewGORMVoucherRepository(db *gorm.DB) *GORMVoucherRepository {
	return &GORMVoucherRepository{
		db: db,
	}
}

// GetAll retrieves all vouchers with their product/category targets.
func (r *GORMVoucherRepository) GetAll() ([]models.Voucher, error) {
	var vouchers []models.Voucher
	if err := r.db.Preload("Product").Preload("Category").Find(&vouchers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all vouchers: %w", err)
	}
	return vouchers, nil
}

// GetByID retrieves a single voucher by its ID.
func (r *GORMVoucherRepository) GetByID(id string) (*models.Voucher, error) {
	var voucher models.Voucher
	if err := r.db.Preload("Product").Preload("Category").First(&voucher, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("voucher with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get voucher by ID %s: %w", id, err)
	}
	return &voucher, nil
}

// GetByCode retrieves a single voucher by its code.
func (r *GORMVoucherRepository) GetByCode(code string) (*models.Voucher, error) {
	var voucher models.Voucher
	if err := r.db.Preload("Product").Preload("Category").First(&voucher, "code = ?", code).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("voucher with code %s not found", code)
		}
		return nil, fmt.Errorf("failed to get voucher by code %s: %w", code, err)
	}
	return &voucher, nil
}

// CodeExists reports whether a voucher with the given code is stored.
func (r *GORMVoucherRepository) CodeExists(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Voucher{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check voucher code %s: %w", code, err)
	}
	return count > 0, nil
}

// Create creates a new voucher in the database.
func (r *GORMVoucherRepository) Create(voucher *models.Voucher) error {
	if voucher.ID == "" {
		voucher.ID = uuid.New().String()
	}
	if err := r.db.Create(voucher).Error; err != nil {
		return fmt.Errorf("failed to create voucher: %w", err)
	}
	return nil
}

// Update updates an existing voucher in the database.
func (r *GORMVoucherRepository) Update(voucher *models.Voucher) error {
	res := r.db.Omit("Product", "Category").Save(voucher)
	if res.Error != nil {
		return fmt.Errorf("failed to update voucher: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("voucher with ID %s not found for update", voucher.ID)
	}
	return nil
}

// Delete deletes a voucher by its ID.
func (r *GORMVoucherRepository) Delete(id string) error {
	res := r.db.Delete(&models.Voucher{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete voucher: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("voucher with ID %s not found for deletion", id)
	}
	return nil
}
