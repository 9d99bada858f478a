package repositories

import (
	"diskon/internal/models"
)

// VoucherRepository defines the interface for voucher data access.
type VoucherRepository interface {
	GetAll() ([]models.Voucher, error)
	GetByID(id string) (*models.Voucher, error)
	GetByCode(code string) (*models.Voucher, error)
	CodeExists(code string) (bool, error)
	Create(voucher *models.Voucher) error
	Update(voucher *models.Voucher) error
	Delete(id string) error
}
