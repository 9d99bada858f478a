package models

import (
	"time"

	"gorm.io/gorm"
)

// Voucher types. The type selects which applicability fields are
// meaningful; the matching form variant nulls out the others on save.
const (
	VoucherTypeValue    = "value"
	VoucherTypeProduct  = "product"
	VoucherTypeCategory = "category"
	VoucherTypeShipping = "shipping"
)

// ApplyTo values for product and category vouchers. Shipping vouchers
// store a country code in the same column instead.
const (
	ApplyToOneProduct  = "one"
	ApplyToAllProducts = "all"
)

// Voucher represents a discount code with usage constraints and exactly
// one applicability mode.
type Voucher struct {
	ID                string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Type              string     `json:"type" gorm:"type:varchar(10)"`
	Name              string     `json:"name" gorm:"type:varchar(255)"`
	Code              string     `json:"code" gorm:"uniqueIndex;type:varchar(12)"`
	UsageLimit        *int       `json:"usage_limit"`
	Used              int        `json:"used"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	DiscountValueType string     `json:"discount_value_type" gorm:"type:varchar(10)"` // "fixed" or "percentage"
	DiscountValue     float64    `json:"discount_value"`

	// Variant fields. At most one of {ApplyTo, Limit, ProductID, CategoryID}
	// combinations is meaningfully set, depending on Type.
	ApplyTo    *string   `json:"apply_to" gorm:"type:varchar(10)"`
	Limit      *float64  `json:"limit"`
	ProductID  *string   `json:"product_id" gorm:"type:varchar(36)"`
	Product    *Product  `json:"product,omitempty"`
	CategoryID *string   `json:"category_id" gorm:"type:varchar(36)"`
	Category   *Category `json:"category,omitempty"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
