package models

import "gorm.io/gorm"

// Discount types shared by sales and vouchers.
const (
	DiscountTypeFixed      = "fixed"
	DiscountTypePercentage = "percentage"
)

// Sale represents a time-bounded discount applied to a set of
// products and/or categories.
type Sale struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string     `json:"name" gorm:"type:varchar(255)"`
	Type       string     `json:"type" gorm:"type:varchar(10)"` // "fixed" or "percentage"
	Value      float64    `json:"value"`
	Products   []Product  `json:"products" gorm:"many2many:sale_products"`
	Categories []Category `json:"categories" gorm:"many2many:sale_categories"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
