package models

import "gorm.io/gorm"

// ShippingMethod is a way of delivering orders (e.g. a courier).
type ShippingMethod struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string `json:"name" gorm:"type:varchar(100)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ShippingMethodCountry is a per-country price entry of a shipping
// method. The set of distinct country codes across all entries defines
// which countries a shipping voucher can be limited to.
type ShippingMethodCountry struct {
	ID               string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ShippingMethodID string  `json:"shipping_method_id" gorm:"type:varchar(36)"`
	CountryCode      string  `json:"country_code" gorm:"type:varchar(2);index"`
	Price            float64 `json:"price"`
	gorm.Model               // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
