package forms

import (
	"diskon/internal/models"

	"github.com/go-playground/validator/v10"
)

// SaleForm binds the fields of the sale create/edit form.
type SaleForm struct {
	Name        string   `json:"name" validate:"required,min=3,max=255"`
	Type        string   `json:"type" validate:"required,oneof=fixed percentage"`
	Value       float64  `json:"value" validate:"required,gt=0"`
	ProductIDs  []string `json:"product_ids" validate:"required,min=1,dive,uuid"`
	CategoryIDs []string `json:"category_ids" validate:"omitempty,dive,uuid"`
}

// Validate checks field rules plus the percentage cap. A percentage
// sale above 100% would make the order total negative, so it is
// rejected with a field-scoped error on value.
func (f *SaleForm) Validate(v *validator.Validate) error {
	errs := FieldErrors{}
	if err := collectFieldErrors(v, f, errs); err != nil {
		return err
	}
	if f.Type == models.DiscountTypePercentage && f.Value > 100 {
		errs.Add("value", "Sale cannot exceed 100%")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply copies the validated form fields onto the sale instance. The
// caller resolves the submitted IDs to catalog rows beforehand.
func (f *SaleForm) Apply(sale *models.Sale, products []models.Product, categories []models.Category) {
	sale.Name = f.Name
	sale.Type = f.Type
	sale.Value = f.Value
	sale.Products = products
	sale.Categories = categories
}
