package forms_test

import (
	"testing"

	"diskon/internal/forms"
	"diskon/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validSaleForm() *forms.SaleForm {
	return &forms.SaleForm{
		Name:       "Summer sale",
		Type:       models.DiscountTypePercentage,
		Value:      25,
		ProductIDs: []string{uuid.New().String()},
	}
}

func TestSaleFormValidate_PercentageCap(t *testing.T) {
	validate := forms.NewValidator()

	// Percentage above 100 fails with a field error on value.
	form := validSaleForm()
	form.Value = 110
	err := form.Validate(validate)
	assert.Error(t, err)
	fieldErrs, ok := err.(forms.FieldErrors)
	assert.True(t, ok)
	assert.Equal(t, "Sale cannot exceed 100%", fieldErrs["value"])

	// Exactly 100 passes.
	form = validSaleForm()
	form.Value = 100
	assert.NoError(t, form.Validate(validate))

	// Below 100 passes.
	form = validSaleForm()
	form.Value = 99.5
	assert.NoError(t, form.Validate(validate))
}

func TestSaleFormValidate_FixedValueNotCapped(t *testing.T) {
	validate := forms.NewValidator()

	form := validSaleForm()
	form.Type = models.DiscountTypeFixed
	form.Value = 500
	assert.NoError(t, form.Validate(validate))
}

func TestSaleFormValidate_FieldRules(t *testing.T) {
	validate := forms.NewValidator()

	// Missing name and products.
	form := &forms.SaleForm{
		Type:  models.DiscountTypeFixed,
		Value: 10,
	}
	err := form.Validate(validate)
	assert.Error(t, err)
	fieldErrs, ok := err.(forms.FieldErrors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "product_ids")

	// Unknown discount type.
	form = validSaleForm()
	form.Type = "loyalty"
	err = form.Validate(validate)
	assert.Error(t, err)
	fieldErrs = err.(forms.FieldErrors)
	assert.Contains(t, fieldErrs, "type")
}

func TestSaleFormApply(t *testing.T) {
	form := validSaleForm()
	form.Value = 30

	products := []models.Product{{ID: "p1", Name: "Laptop"}}
	categories := []models.Category{{ID: "c1", Name: "Electronics"}}
	sale := &models.Sale{}
	form.Apply(sale, products, categories)

	assert.Equal(t, "Summer sale", sale.Name)
	assert.Equal(t, models.DiscountTypePercentage, sale.Type)
	assert.Equal(t, 30.0, sale.Value)
	assert.Equal(t, products, sale.Products)
	assert.Equal(t, categories, sale.Categories)
}
