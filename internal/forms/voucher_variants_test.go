package forms_test

import (
	"testing"

	"diskon/internal/forms"
	"diskon/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// dirtyVoucher returns a voucher with every variant field set, so the
// tests can verify that applying a variant clears the others.
func dirtyVoucher(discountValueType string) *models.Voucher {
	applyTo := "US"
	limit := 50.0
	productID := uuid.New().String()
	categoryID := uuid.New().String()
	return &models.Voucher{
		DiscountValueType: discountValueType,
		ApplyTo:           &applyTo,
		Limit:             &limit,
		ProductID:         &productID,
		Product:           &models.Product{ID: productID},
		CategoryID:        &categoryID,
		Category:          &models.Category{ID: categoryID},
	}
}

var testCountries = []models.CountryChoice{
	{Code: "ID", Name: "Indonesia"},
	{Code: "SG", Name: "Singapore"},
}

func TestShippingVoucherFormApply_NullsProductAndCategory(t *testing.T) {
	limit := 100.0
	form := &forms.ShippingVoucherForm{ApplyTo: "ID", Limit: &limit, Countries: testCountries}

	voucher := dirtyVoucher(models.DiscountTypeFixed)
	form.Apply(voucher)

	assert.Nil(t, voucher.ProductID)
	assert.Nil(t, voucher.Product)
	assert.Nil(t, voucher.CategoryID)
	assert.Nil(t, voucher.Category)
	assert.NotNil(t, voucher.ApplyTo)
	assert.Equal(t, "ID", *voucher.ApplyTo)
	assert.Equal(t, &limit, voucher.Limit)
}

func TestShippingVoucherFormValidate_Country(t *testing.T) {
	validate := forms.NewValidator()

	form := &forms.ShippingVoucherForm{ApplyTo: "ID", Countries: testCountries}
	assert.NoError(t, form.Validate(validate))

	// A country the store does not ship to is rejected.
	form = &forms.ShippingVoucherForm{ApplyTo: "XX", Countries: testCountries}
	err := form.Validate(validate)
	assert.Error(t, err)
	fieldErrs := err.(forms.FieldErrors)
	assert.Contains(t, fieldErrs, "apply_to")

	// No country at all is allowed.
	form = &forms.ShippingVoucherForm{Countries: testCountries}
	assert.NoError(t, form.Validate(validate))

	// Negative minimum order value is rejected.
	negative := -1.0
	form = &forms.ShippingVoucherForm{Limit: &negative, Countries: testCountries}
	err = form.Validate(validate)
	assert.Error(t, err)
	fieldErrs = err.(forms.FieldErrors)
	assert.Contains(t, fieldErrs, "limit")
}

func TestValueVoucherFormApply_NullsEverythingButLimit(t *testing.T) {
	limit := 75.0
	form := &forms.ValueVoucherForm{Limit: &limit}

	voucher := dirtyVoucher(models.DiscountTypeFixed)
	form.Apply(voucher)

	assert.Nil(t, voucher.ApplyTo)
	assert.Nil(t, voucher.ProductID)
	assert.Nil(t, voucher.Product)
	assert.Nil(t, voucher.CategoryID)
	assert.Nil(t, voucher.Category)
	assert.Equal(t, &limit, voucher.Limit)
}

func TestProductVoucherFormApply(t *testing.T) {
	productID := uuid.New().String()
	form := &forms.ProductVoucherForm{ProductID: productID, ApplyTo: models.ApplyToOneProduct}

	voucher := dirtyVoucher(models.DiscountTypeFixed)
	form.Apply(voucher)

	assert.NotNil(t, voucher.ProductID)
	assert.Equal(t, productID, *voucher.ProductID)
	assert.Nil(t, voucher.CategoryID)
	assert.Nil(t, voucher.Category)
	assert.Nil(t, voucher.Limit)
	assert.NotNil(t, voucher.ApplyTo)
	assert.Equal(t, models.ApplyToOneProduct, *voucher.ApplyTo)
}

func TestCategoryVoucherFormApply(t *testing.T) {
	categoryID := uuid.New().String()
	form := &forms.CategoryVoucherForm{CategoryID: categoryID, ApplyTo: models.ApplyToAllProducts}

	voucher := dirtyVoucher(models.DiscountTypeFixed)
	form.Apply(voucher)

	assert.NotNil(t, voucher.CategoryID)
	assert.Equal(t, categoryID, *voucher.CategoryID)
	assert.Nil(t, voucher.ProductID)
	assert.Nil(t, voucher.Product)
	assert.Nil(t, voucher.Limit)
	assert.NotNil(t, voucher.ApplyTo)
	assert.Equal(t, models.ApplyToAllProducts, *voucher.ApplyTo)
}

func TestPercentageDiscountClearsApplyTo(t *testing.T) {
	// A percentage discount covers the whole order, so the apply-to
	// selector is cleared for product and category vouchers.
	productForm := &forms.ProductVoucherForm{ProductID: uuid.New().String(), ApplyTo: models.ApplyToOneProduct}
	voucher := dirtyVoucher(models.DiscountTypePercentage)
	productForm.Apply(voucher)
	assert.Nil(t, voucher.ApplyTo)

	categoryForm := &forms.CategoryVoucherForm{CategoryID: uuid.New().String(), ApplyTo: models.ApplyToAllProducts}
	voucher = dirtyVoucher(models.DiscountTypePercentage)
	categoryForm.Apply(voucher)
	assert.Nil(t, voucher.ApplyTo)
}

func TestVariantFor(t *testing.T) {
	form := validVoucherForm()

	form.Type = models.VoucherTypeShipping
	variant, err := forms.VariantFor(form, testCountries)
	assert.NoError(t, err)
	assert.IsType(t, &forms.ShippingVoucherForm{}, variant)

	form.Type = models.VoucherTypeValue
	variant, err = forms.VariantFor(form, nil)
	assert.NoError(t, err)
	assert.IsType(t, &forms.ValueVoucherForm{}, variant)

	form.Type = models.VoucherTypeProduct
	variant, err = forms.VariantFor(form, nil)
	assert.NoError(t, err)
	assert.IsType(t, &forms.ProductVoucherForm{}, variant)

	form.Type = models.VoucherTypeCategory
	variant, err = forms.VariantFor(form, nil)
	assert.NoError(t, err)
	assert.IsType(t, &forms.CategoryVoucherForm{}, variant)

	form.Type = "loyalty"
	_, err = forms.VariantFor(form, nil)
	assert.Error(t, err)
}

func TestProductVoucherFormValidate(t *testing.T) {
	validate := forms.NewValidator()

	form := &forms.ProductVoucherForm{ProductID: uuid.New().String(), ApplyTo: models.ApplyToAllProducts}
	assert.NoError(t, form.Validate(validate))

	// Product is required.
	form = &forms.ProductVoucherForm{}
	err := form.Validate(validate)
	assert.Error(t, err)
	fieldErrs := err.(forms.FieldErrors)
	assert.Contains(t, fieldErrs, "product_id")

	// apply_to must be one of the product scopes.
	form = &forms.ProductVoucherForm{ProductID: uuid.New().String(), ApplyTo: "US"}
	err = form.Validate(validate)
	assert.Error(t, err)
	fieldErrs = err.(forms.FieldErrors)
	assert.Contains(t, fieldErrs, "apply_to")
}

func TestCategoryVoucherFormValidate(t *testing.T) {
	validate := forms.NewValidator()

	form := &forms.CategoryVoucherForm{CategoryID: uuid.New().String()}
	assert.NoError(t, form.Validate(validate))

	form = &forms.CategoryVoucherForm{}
	err := form.Validate(validate)
	assert.Error(t, err)
	fieldErrs := err.(forms.FieldErrors)
	assert.Contains(t, fieldErrs, "category_id")
}
