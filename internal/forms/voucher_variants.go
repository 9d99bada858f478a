package forms

import (
	"fmt"

	"diskon/internal/models"

	"github.com/go-playground/validator/v10"
)

// VariantForm validates the variant-specific fields of a voucher form
// and applies them to the voucher instance, nulling out the fields
// belonging to the other variants. The voucher schema has no check
// constraint for this, so the forms enforce the one-mode invariant at
// save time.
type VariantForm interface {
	Validate(v *validator.Validate) error
	Apply(voucher *models.Voucher)
}

// VariantFor builds the variant form matching the voucher type. The
// country choices are needed by the shipping variant to validate its
// apply_to field.
func VariantFor(f *VoucherForm, countries []models.CountryChoice) (VariantForm, error) {
	switch f.Type {
	case models.VoucherTypeShipping:
		return &ShippingVoucherForm{ApplyTo: f.ApplyTo, Limit: f.Limit, Countries: countries}, nil
	case models.VoucherTypeValue:
		return &ValueVoucherForm{Limit: f.Limit}, nil
	case models.VoucherTypeProduct:
		return &ProductVoucherForm{ProductID: f.ProductID, ApplyTo: f.ApplyTo}, nil
	case models.VoucherTypeCategory:
		return &CategoryVoucherForm{CategoryID: f.CategoryID, ApplyTo: f.ApplyTo}, nil
	}
	return nil, fmt.Errorf("unknown voucher type: %s", f.Type)
}

// ShippingVoucherForm limits a voucher to orders shipped to a country,
// optionally above a minimum order value.
type ShippingVoucherForm struct {
	ApplyTo   string   `json:"apply_to"`
	Limit     *float64 `json:"limit" validate:"omitempty,gte=0"`
	Countries []models.CountryChoice
}

func (f *ShippingVoucherForm) Validate(v *validator.Validate) error {
	errs := FieldErrors{}
	if err := collectFieldErrors(v, f, errs); err != nil {
		return err
	}
	if f.ApplyTo != "" && !hasCountry(f.Countries, f.ApplyTo) {
		errs.Add("apply_to", fmt.Sprintf("'%s' is not a country the store ships to", f.ApplyTo))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f *ShippingVoucherForm) Apply(voucher *models.Voucher) {
	if f.ApplyTo != "" {
		applyTo := f.ApplyTo
		voucher.ApplyTo = &applyTo
	} else {
		voucher.ApplyTo = nil
	}
	voucher.Limit = f.Limit
	voucher.ProductID = nil
	voucher.Product = nil
	voucher.CategoryID = nil
	voucher.Category = nil
}

// ValueVoucherForm limits a voucher to purchases above a minimum value.
type ValueVoucherForm struct {
	Limit *float64 `json:"limit" validate:"omitempty,gte=0"`
}

func (f *ValueVoucherForm) Validate(v *validator.Validate) error {
	errs := FieldErrors{}
	if err := collectFieldErrors(v, f, errs); err != nil {
		return err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f *ValueVoucherForm) Apply(voucher *models.Voucher) {
	voucher.Limit = f.Limit
	voucher.ApplyTo = nil
	voucher.ProductID = nil
	voucher.Product = nil
	voucher.CategoryID = nil
	voucher.Category = nil
}

// ProductVoucherForm targets a voucher at a single product.
type ProductVoucherForm struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	ApplyTo   string `json:"apply_to" validate:"omitempty,oneof=one all"`
}

func (f *ProductVoucherForm) Validate(v *validator.Validate) error {
	errs := FieldErrors{}
	if err := collectFieldErrors(v, f, errs); err != nil {
		return err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f *ProductVoucherForm) Apply(voucher *models.Voucher) {
	productID := f.ProductID
	voucher.ProductID = &productID
	voucher.Product = nil
	voucher.CategoryID = nil
	voucher.Category = nil
	applyCommon(voucher, f.ApplyTo)
}

// CategoryVoucherForm targets a voucher at a product category.
type CategoryVoucherForm struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	ApplyTo    string `json:"apply_to" validate:"omitempty,oneof=one all"`
}

func (f *CategoryVoucherForm) Validate(v *validator.Validate) error {
	errs := FieldErrors{}
	if err := collectFieldErrors(v, f, errs); err != nil {
		return err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f *CategoryVoucherForm) Apply(voucher *models.Voucher) {
	categoryID := f.CategoryID
	voucher.CategoryID = &categoryID
	voucher.Category = nil
	voucher.ProductID = nil
	voucher.Product = nil
	applyCommon(voucher, f.ApplyTo)
}

// applyCommon handles the fields shared by product and category
// vouchers: the minimum order limit never applies to them, and a
// percentage discount always covers the whole order value, so the
// one-product/all-products selector is meaningless for it and is
// cleared.
func applyCommon(voucher *models.Voucher, applyTo string) {
	voucher.Limit = nil
	if applyTo != "" {
		value := applyTo
		voucher.ApplyTo = &value
	} else {
		voucher.ApplyTo = nil
	}
	if voucher.DiscountValueType == models.DiscountTypePercentage {
		voucher.ApplyTo = nil
	}
}

func hasCountry(countries []models.CountryChoice, code string) bool {
	for _, c := range countries {
		if c.Code == code {
			return true
		}
	}
	return false
}
