package forms

import (
	"fmt"
	"strings"
	"time"

	"diskon/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CodeLength is the length of generated voucher codes.
const CodeLength = 12

// VoucherForm binds the fields shared by every voucher variant. The
// variant-specific fields (apply_to, limit, product_id, category_id)
// are carried too, but which of them are honored depends on Type; the
// matching variant form applies them and nulls out the rest.
type VoucherForm struct {
	Type              string     `json:"type" validate:"required,oneof=value product category shipping"`
	Name              string     `json:"name" validate:"omitempty,max=255"`
	Code              string     `json:"code" validate:"omitempty,len=12,alphanum"`
	UsageLimit        *int       `json:"usage_limit" validate:"omitempty,gte=1"`
	StartDate         time.Time  `json:"start_date" validate:"required"`
	EndDate           *time.Time `json:"end_date"`
	DiscountValueType string     `json:"discount_value_type" validate:"required,oneof=fixed percentage"`
	DiscountValue     float64    `json:"discount_value" validate:"required,gt=0"`

	ApplyTo    string   `json:"apply_to"`
	Limit      *float64 `json:"limit" validate:"omitempty,gte=0"`
	ProductID  string   `json:"product_id" validate:"omitempty,uuid"`
	CategoryID string   `json:"category_id" validate:"omitempty,uuid"`
}

// Validate checks the common voucher fields. Variant fields are checked
// by the variant form built from this one.
func (f *VoucherForm) Validate(v *validator.Validate) error {
	errs := FieldErrors{}
	if err := collectFieldErrors(v, f, errs); err != nil {
		return err
	}
	if f.Code != "" && f.Code != strings.ToUpper(f.Code) {
		errs.Add("code", "Voucher code must be uppercase")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EnsureCode fills in a generated code when none was supplied. A code
// the user typed in is kept untouched.
func (f *VoucherForm) EnsureCode(exists func(code string) (bool, error)) error {
	if f.Code != "" {
		return nil
	}
	code, err := GenerateCode(exists)
	if err != nil {
		return err
	}
	f.Code = code
	return nil
}

// Apply copies the common form fields onto the voucher instance.
func (f *VoucherForm) Apply(voucher *models.Voucher) {
	voucher.Type = f.Type
	voucher.Name = f.Name
	voucher.Code = f.Code
	voucher.UsageLimit = f.UsageLimit
	voucher.StartDate = f.StartDate
	voucher.EndDate = f.EndDate
	voucher.DiscountValueType = f.DiscountValueType
	voucher.DiscountValue = f.DiscountValue
}

// GenerateCode returns a fresh 12-character uppercase alphanumeric
// voucher code, retrying while the candidate collides with a stored
// code. Collisions are vanishingly rare given the code space, so the
// loop terminates after one check in practice.
func GenerateCode(exists func(code string) (bool, error)) (string, error) {
	for {
		code := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:CodeLength]
		taken, err := exists(code)
		if err != nil {
			return "", fmt.Errorf("failed to check voucher code uniqueness: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
}
