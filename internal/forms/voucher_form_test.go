package forms_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"diskon/internal/forms"
	"diskon/internal/models"

	"github.com/stretchr/testify/assert"
)

var codePattern = regexp.MustCompile(`^[0-9A-Z]{12}$`)

func validVoucherForm() *forms.VoucherForm {
	return &forms.VoucherForm{
		Type:              models.VoucherTypeValue,
		Name:              "Welcome voucher",
		StartDate:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		DiscountValueType: models.DiscountTypeFixed,
		DiscountValue:     15,
	}
}

func noCodes(string) (bool, error) { return false, nil }

func TestGenerateCode_Format(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := forms.GenerateCode(noCodes)
		assert.NoError(t, err)
		assert.Len(t, code, forms.CodeLength)
		assert.Regexp(t, codePattern, code)
	}
}

func TestGenerateCode_RetriesOnCollision(t *testing.T) {
	var seen []string
	// The first two candidates are reported taken, forcing retries.
	exists := func(code string) (bool, error) {
		seen = append(seen, code)
		return len(seen) <= 2, nil
	}

	code, err := forms.GenerateCode(exists)
	assert.NoError(t, err)
	assert.Len(t, seen, 3)
	assert.Equal(t, seen[2], code)
	assert.NotContains(t, seen[:2], code)
}

func TestGenerateCode_LookupError(t *testing.T) {
	exists := func(string) (bool, error) {
		return false, fmt.Errorf("database gone")
	}
	_, err := forms.GenerateCode(exists)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database gone")
}

func TestVoucherFormEnsureCode_GeneratesWhenEmpty(t *testing.T) {
	form := validVoucherForm()
	assert.NoError(t, form.EnsureCode(noCodes))
	assert.Regexp(t, codePattern, form.Code)
}

func TestVoucherFormEnsureCode_KeepsSuppliedCode(t *testing.T) {
	form := validVoucherForm()
	form.Code = "WELCOME2026X"

	called := false
	exists := func(string) (bool, error) {
		called = true
		return false, nil
	}
	assert.NoError(t, form.EnsureCode(exists))
	assert.Equal(t, "WELCOME2026X", form.Code)
	assert.False(t, called)
}

func TestVoucherFormValidate(t *testing.T) {
	validate := forms.NewValidator()

	form := validVoucherForm()
	assert.NoError(t, form.Validate(validate))

	// Missing discount value.
	form = validVoucherForm()
	form.DiscountValue = 0
	err := form.Validate(validate)
	assert.Error(t, err)
	fieldErrs := err.(forms.FieldErrors)
	assert.Contains(t, fieldErrs, "discount_value")

	// Code of the wrong length.
	form = validVoucherForm()
	form.Code = "SHORT"
	err = form.Validate(validate)
	assert.Error(t, err)
	fieldErrs = err.(forms.FieldErrors)
	assert.Contains(t, fieldErrs, "code")

	// Lowercase code.
	form = validVoucherForm()
	form.Code = "welcome2026x"
	err = form.Validate(validate)
	assert.Error(t, err)
	fieldErrs = err.(forms.FieldErrors)
	assert.Equal(t, "Voucher code must be uppercase", fieldErrs["code"])

	// Unknown voucher type.
	form = validVoucherForm()
	form.Type = "loyalty"
	err = form.Validate(validate)
	assert.Error(t, err)
	fieldErrs = err.(forms.FieldErrors)
	assert.Contains(t, fieldErrs, "type")
}

func TestVoucherFormApply(t *testing.T) {
	endDate := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	usageLimit := 100

	form := validVoucherForm()
	form.Code = "WELCOME2026X"
	form.UsageLimit = &usageLimit
	form.EndDate = &endDate

	voucher := &models.Voucher{Used: 7}
	form.Apply(voucher)

	assert.Equal(t, models.VoucherTypeValue, voucher.Type)
	assert.Equal(t, "Welcome voucher", voucher.Name)
	assert.Equal(t, "WELCOME2026X", voucher.Code)
	assert.Equal(t, &usageLimit, voucher.UsageLimit)
	assert.Equal(t, &endDate, voucher.EndDate)
	assert.Equal(t, models.DiscountTypeFixed, voucher.DiscountValueType)
	assert.Equal(t, 15.0, voucher.DiscountValue)
	// The usage counter is not a form field and stays untouched.
	assert.Equal(t, 7, voucher.Used)
}
