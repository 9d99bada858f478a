package forms

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors collects user-facing validation messages keyed by form
// field. It satisfies the error interface so services can return it
// directly and handlers can render it as a 400 response.
type FieldErrors map[string]string

// Add attaches a message to a field. An existing message is kept so the
// first error reported for a field wins.
func (e FieldErrors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Error summarizes the failing fields.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", "))
}

// NewValidator returns a validator that reports JSON field names, so
// error keys match what the dashboard client submitted.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// collectFieldErrors runs struct-tag validation and folds the result
// into the given FieldErrors map.
func collectFieldErrors(v *validator.Validate, form interface{}, errs FieldErrors) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate form: %w", err)
	}
	for _, e := range validationErrors {
		errs.Add(e.Field(), fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
	}
	return nil
}
