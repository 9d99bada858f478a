package forms_test

import (
	"fmt"
	"testing"

	"diskon/internal/forms"
	"diskon/internal/models"

	"github.com/stretchr/testify/assert"
)

// stubCountryLister returns a fixed set of country codes.
type stubCountryLister struct {
	codes []string
	err   error
}

func (s *stubCountryLister) DistinctCountryCodes() ([]string, error) {
	return s.codes, s.err
}

func TestCountryChoices(t *testing.T) {
	lister := &stubCountryLister{codes: []string{"ID", "SG", "US"}}

	choices, err := forms.CountryChoices(lister)
	assert.NoError(t, err)
	assert.Equal(t, []models.CountryChoice{
		{Code: "ID", Name: "Indonesia"},
		{Code: "SG", Name: "Singapore"},
		{Code: "US", Name: "United States of America"},
	}, choices)
}

func TestCountryChoices_SkipsUnknownCodes(t *testing.T) {
	lister := &stubCountryLister{codes: []string{"ID", "ZZ"}}

	choices, err := forms.CountryChoices(lister)
	assert.NoError(t, err)
	assert.Equal(t, []models.CountryChoice{
		{Code: "ID", Name: "Indonesia"},
	}, choices)
}

func TestCountryChoices_Empty(t *testing.T) {
	lister := &stubCountryLister{}

	choices, err := forms.CountryChoices(lister)
	assert.NoError(t, err)
	assert.Empty(t, choices)
}

func TestCountryChoices_RepositoryError(t *testing.T) {
	lister := &stubCountryLister{err: fmt.Errorf("database gone")}

	_, err := forms.CountryChoices(lister)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database gone")
}
