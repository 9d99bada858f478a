package forms

import (
	"fmt"

	"diskon/internal/models"
)

// ShippingCountryLister provides the distinct country codes currently
// used by shipping method pricing entries.
type ShippingCountryLister interface {
	DistinctCountryCodes() ([]string, error)
}

// CountryChoices returns the dropdown choices for limiting a voucher to
// a shipping country. The list is computed per request, so shipping
// methods added or removed out of band show up without a restart.
// Codes without a display name are not offered.
func CountryChoices(repo ShippingCountryLister) ([]models.CountryChoice, error) {
	codes, err := repo.DistinctCountryCodes()
	if err != nil {
		return nil, fmt.Errorf("failed to list shipping country codes: %w", err)
	}
	choices := make([]models.CountryChoice, 0, len(codes))
	for _, code := range codes {
		name, ok := models.CountryName(code)
		if !ok {
			continue
		}
		choices = append(choices, models.CountryChoice{Code: code, Name: name})
	}
	return choices, nil
}
